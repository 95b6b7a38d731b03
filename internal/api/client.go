// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the JanAccess gateway client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeBackendDown
	ErrTypeTimeout
	ErrTypeBadRequest
	ErrTypeConnection
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrBackendDown = &ClientError{Type: ErrTypeBackendDown, Message: "JanAccess backend is not reachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// IsBackendDown checks if an error indicates the backend is unreachable.
func IsBackendDown(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeBackendDown
	}
	return errors.Is(err, ErrBackendDown)
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return errors.Is(err, ErrTimeout)
}

// IsBadRequest checks if an error is a rejected-input error (HTTP 4xx).
func IsBadRequest(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeBadRequest
	}
	return false
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the gateway client.
type ClientConfig struct {
	// BaseURL is the backend origin without the /api prefix
	// (default: http://127.0.0.1:8000).
	// Note: Uses explicit IPv4 address instead of localhost to avoid IPv6 resolution issues on Windows
	BaseURL string

	// Timeout is the per-request deadline (default: 30s)
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://127.0.0.1:8000",
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the JanAccess backend gateway.
// All endpoints live under the /api prefix on the configured origin.
//
// The Client is thread-safe for concurrent use.
//
// Example:
//
//	client := api.NewClient()
//	resp, err := client.Chat(ctx, "What is PM-KISAN?", false, "Farmer")
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new gateway client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new gateway client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the backend origin the client talks to.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// ResolveURL turns a backend-relative path (such as an audio_url) into an
// absolute URL on the configured origin. Absolute inputs pass through.
func (c *Client) ResolveURL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimSuffix(c.config.BaseURL, "/") + "/" + strings.TrimPrefix(ref, "/")
}

// endpoint joins the /api prefix and path onto the base URL.
func (c *Client) endpoint(path string) string {
	return strings.TrimSuffix(c.config.BaseURL, "/") + "/api" + path
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// CheckRunning verifies that the backend is reachable.
func (c *Client) CheckRunning(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/assistant/persona-options"), nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ErrBackendDown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ClientError{
			Type:    ErrTypeConnection,
			Message: "unexpected status from backend: " + resp.Status,
		}
	}

	return nil
}

// =============================================================================
// ASSISTANT OPERATIONS
// =============================================================================

// Chat submits a text query to the assistant.
//
// The gateway takes the query and its knobs as URL query parameters on a
// POST with an empty body; the low_bandwidth flag asks the backend to skip
// speech synthesis.
func (c *Client) Chat(ctx context.Context, query string, lowBandwidth bool, persona string) (*ChatResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("low_bandwidth", strconv.FormatBool(lowBandwidth))
	if persona != "" {
		params.Set("persona", persona)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/assistant/chat")+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	var result ChatResponse
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// VoiceChat submits a recorded audio clip to the assistant. The backend
// transcribes it and answers as if the transcription had been typed; the
// transcribed text comes back alongside the answer.
func (c *Client) VoiceChat(ctx context.Context, audio io.Reader, filename string, persona string) (*ChatResponse, error) {
	target := c.endpoint("/assistant/voice-chat")
	if persona != "" {
		params := url.Values{}
		params.Set("persona", persona)
		target += "?" + params.Encode()
	}

	body, contentType, err := fileForm(audio, filename)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", contentType)

	var result ChatResponse
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPersonaOptions retrieves the persona list the backend personalizes for.
func (c *Client) GetPersonaOptions(ctx context.Context) (*PersonaOptions, error) {
	var result PersonaOptions
	if err := c.get(ctx, "/assistant/persona-options", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// ELIGIBILITY
// =============================================================================

// CheckEligibility submits the user's profile and returns matching schemes.
func (c *Client) CheckEligibility(ctx context.Context, criteria EligibilityCriteria) (*EligibilityResponse, error) {
	var result EligibilityResponse
	if err := c.postJSON(ctx, "/eligibility/check", criteria, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// DOCUMENTS
// =============================================================================

// AnalyzeDocument uploads a document for plain-language simplification.
// Type and size limits are enforced client-side before calling this.
func (c *Client) AnalyzeDocument(ctx context.Context, doc io.Reader, filename string) (*AnalysisResponse, error) {
	body, contentType, err := fileForm(doc, filename)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/document/analyze"), body)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", contentType)

	var result AnalysisResponse
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// SKILLS & JOBS
// =============================================================================

// GetSkillRecommendations returns job and training suggestions for a profile.
func (c *Client) GetSkillRecommendations(ctx context.Context, input SkillJobInput) (*SkillJobResponse, error) {
	var result SkillJobResponse
	if err := c.postJSON(ctx, "/skills/recommend", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// ANALYTICS
// =============================================================================

// GetAnalyticsSummary retrieves aggregate usage counters.
func (c *Client) GetAnalyticsSummary(ctx context.Context) (*AnalyticsSummary, error) {
	var result AnalyticsSummary
	if err := c.get(ctx, "/analytics/summary", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTopSchemes retrieves the most-searched schemes, capped at limit.
func (c *Client) GetTopSchemes(ctx context.Context, limit int) ([]TopScheme, error) {
	path := "/analytics/top-schemes"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var result TopSchemesResponse
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return result.TopSchemes, nil
}

// GetHistory retrieves the most recent queries, capped at limit.
func (c *Client) GetHistory(ctx context.Context, limit int) ([]HistoryEntry, error) {
	path := "/analytics/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var result []HistoryEntry
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetPersonaUsage retrieves per-persona usage statistics.
func (c *Client) GetPersonaUsage(ctx context.Context) (*PersonaUsage, error) {
	var result PersonaUsage
	if err := c.get(ctx, "/analytics/persona-usage", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// get issues a GET to an /api path and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	return c.do(req, out)
}

// postJSON issues a POST with a JSON body and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(body))
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes a prepared request, maps transport and status failures onto the
// client error taxonomy, and decodes a successful response into out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		// http.Client wraps its own deadline in a url.Error.
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return ErrTimeout
		}
		return ErrBackendDown
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errType := ErrTypeInvalidResponse
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			errType = ErrTypeBadRequest
		}
		// FastAPI reports failures as {"detail": ...}.
		var apiErr struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Detail != "" {
			return &ClientError{Type: errType, Message: apiErr.Detail}
		}
		return &ClientError{Type: errType, Message: "request failed: " + resp.Status}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// fileForm builds a multipart body with the upload under the "file" field.
func fileForm(r io.Reader, filename string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", &ClientError{Type: ErrTypeConnection, Message: "failed to build upload", Cause: err}
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", &ClientError{Type: ErrTypeConnection, Message: "failed to read upload", Cause: err}
	}
	if err := w.Close(); err != nil {
		return nil, "", &ClientError{Type: ErrTypeConnection, Message: "failed to finalize upload", Cause: err}
	}

	return &buf, w.FormDataContentType(), nil
}
