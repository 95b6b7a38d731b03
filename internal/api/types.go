// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the JanAccess backend gateway.
package api

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// SCHEME
// =============================================================================

// Scheme is a named government program referenced by an assistant response.
// The backend sends either a bare name or an object carrying the official
// website; the union is resolved once here, at the API boundary. A Scheme
// with an empty Website renders as a plain label, otherwise as a link.
type Scheme struct {
	Name    string `json:"name"`
	Website string `json:"website,omitempty"`
}

// Linked reports whether the scheme carries a destination.
func (s Scheme) Linked() bool {
	return s.Website != ""
}

// UnmarshalJSON accepts both wire forms: "PM-KISAN" and
// {"name": "PM-KISAN", "website": "https://pmkisan.gov.in"}.
func (s *Scheme) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*s = Scheme{Name: name}
		return nil
	}

	var obj struct {
		Name    string `json:"name"`
		Website string `json:"website"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("scheme: %w", err)
	}
	*s = Scheme{Name: obj.Name, Website: obj.Website}
	return nil
}

// =============================================================================
// ASSISTANT
// =============================================================================

// ChatResponse is the backend's reply to a text or voice query.
type ChatResponse struct {
	TextResponse    string   `json:"text_response"`
	AudioURL        string   `json:"audio_url,omitempty"`
	Schemes         []Scheme `json:"schemes,omitempty"`
	TranscribedText string   `json:"transcribed_text,omitempty"`
}

// PersonaOptions lists the personas the backend personalizes for, plus the
// suggested quick-action prompts per persona.
type PersonaOptions struct {
	Personas     []string            `json:"personas"`
	QuickActions map[string][]string `json:"quick_actions,omitempty"`
}

// =============================================================================
// ELIGIBILITY
// =============================================================================

// EligibilityCriteria is the input to the eligibility check.
type EligibilityCriteria struct {
	Age      int     `json:"age"`
	Income   float64 `json:"income"`
	Category string  `json:"category"`
	Location string  `json:"location"`
}

// EligibleScheme is one scheme the user qualifies for.
type EligibleScheme struct {
	Name               string `json:"name"`
	Category           string `json:"category"`
	Description        string `json:"description"`
	Benefits           string `json:"benefits"`
	DocumentsRequired  string `json:"documents_required"`
	ApplicationProcess string `json:"application_process"`
	ContactInfo        string `json:"contact_info"`
}

// EligibilityResponse is the result of an eligibility check.
type EligibilityResponse struct {
	EligibleSchemes []EligibleScheme `json:"eligible_schemes"`
	AIExplanation   string           `json:"ai_explanation"`
	TotalFound      int              `json:"total_found"`
}

// =============================================================================
// DOCUMENT
// =============================================================================

// AnalysisResponse is the simplified rendering of an uploaded document.
type AnalysisResponse struct {
	Filename       string `json:"filename"`
	Summary        string `json:"summary"`
	Simplification string `json:"simplification"`
	NextSteps      string `json:"next_steps,omitempty"`
}

// =============================================================================
// SKILLS & JOBS
// =============================================================================

// SkillJobInput is the input to the recommendation endpoint.
type SkillJobInput struct {
	EducationLevel string `json:"education_level"`
	Interest       string `json:"interest"`
	Location       string `json:"location"`
}

// RecommendationType distinguishes jobs from training programs.
const (
	RecommendationJob      = "job"
	RecommendationTraining = "training"
)

// SkillJobRecommendation is a single job or training suggestion.
type SkillJobRecommendation struct {
	Title       string `json:"title"`
	Type        string `json:"type"` // "job" or "training"
	Description string `json:"description"`
	Provider    string `json:"provider,omitempty"`
	Location    string `json:"location,omitempty"`
}

// SkillJobResponse is the full recommendation result.
type SkillJobResponse struct {
	Recommendations []SkillJobRecommendation `json:"recommendations"`
	AISummary       string                   `json:"ai_summary"`
}

// =============================================================================
// ANALYTICS
// =============================================================================

// AnalyticsSummary aggregates usage counters for the stats command.
type AnalyticsSummary struct {
	TotalQueries      int            `json:"total_queries"`
	TotalDocuments    int            `json:"total_documents"`
	TotalSchemes      int            `json:"total_schemes"`
	CategoryBreakdown map[string]int `json:"category_breakdown"`
	PersonaBreakdown  map[string]int `json:"persona_breakdown"`
	RecentQueries     []RecentQuery  `json:"recent_queries"`
}

// RecentQuery is one entry of the recent-interactions list.
type RecentQuery struct {
	Query     string `json:"query"`
	Response  string `json:"response"`
	Persona   string `json:"persona"`
	Timestamp string `json:"timestamp"`
}

// TopScheme is one entry of the most-searched-schemes list.
type TopScheme struct {
	Name        string `json:"name"`
	SearchCount int    `json:"search_count"`
}

// TopSchemesResponse wraps the top-schemes list.
type TopSchemesResponse struct {
	TopSchemes []TopScheme `json:"top_schemes"`
}

// HistoryEntry is one row of the search history.
type HistoryEntry struct {
	ID             int    `json:"id"`
	Query          string `json:"query"`
	Category       string `json:"category"`
	Persona        string `json:"persona"`
	MatchedSchemes string `json:"matched_schemes"`
	Timestamp      string `json:"timestamp"`
}

// PersonaUsage reports which personas are selected and what they ask about.
type PersonaUsage struct {
	MostSelectedPersona string              `json:"most_selected_persona"`
	PersonaCounts       map[string]int      `json:"persona_counts"`
	TopTopicsPerPersona map[string][]string `json:"top_topics_per_persona"`
}
