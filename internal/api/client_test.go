// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithConfig(&ClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func TestChat_EncodesQueryParams(t *testing.T) {
	var gotMethod, gotPath, gotRawQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotRawQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(ChatResponse{TextResponse: "PM-KISAN provides income support to farmers."})
	})

	resp, err := client.Chat(context.Background(), "What is PM-KISAN?", false, "Farmer")
	require.NoError(t, err)
	require.Equal(t, "PM-KISAN provides income support to farmers.", resp.TextResponse)

	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/api/assistant/chat", gotPath)
	require.Equal(t, "low_bandwidth=false&persona=Farmer&query=What+is+PM-KISAN%3F", gotRawQuery)
}

func TestChat_OmitsEmptyPersona(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(ChatResponse{TextResponse: "ok"})
	})

	_, err := client.Chat(context.Background(), "hello", true, "")
	require.NoError(t, err)
	require.Equal(t, "low_bandwidth=true&query=hello", gotQuery)
}

func TestChat_BackendDown(t *testing.T) {
	client := NewClientWithConfig(&ClientConfig{
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		Timeout: time.Second,
	})

	_, err := client.Chat(context.Background(), "hi", false, "")
	require.Error(t, err)
	require.True(t, IsBackendDown(err))
	require.False(t, IsTimeout(err))
}

func TestChat_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	client.httpClient.Timeout = 20 * time.Millisecond

	_, err := client.Chat(context.Background(), "slow", false, "")
	require.Error(t, err)
	require.True(t, IsTimeout(err))
}

func TestChat_ErrorDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"detail": "query must not be empty"})
	})

	_, err := client.Chat(context.Background(), "", false, "")
	require.Error(t, err)
	require.True(t, IsBadRequest(err))
	require.Contains(t, err.Error(), "query must not be empty")
}

func TestScheme_UnmarshalUnion(t *testing.T) {
	raw := `{
		"text_response": "Two schemes match.",
		"audio_url": "/static/audio/abc.mp3",
		"schemes": [
			"PM-KISAN",
			{"name": "PMAY", "website": "https://pmaymis.gov.in"}
		]
	}`

	var resp ChatResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	require.Len(t, resp.Schemes, 2)

	require.Equal(t, "PM-KISAN", resp.Schemes[0].Name)
	require.False(t, resp.Schemes[0].Linked())

	require.Equal(t, "PMAY", resp.Schemes[1].Name)
	require.Equal(t, "https://pmaymis.gov.in", resp.Schemes[1].Website)
	require.True(t, resp.Schemes[1].Linked())
}

func TestScheme_UnmarshalRejectsGarbage(t *testing.T) {
	var s Scheme
	require.Error(t, json.Unmarshal([]byte(`42`), &s))
}

func TestVoiceChat_MultipartUpload(t *testing.T) {
	audio := []byte("RIFF....WAVEfmt fake audio bytes")
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/assistant/voice-chat", r.URL.Path)
		require.Equal(t, "Student", r.URL.Query().Get("persona"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "recording.wav", hdr.Filename)

		json.NewEncoder(w).Encode(ChatResponse{
			TextResponse:    "Here is scholarship info.",
			TranscribedText: "scholarships for students",
		})
	})

	resp, err := client.VoiceChat(context.Background(), strings.NewReader(string(audio)), "recording.wav", "Student")
	require.NoError(t, err)
	require.Equal(t, "scholarships for students", resp.TranscribedText)
}

func TestCheckEligibility_PostsJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/eligibility/check", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got EligibilityCriteria
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, 35, got.Age)
		require.Equal(t, 50000.0, got.Income)
		require.Equal(t, "General", got.Category)

		json.NewEncoder(w).Encode(EligibilityResponse{
			EligibleSchemes: []EligibleScheme{{Name: "PM-KISAN", Category: "Agriculture"}},
			AIExplanation:   "You qualify for one scheme.",
			TotalFound:      1,
		})
	})

	resp, err := client.CheckEligibility(context.Background(), EligibilityCriteria{
		Age: 35, Income: 50000, Category: "General", Location: "Bihar",
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.TotalFound)
	require.Equal(t, "PM-KISAN", resp.EligibleSchemes[0].Name)
}

func TestAnalyzeDocument_MultipartUpload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/document/analyze", r.URL.Path)
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "notice.pdf", hdr.Filename)

		json.NewEncoder(w).Encode(AnalysisResponse{
			Filename:       "notice.pdf",
			Summary:        "A land record notice.",
			Simplification: "You must verify your land record by March.",
		})
	})

	resp, err := client.AnalyzeDocument(context.Background(), strings.NewReader("%PDF-1.4 fake"), "notice.pdf")
	require.NoError(t, err)
	require.Equal(t, "notice.pdf", resp.Filename)
	require.NotEmpty(t, resp.Simplification)
}

func TestGetSkillRecommendations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/skills/recommend", r.URL.Path)
		json.NewEncoder(w).Encode(SkillJobResponse{
			Recommendations: []SkillJobRecommendation{
				{Title: "Data Entry Operator", Type: RecommendationJob},
				{Title: "PMKVY Tailoring Course", Type: RecommendationTraining},
			},
			AISummary: "Two options match your profile.",
		})
	})

	resp, err := client.GetSkillRecommendations(context.Background(), SkillJobInput{
		EducationLevel: "12th Pass", Interest: "Computers", Location: "Patna",
	})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 2)
	require.Equal(t, RecommendationTraining, resp.Recommendations[1].Type)
}

func TestGetPersonaOptions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/assistant/persona-options", r.URL.Path)
		json.NewEncoder(w).Encode(PersonaOptions{Personas: []string{"Farmer", "Student"}})
	})

	opts, err := client.GetPersonaOptions(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Farmer", "Student"}, opts.Personas)
}

func TestAnalytics(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/analytics/summary":
			json.NewEncoder(w).Encode(AnalyticsSummary{
				TotalQueries:     42,
				TotalDocuments:   3,
				TotalSchemes:     120,
				PersonaBreakdown: map[string]int{"Farmer": 30},
			})
		case "/api/analytics/top-schemes":
			require.Equal(t, "5", r.URL.Query().Get("limit"))
			json.NewEncoder(w).Encode(TopSchemesResponse{
				TopSchemes: []TopScheme{{Name: "PM-KISAN", SearchCount: 12}},
			})
		case "/api/analytics/history":
			require.Equal(t, "10", r.URL.Query().Get("limit"))
			json.NewEncoder(w).Encode([]HistoryEntry{
				{ID: 1, Query: "housing help", Category: "Housing", Persona: "Farmer"},
			})
		case "/api/analytics/persona-usage":
			json.NewEncoder(w).Encode(PersonaUsage{
				MostSelectedPersona: "Farmer",
				PersonaCounts:       map[string]int{"Farmer": 30, "Student": 12},
			})
		default:
			http.NotFound(w, r)
		}
	})

	ctx := context.Background()

	summary, err := client.GetAnalyticsSummary(ctx)
	require.NoError(t, err)
	require.Equal(t, 42, summary.TotalQueries)

	top, err := client.GetTopSchemes(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, "PM-KISAN", top[0].Name)

	hist, err := client.GetHistory(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, "housing help", hist[0].Query)

	usage, err := client.GetPersonaUsage(ctx)
	require.NoError(t, err)
	require.Equal(t, "Farmer", usage.MostSelectedPersona)
}

func TestResolveURL(t *testing.T) {
	client := NewClientWithConfig(&ClientConfig{BaseURL: "http://127.0.0.1:8000"})

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/static/audio/x.mp3", "http://127.0.0.1:8000/static/audio/x.mp3"},
		{"static/audio/x.mp3", "http://127.0.0.1:8000/static/audio/x.mp3"},
		{"https://cdn.example.org/x.mp3", "https://cdn.example.org/x.mp3"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, client.ResolveURL(tc.in), "input %q", tc.in)
	}
}

func TestCheckRunning(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/assistant/persona-options", r.URL.Path)
		json.NewEncoder(w).Encode(PersonaOptions{})
	})
	require.NoError(t, client.CheckRunning(context.Background()))
}
