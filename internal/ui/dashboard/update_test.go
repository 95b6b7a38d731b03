// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/audio"
	"github.com/jeranaias/janaccess-tui/internal/i18n"
	"github.com/jeranaias/janaccess-tui/internal/model"
	"github.com/jeranaias/janaccess-tui/internal/session"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
)

// stubDevice satisfies audio.CaptureDevice without touching a microphone.
type stubDevice struct{ path string }

func (d stubDevice) Start(ctx context.Context) (audio.CaptureSession, error) {
	return stubSession{path: d.path}, nil
}

type stubSession struct{ path string }

func (s stubSession) Stop() (string, error) { return s.path, nil }

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Options{
		Client:   api.NewClientWithConfig(&api.ClientConfig{BaseURL: "http://127.0.0.1:1"}),
		Theme:    styles.NewTheme(),
		Locale:   i18n.New("en"),
		Session:  session.NewContext("Farmer", false),
		Recorder: audio.NewRecorder(stubDevice{path: "/tmp/never-read.wav"}),
	})
	m = m.handleResize(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSubmitQuery_AppendsUserTurnAndLoads(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("What is PM-KISAN?")

	m, cmd := m.handleChatKey(key("enter"))
	require.NotNil(t, cmd)
	require.True(t, m.Loading())
	require.Equal(t, 1, m.Transcript().Len())

	last, _ := m.Transcript().Last()
	require.True(t, last.IsUser())
	require.Equal(t, "What is PM-KISAN?", last.Text)
	require.Empty(t, m.input.Value())
}

func TestSubmitQuery_BlankInputIgnored(t *testing.T) {
	m := newTestModel(t)
	for _, v := range []string{"", "   ", "\t"} {
		m.input.SetValue(v)
		var cmd tea.Cmd
		m, cmd = m.handleChatKey(key("enter"))
		require.Nil(t, cmd)
		require.False(t, m.Loading())
		require.Zero(t, m.Transcript().Len())
	}
}

func TestSubmitQuery_IgnoredWhileLoading(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("first")
	m, _ = m.handleChatKey(key("enter"))
	require.True(t, m.Loading())

	m.input.SetValue("second")
	m, cmd := m.handleChatKey(key("enter"))
	require.Nil(t, cmd)
	require.Equal(t, 1, m.Transcript().Len())
}

func TestChatResult_AppendsAssistantTurn(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("hello")
	m, _ = m.handleChatKey(key("enter"))

	m, _ = m.handleChatResult(ChatResultMsg{Resp: &api.ChatResponse{
		TextResponse: "Namaste! How can I help?",
		AudioURL:     "/static/audio/x.mp3",
		Schemes:      []api.Scheme{{Name: "PM-KISAN"}},
	}})

	require.False(t, m.Loading())
	require.Equal(t, 2, m.Transcript().Len())

	last, _ := m.Transcript().Last()
	require.False(t, last.IsUser())
	require.Equal(t, "Namaste! How can I help?", last.Text)
	require.True(t, last.HasAudio())
	require.Len(t, last.Schemes, 1)
}

func TestChatResult_FailureAppendsFallbackTurn(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("hello")
	m, _ = m.handleChatKey(key("enter"))

	m, _ = m.handleChatResult(ChatResultMsg{Err: api.ErrBackendDown})

	require.False(t, m.Loading())
	last, _ := m.Transcript().Last()
	require.False(t, last.IsUser())
	require.Equal(t, "I'm having trouble connecting to the JanAccess server. "+
		"This usually happens if the backend is not running or if there's a "+
		"local network blocked. Please ensure the terminal running 'uvicorn' "+
		"is active on port 8000.", last.Text)

	// The session recovers: a new query can be sent.
	m.input.SetValue("retry")
	m, cmd := m.handleChatKey(key("enter"))
	require.NotNil(t, cmd)
}

func TestVoiceFlow_PlaceholderThenTranscription(t *testing.T) {
	m := newTestModel(t)

	// First ctrl+r starts recording.
	m, cmd := m.toggleRecording()
	require.NotNil(t, cmd)
	_ = cmd() // RecordingStartedMsg; stub device always succeeds
	require.Equal(t, audio.StateRecording, m.recorder.State())

	// Second ctrl+r stops and sends.
	m, cmd = m.toggleRecording()
	require.NotNil(t, cmd)
	require.True(t, m.Loading())

	last, _ := m.Transcript().Last()
	require.Equal(t, model.VoicePlaceholder, last.Text)

	// Reply rewrites the placeholder and appends the answer.
	m, _ = m.handleChatResult(ChatResultMsg{Voice: true, Resp: &api.ChatResponse{
		TextResponse:    "Scholarship details follow.",
		TranscribedText: "scholarships for students",
	}})

	turns := m.Transcript().Turns()
	require.Equal(t, `🎤 "scholarships for students"`, turns[0].Text)
	require.Equal(t, "Scholarship details follow.", turns[1].Text)
	require.Equal(t, audio.StateIdle, m.recorder.State())
}

func TestVoiceFlow_FailureKeepsPlaceholder(t *testing.T) {
	m := newTestModel(t)
	m, cmd := m.toggleRecording()
	_ = cmd()
	m, _ = m.toggleRecording()

	m, _ = m.handleChatResult(ChatResultMsg{Voice: true, Err: api.ErrTimeout})

	turns := m.Transcript().Turns()
	require.Equal(t, model.VoicePlaceholder, turns[0].Text)
	require.Equal(t, "I couldn't process the audio. Please try again or type your question.", turns[1].Text)
}

func TestLowBandwidth_SuppressesAudio(t *testing.T) {
	m := newTestModel(t)
	m.sess.ToggleLowBandwidth()

	m.input.SetValue("hello")
	m, _ = m.handleChatKey(key("enter"))
	m, _ = m.handleChatResult(ChatResultMsg{Resp: &api.ChatResponse{
		TextResponse: "answer",
		AudioURL:     "/static/audio/x.mp3",
	}})

	last, _ := m.Transcript().Last()
	require.False(t, last.HasAudio())
}

func TestTabCycling(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, TabChat, m.ActiveTab())

	for _, want := range []Tab{TabEligibility, TabDocuments, TabSkills, TabAbout, TabChat} {
		m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
		require.Equal(t, want, m.ActiveTab())
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, TabAbout, m.ActiveTab())
}

func TestQuickAction_SendsPersonaQuery(t *testing.T) {
	m := newTestModel(t)

	m, cmd := m.handleChatKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1"), Alt: true})
	require.NotNil(t, cmd)

	last, _ := m.Transcript().Last()
	require.Equal(t, "What crop subsidies are available for farmers?", last.Text)
}

func TestRecording_IgnoredWhileLoading(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("hello")
	m, _ = m.handleChatKey(key("enter"))

	m, cmd := m.toggleRecording()
	require.Nil(t, cmd)
	require.Equal(t, audio.StateIdle, m.recorder.State())
}
