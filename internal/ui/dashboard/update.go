// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/janaccess-tui/internal/audio"
	"github.com/jeranaias/janaccess-tui/internal/model"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the dashboard screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ChatResultMsg:
		return m.handleChatResult(msg)

	case RecordingStartedMsg:
		if msg.Err != nil {
			slog.Error("recording failed to start", "error", msg.Err)
			m.transcript.Append(model.NewAssistantTurn(voiceFallback, "", nil))
			m.refreshTranscript()
		}
		return m, nil

	case PlaybackDoneMsg:
		m.playing = false
		if msg.Err != nil {
			slog.Warn("audio playback failed", "error", msg.Err)
		}
		return m, nil
	}

	return m.updateChildren(msg)
}

// updateChildren forwards a message to the active tab's sub-models.
func (m Model) updateChildren(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.spinner, cmd = m.spinner.Update(msg)
	cmds = append(cmds, cmd)

	m.eligibility, cmd = m.eligibility.Update(msg)
	cmds = append(cmds, cmd)
	m.documents, cmd = m.documents.Update(msg)
	cmds = append(cmds, cmd)
	m.skills, cmd = m.skills.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	contentHeight := msg.Height - chromeHeight
	if contentHeight < 3 {
		contentHeight = 3
	}
	if !m.ready {
		m.viewport = newViewport(msg.Width, contentHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = contentHeight
	}

	m.input.Width = msg.Width - 6
	m.eligibility.SetWidth(msg.Width)
	m.documents.SetWidth(msg.Width)
	m.skills.SetWidth(msg.Width)

	m.refreshTranscript()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil

	case "shift+tab":
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		return m, nil

	case "ctrl+b":
		m.sess.ToggleLowBandwidth()
		return m, nil
	}

	switch m.activeTab {
	case TabChat:
		return m.handleChatKey(msg)
	case TabEligibility:
		var cmd tea.Cmd
		m.eligibility, cmd = m.eligibility.Update(msg)
		return m, cmd
	case TabDocuments:
		var cmd tea.Cmd
		m.documents, cmd = m.documents.Update(msg)
		return m, cmd
	case TabSkills:
		var cmd tea.Cmd
		m.skills, cmd = m.skills.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleChatKey processes keys on the chat tab.
func (m Model) handleChatKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submitQuery(m.input.Value())

	case "alt+1", "alt+2", "alt+3", "alt+4":
		idx := int(msg.String()[4] - '1')
		actions := m.sess.QuickActions()
		if idx < len(actions) {
			return m.submitQuery(actions[idx])
		}
		return m, nil

	case "ctrl+r":
		return m.toggleRecording()

	case "ctrl+p":
		return m.playLastReply()

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitQuery sends a typed or quick-action query. Blank input and input
// during a pending request are ignored.
func (m Model) submitQuery(query string) (Model, tea.Cmd) {
	query = strings.TrimSpace(query)
	if query == "" || m.loading {
		return m, nil
	}

	m.transcript.Append(model.NewUserTurn(query))
	m.input.Reset()
	m.loading = true
	m.refreshTranscript()

	slog.Debug("submitting query", "persona", m.sess.Persona(), "low_bandwidth", m.sess.LowBandwidth())
	return m, tea.Batch(
		m.spinner.Start(),
		sendTextCmd(m.client, query, m.sess.LowBandwidth(), m.sess.Persona()),
	)
}

// toggleRecording starts the microphone, or stops it and sends the clip.
func (m Model) toggleRecording() (Model, tea.Cmd) {
	if !m.canRecord() || m.loading {
		return m, nil
	}

	switch m.recorder.State() {
	case audio.StateIdle:
		return m, startRecordingCmd(m.recorder)

	case audio.StateRecording:
		path, err := m.recorder.Finish()
		if err != nil {
			slog.Error("recording failed", "error", err)
			m.transcript.Append(model.NewAssistantTurn(voiceFallback, "", nil))
			m.refreshTranscript()
			return m, nil
		}

		m.transcript.Append(model.NewVoiceTurn())
		m.loading = true
		m.refreshTranscript()
		return m, tea.Batch(
			m.spinner.Start(),
			sendVoiceCmd(m.client, path, m.sess.Persona()),
		)
	}
	return m, nil
}

// playLastReply plays the most recent audio reply, if audio is available
// and not suppressed.
func (m Model) playLastReply() (Model, tea.Cmd) {
	if m.player == nil || m.playing || m.sess.LowBandwidth() {
		return m, nil
	}
	ref := m.lastAudioRef()
	if ref == "" {
		return m, nil
	}
	m.playing = true
	return m, playAudioCmd(m.player, m.client.ResolveURL(ref))
}

// handleChatResult folds the assistant's reply (or failure) into the
// transcript.
func (m Model) handleChatResult(msg ChatResultMsg) (Model, tea.Cmd) {
	m.loading = false
	m.spinner.Stop()
	if msg.Voice && m.recorder != nil {
		m.recorder.Done()
	}

	if msg.Err != nil {
		slog.Error("assistant request failed", "error", msg.Err, "voice", msg.Voice)
		fallback := chatFallback
		if msg.Voice {
			fallback = voiceFallback
		}
		m.transcript.Append(model.NewAssistantTurn(fallback, "", nil))
		m.refreshTranscript()
		return m, nil
	}

	if msg.Voice {
		m.transcript.RewriteVoicePlaceholder(msg.Resp.TranscribedText)
	}

	audioRef := msg.Resp.AudioURL
	if m.sess.LowBandwidth() {
		audioRef = ""
	}
	m.transcript.Append(model.NewAssistantTurn(msg.Resp.TextResponse, audioRef, msg.Resp.Schemes))
	m.refreshTranscript()
	return m, nil
}
