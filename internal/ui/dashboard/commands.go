// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/audio"
	"github.com/jeranaias/janaccess-tui/internal/config"
)

// =============================================================================
// COMMANDS
// =============================================================================

// requestContext bounds one assistant request by the configured timeout.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.Global().API.Timeout())
}

// sendTextCmd submits a typed query and reports the reply.
func sendTextCmd(client *api.Client, query string, lowBandwidth bool, persona string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		resp, err := client.Chat(ctx, query, lowBandwidth, persona)
		return ChatResultMsg{Resp: resp, Err: err}
	}
}

// sendVoiceCmd uploads a recorded clip and reports the reply. The clip file
// is removed once the request finishes.
func sendVoiceCmd(client *api.Client, path string, persona string) tea.Cmd {
	return func() tea.Msg {
		defer os.Remove(path)

		file, err := os.Open(path)
		if err != nil {
			return ChatResultMsg{Err: err, Voice: true}
		}
		defer file.Close()

		ctx, cancel := requestContext()
		defer cancel()
		resp, err := client.VoiceChat(ctx, file, "recording.wav", persona)
		return ChatResultMsg{Resp: resp, Err: err, Voice: true}
	}
}

// startRecordingCmd opens the microphone.
func startRecordingCmd(recorder *audio.Recorder) tea.Cmd {
	return func() tea.Msg {
		return RecordingStartedMsg{Err: recorder.Begin(context.Background())}
	}
}

// playAudioCmd plays a resolved audio URL and reports when playback ends.
func playAudioCmd(player *audio.Player, url string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		return PlaybackDoneMsg{Err: player.Play(ctx, url)}
	}
}
