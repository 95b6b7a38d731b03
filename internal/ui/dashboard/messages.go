// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard implements the main tabbed screen: the assistant chat,
// the eligibility checker, document help, skills and jobs, and about.
package dashboard

import "github.com/jeranaias/janaccess-tui/internal/api"

// =============================================================================
// MESSAGES
// =============================================================================

// ChatResultMsg delivers the assistant's reply to a text or voice query.
type ChatResultMsg struct {
	Resp  *api.ChatResponse
	Err   error
	Voice bool
}

// RecordingStartedMsg reports the outcome of starting the microphone.
type RecordingStartedMsg struct {
	Err error
}

// PlaybackDoneMsg reports the end of an audio reply playback.
type PlaybackDoneMsg struct {
	Err error
}

// Connection failure turns, appended to the transcript verbatim when a
// request cannot reach the backend.
const (
	chatFallback = "I'm having trouble connecting to the JanAccess server. " +
		"This usually happens if the backend is not running or if there's a " +
		"local network blocked. Please ensure the terminal running 'uvicorn' " +
		"is active on port 8000."

	voiceFallback = "I couldn't process the audio. Please try again or type your question."
)
