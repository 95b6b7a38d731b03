// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the conversation transcript data model.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/janaccess-tui/internal/api"
)

// =============================================================================
// ROLES
// =============================================================================

// Role identifies who authored a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// =============================================================================
// TURN
// =============================================================================

// VoicePlaceholder is the interim text of a user turn created from a voice
// recording, before the backend returns the transcription.
const VoicePlaceholder = "🎤 Voice message..."

// Turn is a single entry in the conversation transcript.
type Turn struct {
	// ID uniquely identifies the turn within the session.
	ID string

	// Role is who authored the turn.
	Role Role

	// Text is the turn content.
	Text string

	// AudioRef is a backend-relative reference to the spoken answer, if the
	// backend synthesized one. Empty in low-bandwidth mode.
	AudioRef string

	// Schemes are the government programs the answer referenced.
	Schemes []api.Scheme

	// CreatedAt is when the turn was appended.
	CreatedAt time.Time
}

// NewUserTurn creates a user turn with the given text.
func NewUserTurn(text string) Turn {
	return Turn{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// NewVoiceTurn creates a user turn carrying the voice placeholder. The
// placeholder is rewritten once the transcription arrives.
func NewVoiceTurn() Turn {
	return NewUserTurn(VoicePlaceholder)
}

// NewAssistantTurn creates an assistant turn from a backend reply.
func NewAssistantTurn(text, audioRef string, schemes []api.Scheme) Turn {
	return Turn{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Text:      text,
		AudioRef:  audioRef,
		Schemes:   schemes,
		CreatedAt: time.Now(),
	}
}

// IsUser reports whether the turn was authored by the user.
func (t Turn) IsUser() bool {
	return t.Role == RoleUser
}

// HasAudio reports whether a spoken answer accompanies the turn.
func (t Turn) HasAudio() bool {
	return t.AudioRef != ""
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is the append-only, session-scoped conversation history.
// Turns are never removed or reordered; the only mutation besides append is
// rewriting a voice placeholder once its transcription arrives.
type Transcript struct {
	turns []Turn
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds a turn to the end of the transcript and returns it.
func (tr *Transcript) Append(t Turn) Turn {
	tr.turns = append(tr.turns, t)
	return t
}

// Turns returns the transcript in order. The returned slice is shared;
// callers must not mutate it.
func (tr *Transcript) Turns() []Turn {
	return tr.turns
}

// Len returns the number of turns.
func (tr *Transcript) Len() int {
	return len(tr.turns)
}

// Last returns the most recent turn, or false if the transcript is empty.
func (tr *Transcript) Last() (Turn, bool) {
	if len(tr.turns) == 0 {
		return Turn{}, false
	}
	return tr.turns[len(tr.turns)-1], true
}

// RewriteVoicePlaceholder replaces the most recent user turn's text with the
// quoted transcription, provided that turn still carries the placeholder.
// Returns true if a turn was rewritten.
func (tr *Transcript) RewriteVoicePlaceholder(transcribed string) bool {
	if transcribed == "" {
		return false
	}
	for i := len(tr.turns) - 1; i >= 0; i-- {
		if !tr.turns[i].IsUser() {
			continue
		}
		if tr.turns[i].Text != VoicePlaceholder {
			return false
		}
		tr.turns[i].Text = `🎤 "` + transcribed + `"`
		return true
	}
	return false
}
