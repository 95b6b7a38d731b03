// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"

	"github.com/jeranaias/janaccess-tui/internal/api"
)

func TestNewUserTurn(t *testing.T) {
	turn := NewUserTurn("What is PM-KISAN?")
	if turn.Role != RoleUser {
		t.Errorf("role = %q, want user", turn.Role)
	}
	if !turn.IsUser() {
		t.Error("IsUser() = false")
	}
	if turn.ID == "" {
		t.Error("expected non-empty ID")
	}
	if turn.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestNewAssistantTurn(t *testing.T) {
	schemes := []api.Scheme{{Name: "PM-KISAN"}}
	turn := NewAssistantTurn("answer", "/static/audio/x.mp3", schemes)
	if turn.Role != RoleAssistant {
		t.Errorf("role = %q, want assistant", turn.Role)
	}
	if !turn.HasAudio() {
		t.Error("HasAudio() = false")
	}
	if len(turn.Schemes) != 1 {
		t.Errorf("schemes = %d, want 1", len(turn.Schemes))
	}
}

func TestTranscript_AppendOrder(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserTurn("first"))
	tr.Append(NewAssistantTurn("second", "", nil))
	tr.Append(NewUserTurn("third"))

	if tr.Len() != 3 {
		t.Fatalf("len = %d, want 3", tr.Len())
	}
	want := []string{"first", "second", "third"}
	for i, turn := range tr.Turns() {
		if turn.Text != want[i] {
			t.Errorf("turn[%d] = %q, want %q", i, turn.Text, want[i])
		}
	}

	last, ok := tr.Last()
	if !ok || last.Text != "third" {
		t.Errorf("Last() = %q, %v", last.Text, ok)
	}
}

func TestTranscript_LastEmpty(t *testing.T) {
	tr := NewTranscript()
	if _, ok := tr.Last(); ok {
		t.Error("Last() on empty transcript reported ok")
	}
}

func TestRewriteVoicePlaceholder(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserTurn("typed question"))
	tr.Append(NewAssistantTurn("typed answer", "", nil))
	tr.Append(NewVoiceTurn())

	if !tr.RewriteVoicePlaceholder("scholarships for students") {
		t.Fatal("expected rewrite to succeed")
	}

	turns := tr.Turns()
	if got := turns[2].Text; got != `🎤 "scholarships for students"` {
		t.Errorf("rewritten text = %q", got)
	}
	// Earlier turns untouched.
	if turns[0].Text != "typed question" {
		t.Errorf("earlier turn mutated: %q", turns[0].Text)
	}
}

func TestRewriteVoicePlaceholder_OnlyMostRecentUserTurn(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewVoiceTurn())
	tr.Append(NewAssistantTurn("answer", "", nil))
	tr.Append(NewUserTurn("typed followup"))

	// The most recent user turn is not a placeholder, so nothing changes —
	// the stale placeholder further back stays as-is.
	if tr.RewriteVoicePlaceholder("late transcription") {
		t.Error("rewrite should not touch older placeholders")
	}
	if got := tr.Turns()[0].Text; got != VoicePlaceholder {
		t.Errorf("older placeholder mutated: %q", got)
	}
}

func TestRewriteVoicePlaceholder_EmptyTranscription(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewVoiceTurn())
	if tr.RewriteVoicePlaceholder("") {
		t.Error("empty transcription should be a no-op")
	}
}
