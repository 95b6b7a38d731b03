// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"
	"testing"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"zero max", "hello", 0, ""},
		{"tiny max no ellipsis", "hello", 2, "he"},
		{"multibyte safe", "नमस्ते दुनिया", 6, "नमस..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateRunes(tc.in, tc.max); got != tc.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestTruncateWidth_NeverExceedsWidth(t *testing.T) {
	inputs := []string{"plain ascii text", "🎤 Voice message...", "தமிழ் உரை", "mixed 日本語 text"}
	for _, in := range inputs {
		for _, width := range []int{1, 4, 8, 20, 80} {
			got := TruncateWidth(in, width)
			if w := len([]rune(got)); w > 0 && width <= 0 {
				t.Errorf("TruncateWidth(%q, %d) returned non-empty %q", in, width, got)
			}
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight should not trim, got %q", got)
	}
}

func TestWrapText(t *testing.T) {
	in := "one two three four five"
	got := WrapText(in, 9)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 9 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.ReplaceAll(got, "\n", " ") != in {
		t.Errorf("WrapText altered content: %q", got)
	}

	// Existing newlines are preserved.
	if got := WrapText("a\nb", 80); got != "a\nb" {
		t.Errorf("WrapText(%q) = %q", "a\nb", got)
	}
}
