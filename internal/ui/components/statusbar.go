// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
	"github.com/jeranaias/janaccess-tui/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// StatusBar shows the session state along the bottom edge: persona,
// bandwidth mode, recorder state, and the key hints.
type StatusBar struct {
	Persona      string
	LowBandwidth bool
	Recording    bool
	Processing   bool
}

// shortcut is one key hint in the status bar.
type shortcut struct {
	key  string
	desc string
}

var shortcuts = []shortcut{
	{"tab", "switch"},
	{"ctrl+r", "record"},
	{"ctrl+p", "play"},
	{"ctrl+b", "bandwidth"},
	{"ctrl+c", "quit"},
}

// Render draws the status bar at the given width.
func (s StatusBar) Render(theme *styles.Theme, width int) string {
	var left []string

	if s.Persona != "" {
		left = append(left, theme.StatusOnline.Render(s.Persona))
	}
	if s.LowBandwidth {
		left = append(left, theme.StatusLowBw.Render("low bandwidth"))
	}
	if s.Recording {
		left = append(left, theme.Recording.Render(styles.StatusIndicators.Recording+" recording"))
	} else if s.Processing {
		left = append(left, theme.ThinkingText.Render("processing..."))
	}

	var hints []string
	for _, sc := range shortcuts {
		hints = append(hints, theme.ShortcutKey.Render(sc.key)+theme.ShortcutDesc.Render(" "+sc.desc))
	}

	leftStr := strings.Join(left, "  ")
	rightStr := strings.Join(hints, "  ")

	gap := width - lipgloss.Width(leftStr) - lipgloss.Width(rightStr) - 2
	if gap < 1 {
		// Narrow terminals drop the hints before the state.
		rightStr = ""
		gap = width - lipgloss.Width(leftStr) - 2
		if gap < 1 {
			gap = 1
		}
	}

	return theme.StatusBar.Width(width).
		Render(leftStr + util.PadRight("", gap) + rightStr)
}
