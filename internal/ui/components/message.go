// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/janaccess-tui/internal/model"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
	"github.com/jeranaias/janaccess-tui/internal/util"
)

// =============================================================================
// TURN RENDERING
// =============================================================================

// RenderTurn renders one transcript turn as a chat bubble sized for width.
// User turns are right-aligned, assistant turns left-aligned with their
// scheme chips and audio badge below the text.
func RenderTurn(theme *styles.Theme, turn model.Turn, width int) string {
	bubbleWidth := width - 8
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	text := util.WrapText(turn.Text, bubbleWidth-4)

	if turn.IsUser() {
		bubble := theme.UserBubble.MaxWidth(bubbleWidth).Render(text)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble)
	}

	parts := []string{text}
	if chips := renderSchemeChips(theme, turn, bubbleWidth-4); chips != "" {
		parts = append(parts, chips)
	}
	if turn.HasAudio() {
		parts = append(parts, theme.AudioBadge.Render("♪ audio reply (ctrl+p to play)"))
	}

	return theme.AssistantBubble.MaxWidth(bubbleWidth).
		Render(strings.Join(parts, "\n\n"))
}

// renderSchemeChips renders the scheme references of an assistant turn.
// Linked schemes show their website underneath the name.
func renderSchemeChips(theme *styles.Theme, turn model.Turn, width int) string {
	if len(turn.Schemes) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.QuickActionHeading.Render("Related schemes"))
	for _, s := range turn.Schemes {
		b.WriteString("\n")
		b.WriteString(theme.SchemeChip.Render(util.TruncateWidth(s.Name, width-2)))
		if s.Linked() {
			b.WriteString(" ")
			b.WriteString(theme.SchemeLink.Render(util.TruncateWidth(s.Website, width-2)))
		}
	}
	return b.String()
}
