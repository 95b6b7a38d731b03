// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
	"github.com/jeranaias/janaccess-tui/internal/util"
)

// RenderErrorBox draws a bordered error panel with a title and message.
func RenderErrorBox(theme *styles.Theme, title, message string, width int) string {
	inner := width - 8
	if inner < 20 {
		inner = 20
	}

	content := theme.ErrorTitle.Render(styles.StatusIndicators.Error+" "+title) +
		"\n" + theme.ErrorMessage.Render(util.WrapText(message, inner))

	return theme.ErrorBox.MaxWidth(width - 2).Render(content)
}
