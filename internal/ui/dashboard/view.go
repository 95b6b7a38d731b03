// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/janaccess-tui/internal/audio"
	"github.com/jeranaias/janaccess-tui/internal/session"
	"github.com/jeranaias/janaccess-tui/internal/ui/components"
)

// chromeHeight is the vertical space taken by the header, tab row, input,
// and status bar around the transcript viewport.
const chromeHeight = 8

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return vp
}

// refreshTranscript re-renders the conversation into the viewport and keeps
// it pinned to the latest turn.
func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for i, turn := range m.transcript.Turns() {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(components.RenderTurn(m.theme, turn, m.viewport.Width))
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the dashboard screen.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderTabs())

	switch m.activeTab {
	case TabChat:
		sections = append(sections, m.renderChat())
	case TabEligibility:
		sections = append(sections, m.eligibility.View())
	case TabDocuments:
		sections = append(sections, m.documents.View())
	case TabSkills:
		sections = append(sections, m.skills.View())
	case TabAbout:
		sections = append(sections, m.renderAbout())
	}

	sections = append(sections, m.renderStatusBar())
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render(m.tr.S("app.title"))
	subtitle := m.theme.HeaderSubtitle.Render(m.tr.S("app.tagline"))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title+"  "+subtitle)
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, key := range tabKeys {
		label := m.tr.S(key)
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderChat() string {
	var b strings.Builder

	if m.transcript.Len() == 0 {
		b.WriteString(m.renderQuickActions())
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View())
	} else if m.recorder != nil && m.recorder.State() == audio.StateRecording {
		b.WriteString(m.theme.Recording.Render("recording... press ctrl+r to send"))
	}
	b.WriteString("\n")

	b.WriteString(m.theme.InputContainer.Width(m.width - 2).
		Render(m.theme.InputPrompt.Render("> ") + m.input.View()))

	return b.String()
}

// renderQuickActions shows the persona's suggested prompts on an empty
// transcript.
func (m Model) renderQuickActions() string {
	heading := m.tr.S("chat.suggestions")
	if m.sess.Persona() != "" {
		heading = m.tr.S("chat.quick_actions")
	}

	var b strings.Builder
	b.WriteString(m.theme.QuickActionHeading.Render(heading))
	for i, qa := range session.LabeledQuickActionsFor(m.sess.Persona()) {
		b.WriteString("\n  ")
		b.WriteString(m.theme.ShortcutKey.Render("alt+" + string(rune('1'+i))))
		b.WriteString(" ")
		b.WriteString(m.theme.QuickAction.Render(qa.Label))
	}

	padded := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	return lipgloss.Place(m.viewport.Width, m.viewport.Height, lipgloss.Center, lipgloss.Center, padded)
}

func (m Model) renderAbout() string {
	t := m.theme
	body := t.WelcomeLogo.Render(m.tr.S("app.title")) + "\n\n" +
		t.WelcomeInfo.Render(m.tr.S("app.tagline")) + "\n\n" +
		t.WelcomeInfo.Render("Ask about schemes, check eligibility, simplify\n"+
			"documents, and find jobs or training - in your language.") + "\n\n" +
		t.ShortcutDesc.Render("backend: "+m.client.BaseURL())

	box := t.WelcomeBox.Render(body)
	return lipgloss.Place(m.width, m.height-chromeHeight+3, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderStatusBar() string {
	bar := components.StatusBar{
		Persona:      m.sess.Persona(),
		LowBandwidth: m.sess.LowBandwidth(),
		Processing:   m.loading,
	}
	if m.recorder != nil {
		bar.Recording = m.recorder.State() == audio.StateRecording
	}
	return bar.Render(m.theme, m.width)
}
