// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package home implements the landing screen: a persona picker that
// personalizes the assistant before the dashboard opens.
package home

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/config"
	"github.com/jeranaias/janaccess-tui/internal/i18n"
	"github.com/jeranaias/janaccess-tui/internal/session"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// PersonaOptionsMsg delivers the backend's persona list.
type PersonaOptionsMsg struct {
	Opts *api.PersonaOptions
	Err  error
}

// SelectedMsg reports the chosen persona. An empty Persona means the user
// skipped personalization.
type SelectedMsg struct {
	Persona string
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the persona picker screen.
type Model struct {
	client *api.Client
	theme  *styles.Theme
	tr     *i18n.T

	personas []string
	cursor   int

	width  int
	height int
}

// New creates the home screen with the built-in persona list; the backend's
// list replaces it once fetched.
func New(client *api.Client, theme *styles.Theme, tr *i18n.T) Model {
	return Model{
		client:   client,
		theme:    theme,
		tr:       tr,
		personas: session.Personas(),
	}
}

// Init fetches the persona options from the backend.
func (m Model) Init() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), config.Global().API.Timeout())
		defer cancel()
		opts, err := client.GetPersonaOptions(ctx)
		return PersonaOptionsMsg{Opts: opts, Err: err}
	}
}

// Update handles messages for the home screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case PersonaOptionsMsg:
		// Backend unavailable: keep the built-in list.
		if msg.Err == nil && msg.Opts != nil && len(msg.Opts.Personas) > 0 {
			m.personas = msg.Opts.Personas
			if m.cursor >= len(m.personas) {
				m.cursor = len(m.personas) - 1
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if m.cursor < len(m.personas)-1 {
				m.cursor++
			}
			return m, nil

		case "enter":
			persona := m.personas[m.cursor]
			return m, func() tea.Msg { return SelectedMsg{Persona: persona} }

		case "esc", "s":
			return m, func() tea.Msg { return SelectedMsg{} }
		}
	}
	return m, nil
}

// View renders the home screen.
func (m Model) View() string {
	t := m.theme

	var b strings.Builder
	b.WriteString(t.WelcomeLogo.Render(m.tr.S("app.title")))
	b.WriteString("\n")
	b.WriteString(t.WelcomeInfo.Render(m.tr.S("app.tagline")))
	b.WriteString("\n\n")
	b.WriteString(t.WelcomeInfo.Render(m.tr.S("home.choose_persona")))
	b.WriteString("\n\n")

	for i, p := range m.personas {
		if i == m.cursor {
			b.WriteString(t.PersonaSelected.Render("> " + p))
		} else {
			b.WriteString(t.PersonaItem.Render("  " + p))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.ShortcutKey.Render("enter") + t.ShortcutDesc.Render(" select  "))
	b.WriteString(t.ShortcutKey.Render("esc") + t.ShortcutDesc.Render(" "+m.tr.S("home.skip")))

	box := t.WelcomeBox.Render(b.String())
	if m.width == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
