// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package home

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/i18n"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
)

func newTestModel() Model {
	return New(
		api.NewClientWithConfig(&api.ClientConfig{BaseURL: "http://127.0.0.1:1"}),
		styles.NewTheme(),
		i18n.New("en"),
	)
}

func TestHome_StartsWithBuiltinPersonas(t *testing.T) {
	m := newTestModel()
	require.Equal(t, []string{
		"Farmer", "Student", "Job Seeker",
		"Small Business Owner", "Senior Citizen", "Differently Abled",
	}, m.personas)
}

func TestHome_BackendListReplacesBuiltin(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(PersonaOptionsMsg{Opts: &api.PersonaOptions{
		Personas: []string{"Farmer", "Student"},
	}})
	require.Equal(t, []string{"Farmer", "Student"}, m.personas)
}

func TestHome_FetchFailureKeepsBuiltin(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(PersonaOptionsMsg{Err: api.ErrBackendDown})
	require.Len(t, m.personas, 6)
}

func TestHome_SelectEmitsPersona(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(SelectedMsg)
	require.True(t, ok)
	require.Equal(t, "Student", msg.Persona)
}

func TestHome_SkipEmitsEmptyPersona(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	msg, ok := cmd().(SelectedMsg)
	require.True(t, ok)
	require.Empty(t, msg.Persona)
}

func TestHome_CursorClamps(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.cursor)

	for i := 0; i < 20; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, len(m.personas)-1, m.cursor)
}
