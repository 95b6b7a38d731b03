// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package forms

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
)

func testDeps() (*api.Client, *styles.Theme) {
	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		Timeout: time.Second,
	})
	return client, styles.NewTheme()
}

func TestEligibilityEsc_AfterResultClearsDraft(t *testing.T) {
	client, theme := testDeps()
	f := NewEligibilityForm(client, theme)
	f.age.SetValue("35")
	f.income.SetValue("50000")
	f.location.SetValue("Bihar")
	f.category = 2
	f.phase = PhaseResult
	f.result = &api.EligibilityResponse{TotalFound: 1}

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, PhaseIdle, f.phase)
	require.Nil(t, f.result)
	require.Empty(t, f.age.Value())
	require.Empty(t, f.income.Value())
	require.Empty(t, f.location.Value())
	require.Zero(t, f.category)
	require.Equal(t, eligAge, f.focus)
}

func TestEligibilityEsc_AfterErrorKeepsDraft(t *testing.T) {
	client, theme := testDeps()
	f := NewEligibilityForm(client, theme)
	f.age.SetValue("abc")
	f.phase = PhaseError
	f.errMsg = ErrAgeOutOfRange.Error()

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, PhaseIdle, f.phase)
	require.Empty(t, f.errMsg)
	require.Equal(t, "abc", f.age.Value())
}

func TestSkillsEducation_CyclesWithArrows(t *testing.T) {
	client, theme := testDeps()
	f := NewSkillsForm(client, theme)
	require.Equal(t, skillEducation, f.focus)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, f.education)

	// Left from the first entry wraps to the last.
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, len(EducationLevels())-1, f.education)
}

func TestSkillsEsc_AfterResultClearsDraft(t *testing.T) {
	client, theme := testDeps()
	f := NewSkillsForm(client, theme)
	f.education = 3
	f.interest.SetValue("Computers")
	f.location.SetValue("Patna")
	f.phase = PhaseResult
	f.result = &api.SkillJobResponse{AISummary: "two options"}

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, PhaseIdle, f.phase)
	require.Nil(t, f.result)
	require.Zero(t, f.education)
	require.Empty(t, f.interest.Value())
	require.Empty(t, f.location.Value())
}

func TestDocumentEsc_AfterErrorKeepsPath(t *testing.T) {
	client, theme := testDeps()
	f := NewDocumentForm(client, theme)
	f.path.SetValue("/no/such/file.pdf")

	f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.Equal(t, PhaseError, f.phase)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, PhaseIdle, f.phase)
	require.Empty(t, f.errMsg)
	require.Equal(t, "/no/such/file.pdf", f.path.Value())
}

func TestDocumentEsc_AfterResultClearsPath(t *testing.T) {
	client, theme := testDeps()
	f := NewDocumentForm(client, theme)
	f.path.SetValue("/tmp/notice.txt")
	f.phase = PhaseResult
	f.result = &api.AnalysisResponse{Filename: "notice.txt"}

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, PhaseIdle, f.phase)
	require.Nil(t, f.result)
	require.Empty(t, f.path.Value())
}

func TestForms_IgnoreKeysWhileSubmitting(t *testing.T) {
	client, theme := testDeps()

	elig := NewEligibilityForm(client, theme)
	elig.phase = PhaseSubmitting
	elig, _ = elig.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, PhaseSubmitting, elig.phase)

	skills := NewSkillsForm(client, theme)
	skills.phase = PhaseSubmitting
	skills, _ = skills.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Zero(t, skills.education)

	doc := NewDocumentForm(client, theme)
	doc.phase = PhaseSubmitting
	doc.path.SetValue("x")
	doc, cmd := doc.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.Equal(t, PhaseSubmitting, doc.phase)
}
