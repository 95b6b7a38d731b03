// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package forms

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/ui/components"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
	"github.com/jeranaias/janaccess-tui/internal/util"
)

// =============================================================================
// SKILLS & JOBS FORM
// =============================================================================

// Skills field order.
const (
	skillEducation = iota
	skillInterest
	skillLocation
	skillSubmit
	skillFieldCount
)

// SkillsResultMsg delivers the outcome of a recommendation request.
type SkillsResultMsg struct {
	Resp *api.SkillJobResponse
	Err  error
}

// SkillsForm collects a profile and shows job and training recommendations.
type SkillsForm struct {
	client *api.Client
	theme  *styles.Theme

	education int
	interest  textinput.Model
	location  textinput.Model

	focus   int
	phase   Phase
	errMsg  string
	result  *api.SkillJobResponse
	spinner components.Spinner

	width int
}

// NewSkillsForm creates the skills form.
func NewSkillsForm(client *api.Client, theme *styles.Theme) SkillsForm {
	interest := textinput.New()
	interest.Placeholder = "e.g. Computers"
	interest.CharLimit = 60
	interest.Width = 30

	location := textinput.New()
	location.Placeholder = "e.g. Patna"
	location.CharLimit = 60
	location.Width = 30

	return SkillsForm{
		client:   client,
		theme:    theme,
		interest: interest,
		location: location,
		spinner:  components.NewSpinner(),
	}
}

// SetWidth updates the rendered width.
func (f *SkillsForm) SetWidth(w int) {
	f.width = w
}

// Submitting reports whether a request is in flight.
func (f SkillsForm) Submitting() bool {
	return f.phase == PhaseSubmitting
}

// Update handles input and submission results.
func (f SkillsForm) Update(msg tea.Msg) (SkillsForm, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return f.handleKey(msg)

	case SkillsResultMsg:
		f.spinner.Stop()
		if msg.Err != nil {
			f.phase = PhaseError
			f.errMsg = skillsFailure
			return f, nil
		}
		f.phase = PhaseResult
		f.result = msg.Resp
		return f, nil

	default:
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd
	}
}

func (f SkillsForm) handleKey(msg tea.KeyMsg) (SkillsForm, tea.Cmd) {
	if f.phase == PhaseSubmitting {
		return f, nil
	}

	switch msg.String() {
	case "esc":
		return f.reset(), nil

	case "up", "shift+tab":
		f.setFocus((f.focus + skillFieldCount - 1) % skillFieldCount)
		return f, nil

	case "down":
		f.setFocus((f.focus + 1) % skillFieldCount)
		return f, nil

	case "left":
		if f.focus == skillEducation {
			f.education = (f.education + len(EducationLevels()) - 1) % len(EducationLevels())
			return f, nil
		}

	case "right":
		if f.focus == skillEducation {
			f.education = (f.education + 1) % len(EducationLevels())
			return f, nil
		}

	case "enter":
		if f.focus == skillSubmit {
			return f.submit()
		}
		f.setFocus(f.focus + 1)
		return f, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case skillInterest:
		f.interest, cmd = f.interest.Update(msg)
	case skillLocation:
		f.location, cmd = f.location.Update(msg)
	}
	return f, cmd
}

// reset clears the error, and after a result also clears the draft for a
// fresh request. An error alone keeps the draft so the user can correct it.
func (f SkillsForm) reset() SkillsForm {
	if f.phase == PhaseResult {
		f.education = 0
		f.interest.Reset()
		f.location.Reset()
		f.result = nil
		f.setFocus(skillEducation)
	}
	f.phase = PhaseIdle
	f.errMsg = ""
	return f
}

func (f *SkillsForm) setFocus(idx int) {
	f.focus = idx
	f.interest.Blur()
	f.location.Blur()
	switch idx {
	case skillInterest:
		f.interest.Focus()
	case skillLocation:
		f.location.Focus()
	}
}

// submit validates the fields and launches the recommendation request.
func (f SkillsForm) submit() (SkillsForm, tea.Cmd) {
	for _, field := range []struct {
		value string
		blank string
	}{
		{f.interest.Value(), "Please enter an area of interest."},
		{f.location.Value(), "Please enter a preferred location."},
	} {
		if err := RequireField(field.value); err != nil {
			f.phase = PhaseError
			f.errMsg = field.blank
			return f, nil
		}
	}

	input := api.SkillJobInput{
		EducationLevel: EducationLevels()[f.education],
		Interest:       strings.TrimSpace(f.interest.Value()),
		Location:       strings.TrimSpace(f.location.Value()),
	}

	f.phase = PhaseSubmitting
	f.errMsg = ""
	f.result = nil

	client := f.client
	recommend := func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		resp, err := client.GetSkillRecommendations(ctx, input)
		return SkillsResultMsg{Resp: resp, Err: err}
	}
	return f, tea.Batch(f.spinner.Start(), recommend)
}

// View renders the form.
func (f SkillsForm) View() string {
	t := f.theme
	var b strings.Builder

	b.WriteString(t.FormTitle.Render("Skills & Job Recommendations"))
	b.WriteString("\n\n")

	b.WriteString(f.renderField(skillEducation, "Education Level", f.renderEducation()))
	b.WriteString(f.renderField(skillInterest, "Area of Interest", f.interest.View()))
	b.WriteString(f.renderField(skillLocation, "Preferred Location", f.location.View()))

	b.WriteString("\n")
	submit := t.FormSubmit.Render("Get Recommendations")
	if f.focus == skillSubmit {
		submit = t.FormSubmit.Underline(true).Render("> Get Recommendations <")
	}
	b.WriteString(submit)
	b.WriteString("\n")

	switch f.phase {
	case PhaseSubmitting:
		b.WriteString("\n" + f.spinner.View() + "\n")
	case PhaseError:
		b.WriteString("\n" + components.RenderErrorBox(t, "Recommendations failed", f.errMsg, f.width) + "\n")
	case PhaseResult:
		b.WriteString("\n" + f.renderResult() + "\n")
		b.WriteString(t.ShortcutDesc.Render("press esc to start over") + "\n")
	}

	return b.String()
}

func (f SkillsForm) renderField(idx int, label, field string) string {
	style := f.theme.FormLabel
	if f.focus == idx {
		style = style.Bold(true).Foreground(styles.Navy)
	}
	return style.Render(label) + " " + field + "\n"
}

func (f SkillsForm) renderEducation() string {
	var parts []string
	for i, level := range EducationLevels() {
		if i == f.education {
			parts = append(parts, f.theme.QuickActionFocused.Render(level))
		} else {
			parts = append(parts, f.theme.QuickAction.Render(level))
		}
	}
	return strings.Join(parts, " ")
}

func (f SkillsForm) renderResult() string {
	t := f.theme
	r := f.result
	inner := f.width - 8
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	if r.AISummary != "" {
		b.WriteString(t.ResultBody.Render(util.WrapText(r.AISummary, inner)))
	}

	for _, rec := range r.Recommendations {
		b.WriteString("\n\n")
		badge := "JOB"
		if rec.Type == api.RecommendationTraining {
			badge = "TRAINING"
		}
		b.WriteString(t.SchemeChip.Render(badge) + " " + t.ResultTitle.Render(rec.Title))
		if rec.Description != "" {
			b.WriteString("\n  " + util.WrapText(rec.Description, inner-2))
		}
		if rec.Provider != "" {
			b.WriteString("\n  " + t.ShortcutDesc.Render("by "+rec.Provider))
		}
		if rec.Location != "" {
			b.WriteString("\n  " + t.ShortcutDesc.Render("at "+rec.Location))
		}
	}

	return t.ResultBox.MaxWidth(f.width - 2).Render(b.String())
}
