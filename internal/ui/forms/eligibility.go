// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package forms

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/ui/components"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
	"github.com/jeranaias/janaccess-tui/internal/util"
)

// =============================================================================
// ELIGIBILITY FORM
// =============================================================================

// Eligibility field order.
const (
	eligAge = iota
	eligIncome
	eligCategory
	eligLocation
	eligSubmit
	eligFieldCount
)

// EligibilityResultMsg delivers the outcome of an eligibility check.
type EligibilityResultMsg struct {
	Resp *api.EligibilityResponse
	Err  error
}

// EligibilityForm collects the user's profile and shows matching schemes.
type EligibilityForm struct {
	client *api.Client
	theme  *styles.Theme

	age      textinput.Model
	income   textinput.Model
	location textinput.Model
	category int

	focus   int
	phase   Phase
	errMsg  string
	result  *api.EligibilityResponse
	spinner components.Spinner

	width int
}

// NewEligibilityForm creates the eligibility form.
func NewEligibilityForm(client *api.Client, theme *styles.Theme) EligibilityForm {
	age := textinput.New()
	age.Placeholder = "e.g. 35"
	age.CharLimit = 3
	age.Width = 20
	age.Focus()

	income := textinput.New()
	income.Placeholder = "e.g. 50000"
	income.CharLimit = 12
	income.Width = 20

	location := textinput.New()
	location.Placeholder = "e.g. Bihar"
	location.CharLimit = 60
	location.Width = 30

	return EligibilityForm{
		client:   client,
		theme:    theme,
		age:      age,
		income:   income,
		location: location,
		spinner:  components.NewSpinner(),
	}
}

// SetWidth updates the rendered width.
func (f *EligibilityForm) SetWidth(w int) {
	f.width = w
}

// Submitting reports whether a request is in flight.
func (f EligibilityForm) Submitting() bool {
	return f.phase == PhaseSubmitting
}

// Update handles input and submission results.
func (f EligibilityForm) Update(msg tea.Msg) (EligibilityForm, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return f.handleKey(msg)

	case EligibilityResultMsg:
		f.spinner.Stop()
		if msg.Err != nil {
			f.phase = PhaseError
			f.errMsg = eligibilityFailure
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

func (f EligibilityForm) handleKey(msg tea.KeyMsg) (EligibilityForm, tea.Cmd) {
	// No edits while a request is in flight.
	if f.phase == PhaseSubmitting {
		return f, nil
	}

	switch msg.String() {
	case "esc":
		return f.reset(), nil

	case "up", "shift+tab":
		f.setFocus((f.focus + eligFieldCount - 1) % eligFieldCount)
		return f, nil

	case "down":
		f.setFocus((f.focus + 1) % eligFieldCount)
		return f, nil

	case "left":
		if f.focus == eligCategory {
			f.category = (f.category + len(Categories()) - 1) % len(Categories())
			return f, nil
		}

	case "right":
		if f.focus == eligCategory {
			f.category = (f.category + 1) % len(Categories())
			return f, nil
		}

	case "enter":
		if f.focus == eligSubmit {
			return f.submit()
		}
		f.setFocus(f.focus + 1)
		return f, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case eligAge:
		f.age, cmd = f.age.Update(msg)
	case eligIncome:
		f.income, cmd = f.income.Update(msg)
	case eligLocation:
		f.location, cmd = f.location.Update(msg)
	}
	return f, cmd
}

// reset clears the error, and after a result also clears the draft for a
// fresh check. An error alone keeps the draft so the user can correct it.
func (f EligibilityForm) reset() EligibilityForm {
	if f.phase == PhaseResult {
		f.age.Reset()
		f.income.Reset()
		f.location.Reset()
		f.category = 0
		f.result = nil
		f.setFocus(eligAge)
	}
	f.phase = PhaseIdle
	f.errMsg = ""
	return f
}

func (f *EligibilityForm) setFocus(idx int) {
	f.focus = idx
	f.age.Blur()
	f.income.Blur()
	f.location.Blur()
	switch idx {
	case eligAge:
		f.age.Focus()
	case eligIncome:
		f.income.Focus()
	case eligLocation:
		f.location.Focus()
	}
}

// submit validates the fields and launches the eligibility request.
func (f EligibilityForm) submit() (EligibilityForm, tea.Cmd) {
	age, err := ParseAge(f.age.Value())
	if err != nil {
		f.phase = PhaseError
		f.errMsg = err.Error()
		return f, nil
	}
	income, err := ParseIncome(f.income.Value())
	if err != nil {
		f.phase = PhaseError
		f.errMsg = err.Error()
		return f, nil
	}
	if err := RequireField(f.location.Value()); err != nil {
		f.phase = PhaseError
		f.errMsg = "Please enter your state or location."
		return f, nil
	}

	criteria := api.EligibilityCriteria{
		Age:      age,
		Income:   income,
		Category: Categories()[f.category],
		Location: strings.TrimSpace(f.location.Value()),
	}

	f.phase = PhaseSubmitting
	f.errMsg = ""
	f.result = nil

	client := f.client
	check := func() tea.Msg {
		ctx, cancel := requestContext()
		defer cancel()
		resp, err := client.CheckEligibility(ctx, criteria)
		return EligibilityResultMsg{Resp: resp, Err: err}
	}
	return f, tea.Batch(f.spinner.Start(), check)
}

// View renders the form.
func (f EligibilityForm) View() string {
	t := f.theme
	var b strings.Builder

	b.WriteString(t.FormTitle.Render("Check Your Eligibility"))
	b.WriteString("\n\n")

	b.WriteString(f.renderField(eligAge, "Age", f.age.View()))
	b.WriteString(f.renderField(eligIncome, "Annual Income (₹)", f.income.View()))
	b.WriteString(f.renderField(eligCategory, "Category", f.renderCategory()))
	b.WriteString(f.renderField(eligLocation, "State / Location", f.location.View()))

	b.WriteString("\n")
	submit := t.FormSubmit.Render("Check Eligibility")
	if f.focus == eligSubmit {
		submit = t.FormSubmit.Underline(true).Render("> Check Eligibility <")
	}
	b.WriteString(submit)
	b.WriteString("\n")

	switch f.phase {
	case PhaseSubmitting:
		b.WriteString("\n" + f.spinner.View() + "\n")
	case PhaseError:
		b.WriteString("\n" + components.RenderErrorBox(t, "Eligibility check failed", f.errMsg, f.width) + "\n")
	case PhaseResult:
		b.WriteString("\n" + f.renderResult() + "\n")
		b.WriteString(t.ShortcutDesc.Render("press esc to check again") + "\n")
	}

	return b.String()
}

func (f EligibilityForm) renderField(idx int, label, field string) string {
	style := f.theme.FormLabel
	if f.focus == idx {
		style = style.Bold(true).Foreground(styles.Navy)
	}
	return style.Render(label) + " " + field + "\n"
}

func (f EligibilityForm) renderCategory() string {
	var parts []string
	for i, c := range Categories() {
		if i == f.category {
			parts = append(parts, f.theme.QuickActionFocused.Render(c))
		} else {
			parts = append(parts, f.theme.QuickAction.Render(c))
		}
	}
	return strings.Join(parts, " ")
}

func (f EligibilityForm) renderResult() string {
	t := f.theme
	r := f.result
	inner := f.width - 8
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(t.ResultTitle.Render(fmt.Sprintf("%d scheme(s) found", r.TotalFound)))
	if r.AIExplanation != "" {
		b.WriteString("\n\n")
		b.WriteString(t.ResultBody.Render(util.WrapText(r.AIExplanation, inner)))
	}

	for _, s := range r.EligibleSchemes {
		b.WriteString("\n\n")
		b.WriteString(t.SchemeChip.Render(s.Name))
		if s.Category != "" {
			b.WriteString(" " + t.ShortcutDesc.Render("("+s.Category+")"))
		}
		for _, line := range []struct{ label, text string }{
			{"Benefits", s.Benefits},
			{"Documents", s.DocumentsRequired},
			{"How to apply", s.ApplicationProcess},
			{"Contact", s.ContactInfo},
		} {
			if line.text == "" {
				continue
			}
			b.WriteString("\n  " + t.FormLabel.Render(line.label+":") + " " +
				util.TruncateWidth(line.text, inner))
		}
	}

	return t.ResultBox.MaxWidth(f.width - 2).Render(b.String())
}
