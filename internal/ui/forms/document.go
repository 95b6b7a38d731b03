// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package forms

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/ui/components"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
	"github.com/jeranaias/janaccess-tui/internal/util"
)

// =============================================================================
// DOCUMENT FORM
// =============================================================================

// AnalysisResultMsg delivers the outcome of a document analysis.
type AnalysisResultMsg struct {
	Resp *api.AnalysisResponse
	Err  error
}

// DocumentForm takes a local file path, validates it, and shows the
// backend's plain-language rendering of the document.
type DocumentForm struct {
	client *api.Client
	theme  *styles.Theme

	path    textinput.Model
	phase   Phase
	errMsg  string
	result  *api.AnalysisResponse
	spinner components.Spinner

	width int
}

// NewDocumentForm creates the document form.
func NewDocumentForm(client *api.Client, theme *styles.Theme) DocumentForm {
	path := textinput.New()
	path.Placeholder = "path to a .txt or .pdf document"
	path.CharLimit = 512
	path.Width = 48
	path.Focus()

	return DocumentForm{
		client:  client,
		theme:   theme,
		path:    path,
		spinner: components.NewSpinner(),
	}
}

// SetWidth updates the rendered width.
func (f *DocumentForm) SetWidth(w int) {
	f.width = w
}

// Submitting reports whether a request is in flight.
func (f DocumentForm) Submitting() bool {
	return f.phase == PhaseSubmitting
}

// Update handles input and submission results.
func (f DocumentForm) Update(msg tea.Msg) (DocumentForm, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if f.phase == PhaseSubmitting {
			return f, nil
		}
		switch msg.String() {
		case "esc":
			return f.reset(), nil
		case "enter":
			return f.submit()
		}
		var cmd tea.Cmd
		f.path, cmd = f.path.Update(msg)
		return f, cmd

	case AnalysisResultMsg:
		f.spinner.Stop()
		if msg.Err != nil {
			f.phase = PhaseError
			f.errMsg = documentFailure
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

// reset clears the error, and after a result also clears the path so another
// document can be uploaded. An error alone keeps the path for correction.
func (f DocumentForm) reset() DocumentForm {
	if f.phase == PhaseResult {
		f.path.Reset()
		f.result = nil
	}
	f.phase = PhaseIdle
	f.errMsg = ""
	return f
}

// submit validates the file locally, then uploads it.
func (f DocumentForm) submit() (DocumentForm, tea.Cmd) {
	path := strings.TrimSpace(f.path.Value())
	if path == "" {
		f.phase = PhaseError
		f.errMsg = ErrDocumentType.Error()
		return f, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		f.phase = PhaseError
		f.errMsg = "Could not read the file. Check the path and try again."
		return f, nil
	}
	if err := ValidateDocument(path, info.Size()); err != nil {
		f.phase = PhaseError
		f.errMsg = err.Error()
		return f, nil
	}

	f.phase = PhaseSubmitting
	f.errMsg = ""
	f.result = nil

	client := f.client
	filename := filepath.Base(path)
	analyze := func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return AnalysisResultMsg{Err: err}
		}
		defer file.Close()

		ctx, cancel := requestContext()
		defer cancel()
		resp, err := client.AnalyzeDocument(ctx, file, filename)
		return AnalysisResultMsg{Resp: resp, Err: err}
	}
	return f, tea.Batch(f.spinner.Start(), analyze)
}

// View renders the form.
func (f DocumentForm) View() string {
	t := f.theme
	inner := f.width - 8
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(t.FormTitle.Render("Simplify a Document"))
	b.WriteString("\n")
	b.WriteString(t.WelcomeInfo.Render("Upload a .txt or .pdf government document (max 5MB)"))
	b.WriteString("\n\n")
	b.WriteString(t.FormLabel.Render("File path") + " " + f.path.View())
	b.WriteString("\n\n")
	b.WriteString(t.ShortcutDesc.Render("press enter to analyze"))
	b.WriteString("\n")

	switch f.phase {
	case PhaseSubmitting:
		b.WriteString("\n" + f.spinner.View() + "\n")
	case PhaseError:
		b.WriteString("\n" + components.RenderErrorBox(t, "Document analysis failed", f.errMsg, f.width) + "\n")
	case PhaseResult:
		r := f.result
		var body strings.Builder
		body.WriteString(t.ResultTitle.Render(r.Filename))
		if r.Summary != "" {
			body.WriteString("\n\n" + t.FormLabel.Render("Summary:") + "\n" +
				t.ResultBody.Render(util.WrapText(r.Summary, inner)))
		}
		if r.Simplification != "" {
			body.WriteString("\n\n" + t.FormLabel.Render("In plain words:") + "\n" +
				t.ResultBody.Render(util.WrapText(r.Simplification, inner)))
		}
		if r.NextSteps != "" {
			body.WriteString("\n\n" + t.FormLabel.Render("Next steps:") + "\n" +
				t.ResultBody.Render(util.WrapText(r.NextSteps, inner)))
		}
		b.WriteString("\n" + t.ResultBox.MaxWidth(f.width-2).Render(body.String()) + "\n")
		b.WriteString(t.ShortcutDesc.Render("press esc to upload another") + "\n")
	}

	return b.String()
}
