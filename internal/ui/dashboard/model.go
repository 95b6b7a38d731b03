// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/audio"
	"github.com/jeranaias/janaccess-tui/internal/i18n"
	"github.com/jeranaias/janaccess-tui/internal/model"
	"github.com/jeranaias/janaccess-tui/internal/session"
	"github.com/jeranaias/janaccess-tui/internal/ui/components"
	"github.com/jeranaias/janaccess-tui/internal/ui/forms"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
)

// =============================================================================
// TABS
// =============================================================================

// Tab identifies one dashboard section.
type Tab int

const (
	TabChat Tab = iota
	TabEligibility
	TabDocuments
	TabSkills
	TabAbout
	tabCount
)

// tabKeys are the i18n catalog keys for the tab labels, in order.
var tabKeys = []string{"tab.chat", "tab.eligibility", "tab.documents", "tab.skills", "tab.about"}

// =============================================================================
// MODEL
// =============================================================================

// Model is the tabbed dashboard screen.
type Model struct {
	client *api.Client
	theme  *styles.Theme
	tr     *i18n.T

	sess       *session.Context
	transcript *model.Transcript

	// Chat tab
	viewport viewport.Model
	input    textinput.Model
	spinner  components.Spinner
	loading  bool

	// Voice
	recorder *audio.Recorder
	player   *audio.Player
	playing  bool

	// Form tabs
	eligibility forms.EligibilityForm
	documents   forms.DocumentForm
	skills      forms.SkillsForm

	activeTab Tab
	width     int
	height    int
	ready     bool
}

// Options configures the dashboard.
type Options struct {
	Client   *api.Client
	Theme    *styles.Theme
	Locale   *i18n.T
	Session  *session.Context
	Recorder *audio.Recorder
	Player   *audio.Player
}

// New creates the dashboard model.
func New(opts Options) Model {
	input := textinput.New()
	input.Placeholder = opts.Locale.S("chat.placeholder")
	input.CharLimit = 500
	input.Width = 60
	input.Focus()

	return Model{
		client:      opts.Client,
		theme:       opts.Theme,
		tr:          opts.Locale,
		sess:        opts.Session,
		transcript:  model.NewTranscript(),
		input:       input,
		spinner:     components.NewThinkingSpinner(),
		recorder:    opts.Recorder,
		player:      opts.Player,
		eligibility: forms.NewEligibilityForm(opts.Client, opts.Theme),
		documents:   forms.NewDocumentForm(opts.Client, opts.Theme),
		skills:      forms.NewSkillsForm(opts.Client, opts.Theme),
	}
}

// Init returns the initial command for the dashboard screen.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Transcript exposes the conversation history.
func (m Model) Transcript() *model.Transcript {
	return m.transcript
}

// Loading reports whether an assistant request is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// ActiveTab returns the current tab.
func (m Model) ActiveTab() Tab {
	return m.activeTab
}

// canRecord reports whether voice input is available.
func (m Model) canRecord() bool {
	return m.recorder != nil
}

// lastAudioRef finds the most recent assistant turn with an audio reply.
func (m Model) lastAudioRef() string {
	turns := m.transcript.Turns()
	for i := len(turns) - 1; i >= 0; i-- {
		if !turns[i].IsUser() && turns[i].HasAudio() {
			return turns[i].AudioRef
		}
	}
	return ""
}
