// JanAccess AI TUI - a terminal client for the citizen services assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/audio"
	"github.com/jeranaias/janaccess-tui/internal/cli"
	"github.com/jeranaias/janaccess-tui/internal/config"
	"github.com/jeranaias/janaccess-tui/internal/i18n"
	"github.com/jeranaias/janaccess-tui/internal/logging"
	"github.com/jeranaias/janaccess-tui/internal/session"
	"github.com/jeranaias/janaccess-tui/internal/ui/dashboard"
	"github.com/jeranaias/janaccess-tui/internal/ui/home"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	cmd, args := cli.Parse()
	if args.Debug {
		cfg.Debug = true
	}

	closeLog := logging.Setup(cfg.Debug)
	defer closeLog()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdStats:
		cli.HandleStats(args)
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		runTUI(args)
	}
}

// runTUI starts the full-screen interface.
func runTUI(args cli.Args) {
	cfg := config.Global()

	baseURL := cfg.API.BaseURL
	if args.APIURL != "" {
		baseURL = args.APIURL
	}
	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: baseURL,
		Timeout: cfg.API.Timeout(),
	})

	locale := cfg.UI.Locale
	if args.Locale != "" {
		locale = args.Locale
	}

	persona := cfg.UI.Persona
	if args.Persona != "" {
		persona = args.Persona
	}

	app := newApp(appOptions{
		client:       client,
		locale:       locale,
		persona:      persona,
		lowBandwidth: args.LowBandwidth || cfg.UI.LowBandwidth,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// APP MODEL
// =============================================================================

// screen identifies which top-level screen is active.
type screen int

const (
	screenHome screen = iota
	screenDashboard
)

type appOptions struct {
	client       *api.Client
	locale       string
	persona      string
	lowBandwidth bool
}

// app is the root model: the persona picker first, then the dashboard.
type app struct {
	client *api.Client
	theme  *styles.Theme
	tr     *i18n.T
	sess   *session.Context

	home      home.Model
	dashboard dashboard.Model

	active   screen
	lastSize tea.WindowSizeMsg
}

func newApp(opts appOptions) app {
	theme := styles.NewTheme()
	tr := i18n.New(opts.locale)
	sess := session.NewContext(opts.persona, opts.lowBandwidth)

	a := app{
		client: opts.client,
		theme:  theme,
		tr:     tr,
		sess:   sess,
		home:   home.New(opts.client, theme, tr),
	}

	// A preset persona skips the picker.
	if opts.persona != "" {
		a.dashboard = newDashboard(opts.client, theme, tr, sess)
		a.active = screenDashboard
	}
	return a
}

// newDashboard wires the dashboard with whatever audio tooling this machine
// has. Missing tools disable voice and playback, not the app.
func newDashboard(client *api.Client, theme *styles.Theme, tr *i18n.T, sess *session.Context) dashboard.Model {
	cfg := config.Global()

	var recorder *audio.Recorder
	if capture, err := audio.NewCapture(cfg.Audio.RecordCommand); err == nil {
		recorder = audio.NewRecorder(capture)
	} else {
		slog.Warn("voice input disabled", "error", err)
	}

	player, err := audio.NewPlayer(cfg.Audio.PlayCommand)
	if err != nil {
		slog.Warn("audio playback disabled", "error", err)
		player = nil
	}

	return dashboard.New(dashboard.Options{
		Client:   client,
		Theme:    theme,
		Locale:   tr,
		Session:  sess,
		Recorder: recorder,
		Player:   player,
	})
}

// Init starts the active screen.
func (a app) Init() tea.Cmd {
	if a.active == screenDashboard {
		return a.dashboard.Init()
	}
	return a.home.Init()
}

// Update routes messages to the active screen and handles the home to
// dashboard transition.
func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.lastSize = msg

	case home.SelectedMsg:
		a.sess.SetPersona(msg.Persona)
		a.dashboard = newDashboard(a.client, a.theme, a.tr, a.sess)
		a.active = screenDashboard

		cmds := []tea.Cmd{a.dashboard.Init()}
		if a.lastSize.Width > 0 {
			// Replay the last resize so the new screen lays itself out.
			size := a.lastSize
			cmds = append(cmds, func() tea.Msg { return size })
		}
		return a, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	switch a.active {
	case screenHome:
		a.home, cmd = a.home.Update(msg)
	case screenDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	}
	return a, cmd
}

// View renders the active screen.
func (a app) View() string {
	if a.active == screenDashboard {
		return a.dashboard.View()
	}
	return a.home.View()
}
