// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single query command handler for the JanAccess CLI.
//
// Handles "janaccess ask" which sends one question to the backend and
// prints the answer with any related schemes.
//
// Examples:
//   janaccess ask "What is PM-KISAN?"
//   janaccess ask --persona Farmer "What crop subsidies can I get?"
//   echo "Scholarships for SC students" | janaccess ask
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/config"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the shared glamour renderer for answer output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Plain text fallback if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown for terminal display. Returns the content
// unchanged if rendering fails.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayAnswer prints the answer, rendering markdown only on a TTY so
// piped output stays plain.
func displayAnswer(answer string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(answer))
	} else {
		fmt.Println(answer)
	}
}

// =============================================================================
// STYLES
// =============================================================================

var (
	askInfoStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	askSchemeStyle = lipgloss.NewStyle().
			Foreground(styles.GreenDeep).
			Bold(true)

	askLinkStyle = lipgloss.NewStyle().
			Foreground(styles.Navy).
			Underline(true)

	askErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)
)

// =============================================================================
// CLIENT SETUP
// =============================================================================

// newClient builds the API client from config, honoring --api-url.
func newClient(args Args) *api.Client {
	cfg := config.Global()
	baseURL := cfg.API.BaseURL
	if args.APIURL != "" {
		baseURL = args.APIURL
	}
	return api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: baseURL,
		Timeout: cfg.API.Timeout(),
	})
}

// resolvePersona picks the persona from the CLI flag or config.
func resolvePersona(args Args) string {
	if args.Persona != "" {
		return args.Persona
	}
	return config.Global().UI.Persona
}

// =============================================================================
// ASK HANDLER
// =============================================================================

// HandleAskCommand sends a single question to the backend and prints the
// answer with its related schemes.
func HandleAskCommand(args Args) error {
	question := args.Query

	// Piped input: read the question from stdin.
	if question == "" && !IsTTY() {
		reader := bufio.NewReader(os.Stdin)
		data, err := io.ReadAll(reader)
		if err == nil && len(data) > 0 {
			question = strings.TrimSpace(string(data))
		}
	}

	if question == "" {
		return NewUsageError(`no question provided. Usage: janaccess ask "your question"`)
	}

	client := newClient(args)
	persona := resolvePersona(args)
	lowBandwidth := args.LowBandwidth || config.Global().UI.LowBandwidth

	if !args.Quiet && persona != "" {
		fmt.Fprintf(os.Stderr, "%s\n", askInfoStyle.Render("persona: "+persona))
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Global().API.Timeout())
	defer cancel()

	start := time.Now()
	resp, err := client.Chat(ctx, question, lowBandwidth, persona)
	if err != nil {
		if api.IsBackendDown(err) {
			fmt.Fprintf(os.Stderr, "%s\n",
				askErrorStyle.Render("Backend is not reachable at "+client.BaseURL()))
			fmt.Fprintln(os.Stderr, "Start it with: uvicorn main:app --port 8000")
		}
		return err
	}

	displayAnswer(resp.TextResponse)
	printSchemes(resp.Schemes)

	if !args.Quiet {
		fmt.Fprintf(os.Stderr, "%s\n",
			askInfoStyle.Render(fmt.Sprintf("answered in %v", time.Since(start).Round(time.Millisecond))))
	}
	return nil
}

// printSchemes lists the related schemes under the answer.
func printSchemes(schemes []api.Scheme) {
	if len(schemes) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(askSchemeStyle.Render("Related schemes:"))
	for _, s := range schemes {
		line := "  - " + s.Name
		if s.Website != "" && IsStdoutTTY() {
			line += "  " + askLinkStyle.Render(s.Website)
		} else if s.Website != "" {
			line += "  " + s.Website
		}
		fmt.Println(line)
	}
}
