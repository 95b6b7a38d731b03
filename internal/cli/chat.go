// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive plain-terminal chat for the JanAccess CLI.
//
// Handles "janaccess chat", a readline-style loop for terminals where the
// full TUI is unwanted (SSH sessions, screen readers, scripts with a pty).
//
// Slash commands:
//   /persona NAME    Switch persona (blank to clear)
//   /audio           Toggle audio replies (low-bandwidth mode)
//   /clear           Forget the on-screen conversation
//   /help            Show slash commands
//   /quit            Exit
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/config"
	"github.com/jeranaias/janaccess-tui/internal/logging"
	"github.com/jeranaias/janaccess-tui/internal/session"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.SaffronDeep).
			Bold(true)

	chatInfoStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	chatErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	chatHeaderStyle = lipgloss.NewStyle().
			Foreground(styles.Navy).
			Bold(true)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatInput wraps liner with persistent history across sessions.
type ChatInput struct {
	line        *liner.State
	historyFile string
}

// NewChatInput creates the input reader and loads saved history.
func NewChatInput() *ChatInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	historyFile := filepath.Join(home, logging.DefaultDir, "chat_history")

	c := &ChatInput{line: line, historyFile: historyFile}
	c.loadHistory()
	return c
}

func (c *ChatInput) loadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads one line with history navigation.
func (c *ChatInput) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// saveHistory persists history with owner-only permissions.
func (c *ChatInput) saveHistory() {
	if err := os.MkdirAll(filepath.Dir(c.historyFile), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and releases the terminal.
func (c *ChatInput) Close() {
	c.saveHistory()
	c.line.Close()
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChatCommand runs the interactive chat loop.
func HandleChatCommand(args Args) error {
	client := newClient(args)
	sess := session.NewContext(resolvePersona(args),
		args.LowBandwidth || config.Global().UI.LowBandwidth)

	// Fail fast with a clear message when the backend is down.
	ctx, cancel := context.WithTimeout(context.Background(), config.Global().API.Timeout())
	err := client.CheckRunning(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n",
			chatErrorStyle.Render("Backend is not reachable at "+client.BaseURL()))
		fmt.Fprintln(os.Stderr, "Start it with: uvicorn main:app --port 8000")
		return err
	}

	if !args.Quiet {
		printChatWelcome(sess)
	}

	input := NewChatInput()
	defer input.Close()

	for {
		line, err := input.ReadInput(promptStyle.Render("janaccess> "))
		if err != nil {
			// Ctrl+C or Ctrl+D: exit gracefully.
			fmt.Println()
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if !handleSlashCommand(line, sess) {
				return nil
			}
			continue
		}

		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			return nil
		}

		askOne(client, sess, line)
	}
}

// askOne sends one question and prints the reply.
func askOne(client *api.Client, sess *session.Context, question string) {
	ctx, cancel := context.WithTimeout(context.Background(), config.Global().API.Timeout())
	defer cancel()

	resp, err := client.Chat(ctx, question, sess.LowBandwidth(), sess.Persona())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", chatErrorStyle.Render("[Error]"), err)
		return
	}

	fmt.Println()
	displayAnswer(resp.TextResponse)
	printSchemes(resp.Schemes)
	fmt.Println()
}

// handleSlashCommand processes a slash command. Returns false to exit.
func handleSlashCommand(line string, sess *session.Context) bool {
	parts := strings.Fields(line)
	cmd := strings.ToLower(parts[0])

	switch cmd {
	case "/quit", "/exit", "/q":
		return false

	case "/persona":
		if len(parts) < 2 {
			sess.SetPersona("")
			fmt.Println(chatInfoStyle.Render("persona cleared"))
			return true
		}
		persona := strings.Join(parts[1:], " ")
		sess.SetPersona(persona)
		fmt.Println(chatInfoStyle.Render("persona: " + persona))

	case "/audio", "/low-bandwidth":
		sess.ToggleLowBandwidth()
		if sess.LowBandwidth() {
			fmt.Println(chatInfoStyle.Render("audio replies off (low bandwidth)"))
		} else {
			fmt.Println(chatInfoStyle.Render("audio replies on"))
		}

	case "/clear":
		fmt.Print("\033[2J\033[H")

	case "/help", "/?":
		printSlashHelp()

	default:
		fmt.Println(chatInfoStyle.Render("unknown command: " + cmd + " (try /help)"))
	}
	return true
}

// printChatWelcome prints the session header.
func printChatWelcome(sess *session.Context) {
	fmt.Println(chatHeaderStyle.Render("JanAccess AI"))
	fmt.Println(chatInfoStyle.Render("Ask about government schemes, in plain words."))
	if sess.Persona() != "" {
		fmt.Println(chatInfoStyle.Render("persona: " + sess.Persona()))
	}
	fmt.Println(chatInfoStyle.Render("Type /help for commands, /quit to exit."))
	fmt.Println()
}

// printSlashHelp lists the slash commands.
func printSlashHelp() {
	rows := [][2]string{
		{"/persona NAME", "switch persona (blank to clear)"},
		{"/audio", "toggle audio replies"},
		{"/clear", "clear the screen"},
		{"/help", "show this help"},
		{"/quit", "exit"},
	}
	for _, r := range rows {
		fmt.Printf("  %-16s %s\n", r[0], chatInfoStyle.Render(r[1]))
	}
}
