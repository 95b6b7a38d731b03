// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command-line interface for the JanAccess client.
//
// Parses os.Args into a command plus flags and dispatches to the
// per-command handlers. Running with no command opens the TUI.
//
// Commands:
//   (none)    Launch the interactive TUI
//   ask       Ask a single question and print the answer
//   chat      Interactive chat in plain terminal mode (no TUI)
//   stats     Show usage analytics from the backend
//   version   Show version information
//   help      Show this help
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// =============================================================================
// VERSION INFO
// =============================================================================

// Version information, set at build time via ldflags.
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// COMMAND TYPES
// =============================================================================

// Command represents a CLI command.
type Command int

const (
	// CmdTUI launches the interactive TUI (default).
	CmdTUI Command = iota
	// CmdAsk sends a single question and prints the answer.
	CmdAsk
	// CmdChat runs the plain-terminal interactive chat.
	CmdChat
	// CmdStats prints usage analytics from the backend.
	CmdStats
	// CmdVersion shows version information.
	CmdVersion
	// CmdHelp shows usage information.
	CmdHelp
)

// Args holds parsed command arguments.
type Args struct {
	// Query is the question text for the ask command.
	Query string

	// Persona personalizes answers (e.g. "Farmer", "Student").
	Persona string

	// Locale selects the interface language (en, hi, ta, bn).
	Locale string

	// APIURL overrides the backend base URL.
	APIURL string

	// LowBandwidth skips audio replies.
	LowBandwidth bool

	// Limit caps list lengths for the stats command.
	Limit int

	// Quiet suppresses informational output.
	Quiet bool

	// Debug enables debug logging.
	Debug bool

	// Raw holds unparsed arguments for the default TUI command.
	Raw []string
}

// =============================================================================
// USAGE TEXT
// =============================================================================

const usageText = `JanAccess AI - citizen services assistant

USAGE:
    janaccess [COMMAND] [OPTIONS]

COMMANDS:
    (none)              Launch the interactive TUI
    ask "question"      Ask a single question and print the answer
    chat                Interactive chat in plain terminal mode
    stats               Show usage analytics from the backend
    version             Show version information
    help                Show this help

GLOBAL OPTIONS:
    --persona NAME      Personalize answers (Farmer, Student, Job Seeker,
                        Small Business Owner, Senior Citizen, Differently Abled)
    --locale CODE       Interface language: en, hi, ta, bn
    --api-url URL       Backend base URL (default: http://127.0.0.1:8000)
    --low-bandwidth     Skip audio replies
    -q, --quiet         Minimal output
    --debug             Enable debug logging

STATS OPTIONS:
    --limit N           Max rows per list (default: 5)

EXAMPLES:
    janaccess
    janaccess ask "What is PM-KISAN?"
    janaccess ask --persona Farmer "What crop subsidies can I get?"
    janaccess chat --locale hi
    janaccess stats --limit 10

The backend must be running on the configured URL. Start it with:
    uvicorn main:app --port 8000

Version: %s
`

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("janaccess %s\n", Version)
	fmt.Printf("  commit: %s\n", GitCommit)
	fmt.Printf("  built:  %s\n", BuildDate)
}

// =============================================================================
// ARGUMENT PARSING
// =============================================================================

// Parse parses os.Args and returns the command and its arguments.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument list.
func ParseArgs(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	rest := remaining[1:]

	switch cmd {
	case "ask":
		parseAskArgs(&args, rest)
		return CmdAsk, args

	case "chat":
		return CmdChat, args

	case "stats", "analytics":
		parseStatsArgs(&args, rest)
		return CmdStats, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		// Unknown command: treat it as TUI launch, same as the web app
		// redirecting stray routes to the dashboard.
		args.Raw = append([]string{cmd}, rest...)
		return CmdTUI, args
	}
}

// parseGlobalFlags extracts flags valid for every command and returns the
// remaining positional arguments.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var remaining []string
	args := Args{Limit: 5}

	i := 0
	for i < len(argv) {
		arg := argv[i]

		switch arg {
		case "--persona", "-p":
			if i+1 < len(argv) {
				i++
				args.Persona = argv[i]
			}
		case "--locale", "-l":
			if i+1 < len(argv) {
				i++
				args.Locale = argv[i]
			}
		case "--api-url":
			if i+1 < len(argv) {
				i++
				args.APIURL = argv[i]
			}
		case "--low-bandwidth", "--no-audio":
			args.LowBandwidth = true
		case "-q", "--quiet":
			args.Quiet = true
		case "--debug":
			args.Debug = true
		default:
			switch {
			case strings.HasPrefix(arg, "--persona="):
				args.Persona = strings.TrimPrefix(arg, "--persona=")
			case strings.HasPrefix(arg, "--locale="):
				args.Locale = strings.TrimPrefix(arg, "--locale=")
			case strings.HasPrefix(arg, "--api-url="):
				args.APIURL = strings.TrimPrefix(arg, "--api-url=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, args
}

// parseAskArgs collects the question from the positional arguments.
func parseAskArgs(args *Args, remaining []string) {
	var query []string
	for _, arg := range remaining {
		if !strings.HasPrefix(arg, "-") {
			query = append(query, arg)
		}
	}
	args.Query = strings.Join(query, " ")
}

// parseStatsArgs parses stats command specific arguments.
func parseStatsArgs(args *Args, remaining []string) {
	for i := 0; i < len(remaining); i++ {
		arg := remaining[i]
		switch {
		case arg == "--limit" && i+1 < len(remaining):
			i++
			if n, err := strconv.Atoi(remaining[i]); err == nil && n > 0 {
				args.Limit = n
			}
		case strings.HasPrefix(arg, "--limit="):
			if n, err := strconv.Atoi(strings.TrimPrefix(arg, "--limit=")); err == nil && n > 0 {
				args.Limit = n
			}
		}
	}
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// HandleAsk handles the "ask" command.
func HandleAsk(args Args) {
	if err := HandleAskCommand(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}

// HandleChat handles the "chat" command.
func HandleChat(args Args) {
	if err := HandleChatCommand(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}

// HandleStats handles the "stats" command.
func HandleStats(args Args) {
	if err := HandleStatsCommand(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}

// HandleVersion handles the "version" command.
func HandleVersion() {
	PrintVersion()
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}
