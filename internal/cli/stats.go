// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// stats.go - Usage analytics command for the JanAccess CLI.
//
// Handles "janaccess stats" which prints the backend's usage analytics:
// overall counters, most searched schemes, recent search history, and
// persona usage.
package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/janaccess-tui/internal/api"
	"github.com/jeranaias/janaccess-tui/internal/config"
	"github.com/jeranaias/janaccess-tui/internal/ui/styles"
	"github.com/jeranaias/janaccess-tui/internal/util"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	statsHeaderStyle = lipgloss.NewStyle().
				Foreground(styles.Navy).
				Bold(true)

	statsLabelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	statsValueStyle = lipgloss.NewStyle().
			Foreground(styles.GreenDeep).
			Bold(true)

	statsMutedStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)
)

// =============================================================================
// STATS HANDLER
// =============================================================================

// HandleStatsCommand fetches and prints usage analytics.
func HandleStatsCommand(args Args) error {
	client := newClient(args)

	ctx, cancel := context.WithTimeout(context.Background(), config.Global().API.Timeout())
	defer cancel()

	summary, err := client.GetAnalyticsSummary(ctx)
	if err != nil {
		if api.IsBackendDown(err) {
			fmt.Fprintln(os.Stderr, "Backend is not reachable at "+client.BaseURL())
		}
		return err
	}

	printSummary(summary)

	// The remaining sections are best-effort: a partial dashboard beats
	// no dashboard when one endpoint misbehaves.
	if top, err := client.GetTopSchemes(ctx, args.Limit); err == nil {
		printTopSchemes(top)
	}
	if history, err := client.GetHistory(ctx, args.Limit); err == nil {
		printHistory(history)
	}
	if usage, err := client.GetPersonaUsage(ctx); err == nil {
		printPersonaUsage(usage)
	}

	return nil
}

// =============================================================================
// SECTIONS
// =============================================================================

func printSummary(s *api.AnalyticsSummary) {
	fmt.Println(statsHeaderStyle.Render("Usage summary"))
	printStat("Queries answered", s.TotalQueries)
	printStat("Documents analyzed", s.TotalDocuments)
	printStat("Schemes in catalog", s.TotalSchemes)

	if len(s.CategoryBreakdown) > 0 {
		fmt.Println()
		fmt.Println(statsHeaderStyle.Render("Queries by category"))
		for _, k := range sortedKeys(s.CategoryBreakdown) {
			printStat(k, s.CategoryBreakdown[k])
		}
	}
	fmt.Println()
}

func printTopSchemes(top []api.TopScheme) {
	if len(top) == 0 {
		return
	}
	fmt.Println(statsHeaderStyle.Render("Most searched schemes"))
	for i, s := range top {
		fmt.Printf("  %d. %-40s %s\n", i+1,
			util.TruncateRunes(s.Name, 40),
			statsValueStyle.Render(fmt.Sprintf("%d", s.SearchCount)))
	}
	fmt.Println()
}

func printHistory(history []api.HistoryEntry) {
	if len(history) == 0 {
		return
	}
	fmt.Println(statsHeaderStyle.Render("Recent searches"))
	for _, h := range history {
		line := "  - " + util.TruncateRunes(h.Query, 60)
		var meta []string
		if h.Persona != "" {
			meta = append(meta, h.Persona)
		}
		if h.Timestamp != "" {
			meta = append(meta, h.Timestamp)
		}
		if len(meta) > 0 {
			line += "  " + statsMutedStyle.Render("("+strings.Join(meta, ", ")+")")
		}
		fmt.Println(line)
	}
	fmt.Println()
}

func printPersonaUsage(usage *api.PersonaUsage) {
	if len(usage.PersonaCounts) == 0 {
		return
	}
	fmt.Println(statsHeaderStyle.Render("Persona usage"))
	if usage.MostSelectedPersona != "" {
		fmt.Printf("  %s %s\n",
			statsLabelStyle.Render("Most selected:"),
			statsValueStyle.Render(usage.MostSelectedPersona))
	}
	for _, k := range sortedKeys(usage.PersonaCounts) {
		printStat(k, usage.PersonaCounts[k])
		if topics := usage.TopTopicsPerPersona[k]; len(topics) > 0 {
			fmt.Printf("      %s\n", statsMutedStyle.Render(strings.Join(topics, ", ")))
		}
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func printStat(label string, value int) {
	fmt.Printf("  %s %s\n",
		statsLabelStyle.Render(fmt.Sprintf("%-22s", label+":")),
		statsValueStyle.Render(fmt.Sprintf("%d", value)))
}

// sortedKeys returns map keys in stable order for deterministic output.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
