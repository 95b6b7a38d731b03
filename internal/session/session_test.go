// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContext_ToggleLowBandwidth(t *testing.T) {
	ctx := NewContext("", false)
	require.False(t, ctx.LowBandwidth())
	require.True(t, ctx.ToggleLowBandwidth())
	require.True(t, ctx.LowBandwidth())
	require.False(t, ctx.ToggleLowBandwidth())
}

func TestContext_SetPersonaChangesQuickActions(t *testing.T) {
	ctx := NewContext("", false)
	require.Equal(t, QuickActionsFor(""), ctx.QuickActions())

	ctx.SetPersona(PersonaFarmer)
	require.Equal(t, PersonaFarmer, ctx.Persona())
	require.Contains(t, ctx.QuickActions(), "Tell me about PM-KISAN income support scheme.")

	// Clearing the persona restores the generic suggestions.
	ctx.SetPersona("")
	require.Equal(t, "How to apply for PMAY?", ctx.QuickActions()[0])
}

func TestQuickActionsFor_FallsBackForUnknownPersona(t *testing.T) {
	got := QuickActionsFor("Astronaut")
	require.Equal(t, []string{
		"How to apply for PMAY?",
		"Scholarships for SC students",
		"Free health insurance schemes",
		"Skill training programs near me",
	}, got)
}

func TestQuickActionsFor_NeverEmpty(t *testing.T) {
	for _, p := range append(Personas(), "", "Unknown") {
		require.NotEmpty(t, QuickActionsFor(p), "persona %q", p)
	}
}

func TestLabeledQuickActionsFor(t *testing.T) {
	actions := LabeledQuickActionsFor(PersonaStudent)
	require.Len(t, actions, 4)
	require.Equal(t, "🎓 Scholarships", actions[0].Label)
	require.Equal(t, "What scholarships are available for students?", actions[0].Query)

	// Default suggestions use the query text as the label.
	defaults := LabeledQuickActionsFor("")
	require.Equal(t, defaults[0].Label, defaults[0].Query)
}

func TestPersonas_Order(t *testing.T) {
	require.Equal(t, []string{
		"Farmer", "Student", "Job Seeker",
		"Small Business Owner", "Senior Citizen", "Differently Abled",
	}, Personas())
}
