// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the per-session assistant context: the selected
// persona, the low-bandwidth flag, and the persona-specific quick actions.
// Nothing here is persisted; a new session starts clean.
package session

// Context carries the settings applied to every assistant query in a
// session. It is owned by the UI event loop and is not safe for concurrent
// mutation.
type Context struct {
	lowBandwidth bool
	persona      string
}

// NewContext creates a session context with the given initial settings.
func NewContext(persona string, lowBandwidth bool) *Context {
	return &Context{persona: persona, lowBandwidth: lowBandwidth}
}

// Persona returns the active persona, or "" when none is selected.
func (c *Context) Persona() string {
	return c.persona
}

// SetPersona changes the active persona. An empty string clears it, which
// also resets the quick actions to the generic defaults.
func (c *Context) SetPersona(persona string) {
	c.persona = persona
}

// LowBandwidth reports whether audio is suppressed for this session.
func (c *Context) LowBandwidth() bool {
	return c.lowBandwidth
}

// ToggleLowBandwidth flips the low-bandwidth flag and returns the new value.
// The flag applies to subsequent queries only; turns already in the
// transcript keep whatever audio they have.
func (c *Context) ToggleLowBandwidth() bool {
	c.lowBandwidth = !c.lowBandwidth
	return c.lowBandwidth
}

// QuickActions returns the suggested prompts for the active persona.
func (c *Context) QuickActions() []string {
	return QuickActionsFor(c.persona)
}
