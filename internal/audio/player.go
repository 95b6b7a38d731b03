// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package audio

import (
	"context"
	"errors"
	"os/exec"
)

// ErrNoPlaybackTool means no supported playback binary was found.
var ErrNoPlaybackTool = errors.New("no audio playback tool found (install ffplay, mpv, paplay, or afplay)")

// playbackTool describes one supported playback binary.
type playbackTool struct {
	name string
	args func(src string) []string
}

// Playback tools in preference order. ffplay and mpv stream URLs directly;
// paplay and afplay need a local file, so URL sources skip them.
var playbackTools = []playbackTool{
	{"ffplay", func(src string) []string {
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", src}
	}},
	{"mpv", func(src string) []string {
		return []string{"--no-video", "--really-quiet", src}
	}},
	{"paplay", func(src string) []string {
		return []string{src}
	}},
	{"afplay", func(src string) []string {
		return []string{src}
	}},
}

// Player plays spoken answers through a system audio tool.
type Player struct {
	tool playbackTool
}

// NewPlayer finds a playback tool and returns a player using it. An explicit
// command name (from configuration) restricts the search to that tool.
func NewPlayer(command string) (*Player, error) {
	for _, t := range playbackTools {
		if command != "" && t.name != command {
			continue
		}
		if _, err := exec.LookPath(t.name); err == nil {
			return &Player{tool: t}, nil
		}
	}
	return nil, ErrNoPlaybackTool
}

// Play plays the given file path or URL and blocks until playback ends or
// the context is canceled.
func (p *Player) Play(ctx context.Context, src string) error {
	cmd := exec.CommandContext(ctx, p.tool.name, p.tool.args(src)...)
	return cmd.Run()
}
