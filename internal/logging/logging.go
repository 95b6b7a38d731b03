// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the application logger.
//
// The TUI owns the terminal, so nothing may be written to stdout or stderr
// while it runs. All diagnostics go to a log file under the user config
// directory; debug-level records are only emitted when enabled.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultDir is the directory under $HOME that holds client state.
const DefaultDir = ".janaccess"

// Setup opens the log file and installs a slog default logger writing to it.
// Returns a close function for the underlying file. If the file cannot be
// opened the logger discards output rather than failing startup.
func Setup(debug bool) func() error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if dir, err := stateDir(); err == nil {
		path := filepath.Join(dir, "client.log")
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
			w = f
			closeFn = f.Close
		}
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return closeFn
}

// stateDir returns ~/.janaccess, creating it if needed.
func stateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, DefaultDir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
