// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Exit code mapping for CLI commands.
//
// Exit codes are stable so scripts can branch on them:
//   0  success
//   1  generic error
//   2  usage error
//   3  backend unreachable
//   4  request timed out
package cli

import (
	"errors"

	"github.com/jeranaias/janaccess-tui/internal/api"
)

// Exit codes returned by CLI commands.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitUsage       = 2
	ExitBackendDown = 3
	ExitTimeout     = 4
)

// UsageError signals invalid command-line input.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError creates a usage error.
func NewUsageError(message string) *UsageError {
	return &UsageError{Message: message}
}

// GetExitCode maps an error to its exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}

	switch {
	case api.IsBackendDown(err):
		return ExitBackendDown
	case api.IsTimeout(err):
		return ExitTimeout
	}
	return ExitError
}
