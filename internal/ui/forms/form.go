// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package forms

import (
	"context"

	"github.com/jeranaias/janaccess-tui/internal/config"
)

// Phase is the submission lifecycle shared by all forms. A form in
// PhaseSubmitting ignores further submit attempts until its result arrives.
type Phase int

const (
	// PhaseIdle means the form is editable.
	PhaseIdle Phase = iota
	// PhaseSubmitting means a request is in flight.
	PhaseSubmitting
	// PhaseResult means the last submission succeeded and its result shows.
	PhaseResult
	// PhaseError means the last submission failed.
	PhaseError
)

// requestContext returns the context for one form submission, bounded by the
// configured request timeout.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.Global().API.Timeout())
}

// Backend failure strings, shown verbatim in the form error panel.
const (
	eligibilityFailure = "Failed to check eligibility. Please make sure the backend is running."
	documentFailure    = "Error analyzing document. Please make sure the backend is running."
	skillsFailure      = "Failed to get recommendations. Please make sure the backend is running."
)
