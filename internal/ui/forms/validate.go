// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package forms provides the eligibility, document, and skills input forms.
package forms

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
)

// =============================================================================
// VALIDATION
// =============================================================================

// MaxDocumentSize is the upload ceiling enforced before any bytes leave the
// machine.
const MaxDocumentSize = 5 * 1024 * 1024

// Validation errors surface directly in the form UI.
var (
	ErrAgeRequired     = errors.New("Please enter your age.")
	ErrAgeOutOfRange   = errors.New("Age must be between 1 and 120.")
	ErrIncomeRequired  = errors.New("Please enter your annual income.")
	ErrIncomeNegative  = errors.New("Income cannot be negative.")
	ErrDocumentType    = errors.New("Please upload a .txt or .pdf file.")
	ErrDocumentTooBig  = errors.New("File size must be less than 5MB.")
	ErrFieldRequired   = errors.New("This field is required.")
)

// Categories accepted by the eligibility check, in display order.
func Categories() []string {
	return []string{"General", "SC", "ST", "OBC"}
}

// EducationLevels returns the education levels the skills form offers, in
// display order.
func EducationLevels() []string {
	return []string{"Below 10th", "10th Pass", "12th Pass", "Diploma", "Graduate", "Post Graduate"}
}

// ParseAge validates and parses an age field.
func ParseAge(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrAgeRequired
	}
	age, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrAgeOutOfRange
	}
	if age < 1 || age > 120 {
		return 0, ErrAgeOutOfRange
	}
	return age, nil
}

// ParseIncome validates and parses an annual income field.
func ParseIncome(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrIncomeRequired
	}
	income, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrIncomeRequired
	}
	if income < 0 {
		return 0, ErrIncomeNegative
	}
	return income, nil
}

// ValidateDocument checks an upload's extension and size before it is sent.
func ValidateDocument(filename string, size int64) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".pdf":
	default:
		return ErrDocumentType
	}
	if size > MaxDocumentSize {
		return ErrDocumentTooBig
	}
	return nil
}

// RequireField validates a free-text field is not blank.
func RequireField(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrFieldRequired
	}
	return nil
}
