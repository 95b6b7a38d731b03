// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAge(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr error
	}{
		{"empty", "", 0, ErrAgeRequired},
		{"blank", "   ", 0, ErrAgeRequired},
		{"not a number", "abc", 0, ErrAgeOutOfRange},
		{"zero", "0", 0, ErrAgeOutOfRange},
		{"lower bound", "1", 1, nil},
		{"typical", "35", 35, nil},
		{"upper bound", "120", 120, nil},
		{"above range", "121", 0, ErrAgeOutOfRange},
		{"way above range", "150", 0, ErrAgeOutOfRange},
		{"negative", "-5", 0, ErrAgeOutOfRange},
		{"trimmed", " 42 ", 42, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAge(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseIncome(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr error
	}{
		{"empty", "", 0, ErrIncomeRequired},
		{"not a number", "lots", 0, ErrIncomeRequired},
		{"negative", "-1", 0, ErrIncomeNegative},
		{"zero is valid", "0", 0, nil},
		{"typical", "50000", 50000, nil},
		{"decimal", "12345.50", 12345.50, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIncome(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		size    int64
		wantErr error
	}{
		{"txt ok", "notice.txt", 1024, nil},
		{"pdf ok", "notice.pdf", 1024, nil},
		{"uppercase ext ok", "NOTICE.PDF", 1024, nil},
		{"exe rejected", "malware.exe", 10, ErrDocumentType},
		{"docx rejected", "letter.docx", 10, ErrDocumentType},
		{"no extension", "README", 10, ErrDocumentType},
		{"at limit ok", "big.pdf", MaxDocumentSize, nil},
		{"over limit", "big.pdf", MaxDocumentSize + 1, ErrDocumentTooBig},
		{"six megabytes", "big.pdf", 6 * 1024 * 1024, ErrDocumentTooBig},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDocument(tc.file, tc.size)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRequireField(t *testing.T) {
	require.ErrorIs(t, RequireField(""), ErrFieldRequired)
	require.ErrorIs(t, RequireField("  \t"), ErrFieldRequired)
	require.NoError(t, RequireField("Bihar"))
}

func TestCategories(t *testing.T) {
	require.Equal(t, []string{"General", "SC", "ST", "OBC"}, Categories())
}
