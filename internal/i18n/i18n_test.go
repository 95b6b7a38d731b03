// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNew_ResolvesSupportedLocales(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"en", language.English},
		{"hi", language.Hindi},
		{"ta", language.Tamil},
		{"bn", language.Bengali},
		{"en-US", language.English},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, New(tc.locale).Tag(), "locale %q", tc.locale)
	}
}

func TestNew_FallsBackToEnglish(t *testing.T) {
	for _, locale := range []string{"", "fr", "not a tag!!"} {
		tr := New(locale)
		require.Equal(t, language.English, tr.Tag(), "locale %q", locale)
		require.Equal(t, "AI Assistant", tr.S("tab.chat"))
	}
}

func TestS_Translates(t *testing.T) {
	require.Equal(t, "AI सहायक", New("hi").S("tab.chat"))
	require.Equal(t, "தகுதி", New("ta").S("tab.eligibility"))
	require.Equal(t, "যোগ্যতা", New("bn").S("tab.eligibility"))
}

func TestS_UntranslatedKeyFallsBackToEnglish(t *testing.T) {
	// Tamil has no entry for eligibility.age.
	require.Equal(t, "Age", New("ta").S("eligibility.age"))
}
