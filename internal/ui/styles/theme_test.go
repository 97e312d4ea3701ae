// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	theme := NewTheme()

	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	// Verify styles are initialized by rendering a test string.
	if theme.App.Render("test") == "" {
		t.Error("NewTheme() should initialize App style")
	}
}

func TestThemeInitStyles(t *testing.T) {
	theme := NewTheme()

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Header", theme.Header},
		{"UserBubble", theme.UserBubble},
		{"BotBubble", theme.BotBubble},
		{"InputContainer", theme.InputContainer},
		{"InputLocked", theme.InputLocked},
		{"StatusBar", theme.StatusBar},
		{"ErrorBox", theme.ErrorBox},
		{"ModalFrame", theme.ModalFrame},
		{"SectionTitle", theme.SectionTitle},
		{"Verdict", theme.Verdict},
		{"CachedBanner", theme.CachedBanner},
		{"BadgeHigh", theme.BadgeHigh},
	}

	for _, s := range styles {
		// An uninitialized style would return the input unchanged;
		// rendering must at least not be empty.
		if s.style.Render("test") == "" {
			t.Errorf("%s style should be initialized", s.name)
		}
	}
}

// =============================================================================
// THEME SIZE TESTS
// =============================================================================

func TestThemeSetSize(t *testing.T) {
	theme := NewTheme()

	tests := []struct {
		width  int
		height int
	}{
		{80, 24},
		{120, 40},
		{40, 10},
	}

	for _, tc := range tests {
		theme.SetSize(tc.width, tc.height)
		if theme.Width != tc.width || theme.Height != tc.height {
			t.Errorf("SetSize(%d, %d) stored (%d, %d)",
				tc.width, tc.height, theme.Width, theme.Height)
		}
	}
}
