// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the lekat TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark
terminal detection.

# Color System (colors.go)

Semantic tokens cover the chat surfaces and the report:

	UserBubbleBg/Fg/Border - user messages (blue)
	BotBubbleBg/Fg/Border  - bot messages (purple)
	ImportanceHigh/Medium/Low - phrase importance badges
	BarFill / BarTrack     - probability and emotion bars

plus the layered surface and text hierarchies shared by every
component.

# Theme System (theme.go)

The Theme struct holds one configured lipgloss.Style per UI element,
built once at startup:

	theme := styles.NewTheme()
	if theme.IsDark {
	    // dark terminal detected
	}

# Animations (animations.go)

SpinnerConfig defines ASCII-only spinner frame sets used by the
components package.
*/
package styles
