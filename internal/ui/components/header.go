// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the lekat TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lekatlabs/lekat-tui/internal/ui/styles"
	"github.com/lekatlabs/lekat-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar: app name plus the connected server.
type Header struct {
	Title     string
	ServerURL string
	Width     int
	theme     *styles.Theme
}

// NewHeader creates a Header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "lekat",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetServer updates the server shown on the right.
func (h *Header) SetServer(url string) {
	h.ServerURL = url
}

// View renders the header.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	title := h.theme.HeaderTitle.Render(h.Title)
	subtitle := h.theme.HeaderSubtitle.Render("Analisis Percakapan")

	left := title + " " + subtitle
	right := ""
	if h.ServerURL != "" {
		right = h.theme.HeaderSubtitle.Render(util.TruncateRunes(h.ServerURL, 40))
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(styles.Overlay).
		Width(width).
		Padding(0, 2).
		Render(bar)
}
