// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the lekat TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lekatlabs/lekat-tui/internal/api"
	"github.com/lekatlabs/lekat-tui/internal/ui/styles"
	"github.com/lekatlabs/lekat-tui/internal/util"
)

// =============================================================================
// ERROR DISPLAY COMPONENT
// =============================================================================

// ErrorDisplay is a blocking error overlay. Send and analyze failures
// surface here; the chat controls behind it are restored so the user
// can retry once the overlay is dismissed.
type ErrorDisplay struct {
	title       string
	message     string
	suggestions []string

	visible bool

	width  int
	height int
}

// NewErrorDisplay creates a hidden error display.
func NewErrorDisplay() ErrorDisplay {
	return ErrorDisplay{}
}

// NewError creates a visible error display with title and message.
func NewError(title, message string) ErrorDisplay {
	return ErrorDisplay{
		title:   title,
		message: message,
		visible: true,
	}
}

// NewErrorWithSuggestions creates an error with recovery hints.
func NewErrorWithSuggestions(title, message string, suggestions []string) ErrorDisplay {
	e := NewError(title, message)
	e.suggestions = suggestions
	return e
}

// FromAPIError builds an error display phrased for the failure kind.
func FromAPIError(op string, err error) ErrorDisplay {
	switch {
	case api.IsTransport(err):
		return NewErrorWithSuggestions(
			"Tidak dapat terhubung",
			util.SanitizeLine(err.Error()),
			[]string{
				"Periksa koneksi jaringan Anda",
				"Pastikan server berjalan, lalu coba lagi",
			})
	case api.IsParse(err):
		return NewErrorWithSuggestions(
			"Respons tidak valid",
			util.SanitizeLine(err.Error()),
			[]string{"Server mengirim data tak terduga. Coba lagi."})
	default:
		return NewError("Gagal "+op, util.SanitizeLine(err.Error()))
	}
}

// IsVisible reports whether the overlay should render.
func (e *ErrorDisplay) IsVisible() bool {
	return e.visible
}

// Dismiss hides the overlay.
func (e *ErrorDisplay) Dismiss() {
	e.visible = false
}

// SetSize updates the available dimensions.
func (e *ErrorDisplay) SetSize(width, height int) {
	e.width = width
	e.height = height
}

// View renders the overlay centered in the available area.
func (e *ErrorDisplay) View(theme *styles.Theme) string {
	if !e.visible {
		return ""
	}

	boxWidth := e.width - 8
	if boxWidth > 70 {
		boxWidth = 70
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	var lines []string
	lines = append(lines, theme.ErrorTitle.Render(e.title))
	lines = append(lines, "")
	lines = append(lines, theme.ErrorMessage.Width(boxWidth-6).Render(e.message))

	if len(e.suggestions) > 0 {
		lines = append(lines, "")
		for _, s := range e.suggestions {
			lines = append(lines, theme.ErrorTip.Render("• "+s))
		}
	}

	lines = append(lines, "")
	lines = append(lines, theme.ErrorTip.Render("esc untuk menutup"))

	box := theme.ErrorBox.Width(boxWidth).Render(strings.Join(lines, "\n"))

	return lipgloss.Place(e.width, e.height,
		lipgloss.Center, lipgloss.Center, box)
}
