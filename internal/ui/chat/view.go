// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file renders the chat layout: header, transcript viewport,
// composer, and status bar, with the modal and error overlays on top.
package chat

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the complete chat interface.
func (m Model) View() string {
	if m.width == 0 {
		return "Memuat..."
	}

	// Overlays take the whole screen while visible.
	if m.errOverlay.IsVisible() {
		return m.errOverlay.View(m.theme)
	}
	if m.modal.IsOpen() {
		return m.modal.View()
	}

	header := m.header.View()
	transcript := m.viewport.View()
	composer := m.renderComposer()
	status := m.statusBar.View()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		transcript,
		composer,
		status)
}

// renderComposer renders the input area, or its locked placeholder
// once the session is complete.
func (m Model) renderComposer() string {
	width := m.width - 2
	if width < 20 {
		width = 20
	}

	if m.state == StateLocked {
		return m.theme.InputLocked.Width(width).Render(
			"Sesi selesai. Laporan analisis tersedia dengan ctrl+a.")
	}

	prompt := m.theme.InputPrompt.Render("> ")
	body := lipgloss.JoinHorizontal(lipgloss.Top, prompt, m.input.View())
	return m.theme.InputContainer.Width(width).Render(body)
}
