// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file handles composer input: submission, the empty-submit
// no-op, and the auto-grow behavior.
package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// submitInput sends the composer content.
//
// Rules:
//   - empty or whitespace-only input is a strict no-op: no request,
//     composer untouched
//   - at most one send is in flight; submits while locked are ignored
//   - the draft stays in the composer until the send succeeds, so a
//     failure loses nothing
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	if m.composerLocked() {
		return m, nil
	}

	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	m.sendInFlight = true
	m.state = StateSending
	m.spinner.Start("Mengirim...")
	m.syncStatus()

	return m, tea.Batch(m.sendCmd(text), m.spinner.TickCmd())
}

// growComposer resizes the textarea to its content, capped so the
// transcript keeps most of the screen.
func (m *Model) growComposer() {
	lines := m.input.LineCount()
	if lines < 1 {
		lines = 1
	}
	if lines > inputMaxHeight {
		lines = inputMaxHeight
	}
	if lines != m.input.Height() {
		m.input.SetHeight(lines)
		m.recalcViewport()
	}
}

// recalcViewport resizes the transcript viewport after the composer
// height changes.
func (m *Model) recalcViewport() {
	viewportHeight := m.height - headerHeight - statusBarHeight - m.inputHeight() - 2
	if viewportHeight < 3 {
		viewportHeight = 3
	}
	m.viewport.Height = viewportHeight
}
