// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the lekat TUI.
package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lekatlabs/lekat-tui/internal/ui/styles"
)

// =============================================================================
// SPINNER COMPONENT
// =============================================================================

// Spinner wraps the bubbles spinner with lekat styling. ASCII frames
// keep it legible on terminals without good Unicode fonts.
type Spinner struct {
	spinner  spinner.Model
	message  string
	isActive bool
}

// NewSpinner creates a spinner with ASCII-compatible frames.
func NewSpinner(theme *styles.Theme) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: styles.LineSpinner.Frames,
		FPS:    styles.LineSpinner.Duration(),
	}
	s.Style = theme.Spinner
	return Spinner{spinner: s}
}

// Start activates the spinner with a message and returns its tick.
func (s *Spinner) Start(message string) tea.Cmd {
	s.message = message
	s.isActive = true
	return s.spinner.Tick
}

// TickCmd returns the spinner's tick command. Needed when the
// owning model starts the animation from a value-receiver Init.
func (s *Spinner) TickCmd() tea.Cmd {
	return s.spinner.Tick
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.isActive = false
	s.message = ""
}

// IsActive reports whether the spinner is running.
func (s *Spinner) IsActive() bool {
	return s.isActive
}

// Update advances the spinner animation.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	if !s.isActive {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// View renders the current spinner frame.
func (s *Spinner) View() string {
	if !s.isActive {
		return ""
	}
	return s.spinner.View()
}

// Message returns the active message, if any.
func (s *Spinner) Message() string {
	return s.message
}
