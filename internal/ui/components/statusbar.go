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
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusSending
	StatusAnalyzing
	StatusLoading
	StatusError
	StatusLocked
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Siap"
	case StatusSending:
		return "Mengirim..."
	case StatusAnalyzing:
		return "Menganalisis..."
	case StatusLoading:
		return "Memuat..."
	case StatusError:
		return "Error"
	case StatusLocked:
		return "Sesi selesai"
	default:
		return "Unknown"
	}
}

// StatusBar is the bottom status bar: session, message counts, the
// analysis gate state, and a transient notice slot.
type StatusBar struct {
	width int
	theme *styles.Theme

	// State
	status       Status
	sessionID    string
	messageCount int
	userCount    int
	gateOpen     bool
	remaining    int
	notice       string
	spinnerView  string
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		width: 80,
		theme: theme,
	}
}

// SetWidth sets the bar width.
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// SetStatus sets the current application status.
func (sb *StatusBar) SetStatus(status Status) {
	sb.status = status
}

// SetSession sets the session identifier shown on the left.
func (sb *StatusBar) SetSession(id string) {
	sb.sessionID = id
}

// SetCounts updates the message counters.
func (sb *StatusBar) SetCounts(total, user int) {
	sb.messageCount = total
	sb.userCount = user
}

// SetGate updates the analysis gate display.
func (sb *StatusBar) SetGate(open bool, remaining int) {
	sb.gateOpen = open
	sb.remaining = remaining
}

// SetNotice sets a transient notice (e.g. a non-blocking reload
// failure). Empty clears it.
func (sb *StatusBar) SetNotice(notice string) {
	sb.notice = notice
}

// SetSpinnerView sets the rendered spinner frame shown while busy.
func (sb *StatusBar) SetSpinnerView(view string) {
	sb.spinnerView = view
}

// View renders the status bar.
func (sb *StatusBar) View() string {
	var left []string

	if sb.sessionID != "" {
		left = append(left, "sesi "+util.TruncateRunes(sb.sessionID, 12))
	}
	left = append(left, util.IntToString(sb.messageCount)+" pesan")

	// Gate state
	if sb.gateOpen {
		left = append(left, sb.theme.GateReady.Render("analisis siap"))
	} else {
		left = append(left, sb.theme.GateWaiting.Render(
			util.IntToString(sb.remaining)+" pesan lagi untuk analisis"))
	}

	// Busy statuses show the spinner frame next to the label.
	statusText := sb.status.String()
	switch sb.status {
	case StatusSending, StatusAnalyzing, StatusLoading:
		if sb.spinnerView != "" {
			statusText = sb.spinnerView + " " + statusText
		}
		left = append(left, sb.theme.ThinkingText.Render(statusText))
	case StatusError:
		left = append(left, sb.theme.ErrorTitle.Render(statusText))
	case StatusLocked:
		left = append(left, sb.theme.GateWaiting.Render(statusText))
	}

	if sb.notice != "" {
		left = append(left, sb.theme.StatusNotice.Render(util.SanitizeLine(sb.notice)))
	}

	leftText := strings.Join(left, "  ·  ")
	rightText := sb.renderShortcuts()

	gap := sb.width - lipgloss.Width(leftText) - lipgloss.Width(rightText) - 2
	if gap < 1 {
		gap = 1
	}

	return sb.theme.StatusBar.Width(sb.width).Render(
		leftText + strings.Repeat(" ", gap) + rightText)
}

// renderShortcuts builds the key hint cluster on the right.
func (sb *StatusBar) renderShortcuts() string {
	hints := []struct{ key, desc string }{
		{"enter", "kirim"},
		{"ctrl+a", "analisis"},
		{"ctrl+r", "muat ulang"},
		{"ctrl+c", "keluar"},
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			sb.theme.ShortcutKey.Render(h.key)+" "+sb.theme.ShortcutDesc.Render(h.desc))
	}
	return strings.Join(parts, "  ")
}
