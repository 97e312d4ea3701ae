// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines all Bubble Tea message types used by the chat
// interface. Messages are organized into the following categories:
//   - History: initial load, reload, and cache fallback
//   - Send: completion and failure of the send round-trip
//   - Analysis: completion and failure of the analyze request
//   - Timing: periodic reload ticks
//   - Config: hot-reload notifications
//
// All message types follow Bubble Tea conventions and are immutable.
package chat

import (
	"time"

	"github.com/lekatlabs/lekat-tui/internal/config"
	"github.com/lekatlabs/lekat-tui/internal/model"
)

// =============================================================================
// HISTORY MESSAGES
// =============================================================================

// HistoryLoadedMsg carries a freshly fetched transcript.
type HistoryLoadedMsg struct {
	Messages []*model.Message

	// FromCache marks transcripts read from the local cache while
	// the service was unreachable.
	FromCache bool

	// Initial marks the startup load, which transitions the view
	// out of its loading state.
	Initial bool
}

// HistoryErrorMsg reports a failed history load. Reload failures are
// non-blocking: logged and surfaced as a status notice only.
type HistoryErrorMsg struct {
	Err     error
	Initial bool
}

// =============================================================================
// SEND MESSAGES
// =============================================================================

// SendCompletedMsg carries a successful send round-trip: the
// canonical user text and the bot reply.
type SendCompletedMsg struct {
	User string
	Bot  string
}

// SendFailedMsg reports a failed send. Draft is the text that was
// being sent, preserved so the composer can keep it.
type SendFailedMsg struct {
	Err   error
	Draft string
}

// =============================================================================
// ANALYSIS MESSAGES
// =============================================================================

// AnalysisCompletedMsg carries a successful analysis report.
type AnalysisCompletedMsg struct {
	Report *model.AnalysisReport
}

// AnalysisFailedMsg reports a failed analysis.
type AnalysisFailedMsg struct {
	Err error

	// CachedReport is the last stored report when one exists, so the
	// modal can fall back to it read-only.
	CachedReport *model.AnalysisReport
}

// =============================================================================
// TIMING MESSAGES
// =============================================================================

// ReloadTickMsg triggers a periodic history refresh.
type ReloadTickMsg struct {
	At time.Time
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg announces a hot-reloaded configuration.
type ConfigReloadedMsg struct {
	Config *config.Config
}
