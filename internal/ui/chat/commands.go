// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the async commands that talk to the chat service.
// Each command captures what it needs before the closure runs so the
// Bubble Tea goroutine never touches model state.
package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/lekatlabs/lekat-tui/internal/model"
)

// reloadMinInterval is the floor between two history refreshes,
// shared by manual reloads and the periodic ticker.
const reloadMinInterval = 2 * time.Second

// loadHistoryCmd fetches the transcript. On the initial load a
// transport failure falls back to the local cache so the pane is not
// empty while offline.
func (m *Model) loadHistoryCmd(initial bool) tea.Cmd {
	client := m.client
	cache := m.cache
	sessionID := m.client.SessionID()

	return func() tea.Msg {
		msgs, err := client.ReadHistory(context.Background())
		if err != nil {
			log.Warn().Err(err).Bool("initial", initial).Msg("history load failed")
			if initial && cache != nil {
				if cached, cacheErr := cache.LoadTranscript(sessionID); cacheErr == nil {
					return HistoryLoadedMsg{Messages: cached, FromCache: true, Initial: true}
				}
			}
			return HistoryErrorMsg{Err: err, Initial: initial}
		}

		if cache != nil {
			if err := cache.SaveTranscript(sessionID, msgs); err != nil {
				log.Debug().Err(err).Msg("transcript cache write failed")
			}
		}
		return HistoryLoadedMsg{Messages: msgs, Initial: initial}
	}
}

// sendCmd posts one user message. The draft travels with the failure
// message so the composer can keep it.
func (m *Model) sendCmd(text string) tea.Cmd {
	client := m.client

	return func() tea.Msg {
		result, err := client.Send(context.Background(), model.SenderUser, text)
		if err != nil {
			log.Warn().Err(err).Msg("send failed")
			return SendFailedMsg{Err: err, Draft: text}
		}
		return SendCompletedMsg{User: result.User, Bot: result.Bot}
	}
}

// analyzeCmd runs the analysis. Failures carry the last stored report
// when one exists so the modal can fall back to it.
func (m *Model) analyzeCmd() tea.Cmd {
	client := m.client
	cache := m.cache
	sessionID := m.client.SessionID()

	return func() tea.Msg {
		report, err := client.Analyze(context.Background())
		if err != nil {
			log.Warn().Err(err).Msg("analyze failed")
			var fallback *model.AnalysisReport
			if cache != nil {
				if stored, cacheErr := cache.LoadReport(sessionID); cacheErr == nil {
					fallback = stored
				}
			}
			return AnalysisFailedMsg{Err: err, CachedReport: fallback}
		}

		if cache != nil {
			if err := cache.SaveReport(sessionID, report); err != nil {
				log.Debug().Err(err).Msg("report cache write failed")
			}
		}
		return AnalysisCompletedMsg{Report: report}
	}
}

// reloadTickCmd schedules the next periodic history refresh.
func reloadTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ReloadTickMsg{At: t}
	})
}
