// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/lekatlabs/lekat-tui/internal/model"
	"github.com/lekatlabs/lekat-tui/internal/ui/components"
	"github.com/lekatlabs/lekat-tui/internal/util"
)

// Update handles all incoming messages for the chat view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case spinner.TickMsg:
		cmd := m.spinner.Update(msg)
		m.statusBar.SetSpinnerView(m.spinner.View())
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case HistoryLoadedMsg:
		return m.handleHistoryLoaded(msg)

	case HistoryErrorMsg:
		return m.handleHistoryError(msg)

	case SendCompletedMsg:
		return m.handleSendCompleted(msg)

	case SendFailedMsg:
		return m.handleSendFailed(msg)

	case AnalysisCompletedMsg:
		return m.handleAnalysisCompleted(msg)

	case AnalysisFailedMsg:
		return m.handleAnalysisFailed(msg)

	case ReloadTickMsg:
		return m.handleReloadTick()

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.header.SetServer(msg.Config.Server.URL)
		m.messageList.ShowTimestamps = msg.Config.UI.ShowTimestamps
		m.updateViewport(false)
		return m, nil
	}

	// Everything else goes to the composer.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit always works.
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	// A visible error overlay is blocking: only dismissal gets through.
	if m.errOverlay.IsVisible() {
		if key.Matches(msg, m.keyMap.Dismiss) || key.Matches(msg, m.keyMap.Submit) {
			m.errOverlay.Dismiss()
		}
		return m, nil
	}

	// The modal owns keys while open.
	if m.modal.IsOpen() {
		return m.handleModalKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Analyze):
		return m.triggerAnalysis()

	case key.Matches(msg, m.keyMap.Reload):
		return m.triggerReload()

	case key.Matches(msg, m.keyMap.Submit):
		return m.submitInput()

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()
		return m, nil
	}

	// Remaining keys edit the composer unless it is locked.
	if m.composerLocked() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.growComposer()
	return m, cmd
}

// handleModalKey routes keys while the analysis modal is open.
func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Dismiss):
		// Loading cannot be dismissed; the request has no cancel
		// affordance server-side.
		if m.modal.State() != components.ModalLoading {
			m.modal.Close()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Retry):
		if m.modal.State() == components.ModalFailed {
			return m.retryAnalysis()
		}
	}

	cmd := m.modal.Update(msg)
	return m, cmd
}

// =============================================================================
// TRIGGERS
// =============================================================================

// triggerAnalysis opens the modal and fires the analyze request.
// Ignored while the gate is closed or a request is already running.
// Reopening with a held report re-renders without a new request.
func (m Model) triggerAnalysis() (tea.Model, tea.Cmd) {
	if m.analyzeInFlight {
		return m, nil
	}
	if m.modal.Report() != nil {
		m.modal.OpenRendered()
		return m, nil
	}
	if !m.conversation.AnalysisEligible() {
		m.statusBar.SetNotice("Analisis butuh minimal " +
			util.IntToString(model.AnalysisMinMessages) + " pesan")
		return m, nil
	}

	m.analyzeInFlight = true
	m.modal.OpenLoading()
	m.spinner.Start("Menganalisis...")
	m.syncStatus()
	return m, tea.Batch(m.analyzeCmd(), m.spinner.TickCmd())
}

// retryAnalysis re-fires the analyze request from the failed modal.
func (m Model) retryAnalysis() (tea.Model, tea.Cmd) {
	if m.analyzeInFlight {
		return m, nil
	}
	m.analyzeInFlight = true
	m.modal.OpenLoading()
	m.spinner.Start("Menganalisis...")
	m.syncStatus()
	return m, tea.Batch(m.analyzeCmd(), m.spinner.TickCmd())
}

// triggerReload starts a manual history refresh, throttled by the
// shared limiter.
func (m Model) triggerReload() (tea.Model, tea.Cmd) {
	if m.reloadInFlight || !m.reloadLimiter.Allow() {
		return m, nil
	}
	m.reloadInFlight = true
	m.statusBar.SetNotice("")
	return m, m.loadHistoryCmd(false)
}

// =============================================================================
// RESULT HANDLERS
// =============================================================================

func (m Model) handleHistoryLoaded(msg HistoryLoadedMsg) (tea.Model, tea.Cmd) {
	m.reloadInFlight = false
	m.conversation.ReplaceAll(msg.Messages)

	if msg.Initial && m.state == StateLoading {
		m.state = StateReady
		m.spinner.Stop()
	}
	if msg.FromCache {
		m.statusBar.SetNotice("Offline: menampilkan riwayat tersimpan")
	} else {
		m.statusBar.SetNotice("")
	}

	m.updateViewport(true)
	m.syncStatus()
	return m, nil
}

func (m Model) handleHistoryError(msg HistoryErrorMsg) (tea.Model, tea.Cmd) {
	m.reloadInFlight = false

	// History failures never block: log, show a notice with the
	// retry key, and keep whatever transcript we have.
	log.Debug().Err(msg.Err).Msg("history error surfaced as notice")
	m.statusBar.SetNotice("Gagal memuat riwayat · ctrl+r untuk coba lagi")

	if msg.Initial && m.state == StateLoading {
		m.state = StateReady
		m.spinner.Stop()
		m.updateViewport(false)
	}
	m.syncStatus()
	return m, nil
}

func (m Model) handleSendCompleted(msg SendCompletedMsg) (tea.Model, tea.Cmd) {
	m.sendInFlight = false
	if m.state == StateSending {
		m.state = StateReady
	}
	m.spinner.Stop()

	// The server returns the canonical user text; append both sides
	// of the round-trip. The next reload replaces these optimistic
	// entries with server rows.
	m.conversation.AppendUserMessage(msg.User)
	m.conversation.AppendBotMessage(msg.Bot)

	// Clear the composer only now that the send succeeded.
	m.input.Reset()
	m.input.SetHeight(1)
	m.input.Focus()

	m.updateViewport(true)
	m.syncStatus()
	return m, nil
}

func (m Model) handleSendFailed(msg SendFailedMsg) (tea.Model, tea.Cmd) {
	m.sendInFlight = false
	if m.state == StateSending {
		m.state = StateReady
	}
	m.spinner.Stop()

	// The draft was never cleared, so the composer still holds it.
	m.errOverlay = components.FromAPIError("mengirim pesan", msg.Err)
	m.errOverlay.SetSize(m.width, m.height)
	m.input.Focus()

	m.syncStatus()
	return m, nil
}

func (m Model) handleAnalysisCompleted(msg AnalysisCompletedMsg) (tea.Model, tea.Cmd) {
	m.analyzeInFlight = false
	m.spinner.Stop()
	m.modal.ShowReport(msg.Report)

	// The verdict is also delivered as a final bot turn server-side,
	// so refresh the transcript and close the session for input.
	m.state = StateLocked
	m.input.Blur()
	m.syncStatus()

	if m.reloadLimiter.Allow() {
		m.reloadInFlight = true
		return m, m.loadHistoryCmd(false)
	}
	return m, nil
}

func (m Model) handleAnalysisFailed(msg AnalysisFailedMsg) (tea.Model, tea.Cmd) {
	m.analyzeInFlight = false
	m.spinner.Stop()

	if msg.CachedReport != nil {
		// Offline fallback: show the stored report (marked cached)
		// and note the failure instead of a dead-end error.
		m.modal.ShowReport(msg.CachedReport)
		m.statusBar.SetNotice("Analisis gagal · menampilkan hasil tersimpan")
	} else {
		m.modal.ShowError(msg.Err.Error())
	}

	m.syncStatus()
	return m, nil
}

func (m Model) handleReloadTick() (tea.Model, tea.Cmd) {
	interval := m.cfg.UI.ReloadInterval()
	if interval <= 0 {
		return m, nil
	}

	next := reloadTickCmd(interval)
	if m.reloadInFlight || m.state == StateLoading || !m.reloadLimiter.Allow() {
		return m, next
	}
	m.reloadInFlight = true
	return m, tea.Batch(m.loadHistoryCmd(false), next)
}

// =============================================================================
// RESIZE
// =============================================================================

// Layout height constants. Conservative so small terminals still get
// a usable transcript.
const (
	headerHeight    = 2
	statusBarHeight = 1
	inputMaxHeight  = 5
)

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	m.header.SetWidth(msg.Width)
	m.statusBar.SetWidth(msg.Width)
	m.messageList.SetWidth(msg.Width - 2)
	m.modal.SetSize(msg.Width, msg.Height)
	m.errOverlay.SetSize(msg.Width, msg.Height)

	m.input.SetWidth(msg.Width - 6)

	viewportHeight := msg.Height - headerHeight - statusBarHeight - m.inputHeight() - 2
	if viewportHeight < 3 {
		viewportHeight = 3
	}
	m.viewport.Width = msg.Width
	m.viewport.Height = viewportHeight

	m.updateViewport(false)
}

// inputHeight is the composer's current height including its frame.
func (m *Model) inputHeight() int {
	h := m.input.Height()
	if h < 1 {
		h = 1
	}
	if h > inputMaxHeight {
		h = inputMaxHeight
	}
	return h + 2
}
