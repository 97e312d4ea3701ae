// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/lekatlabs/lekat-tui/internal/api"
	"github.com/lekatlabs/lekat-tui/internal/config"
	"github.com/lekatlabs/lekat-tui/internal/model"
	"github.com/lekatlabs/lekat-tui/internal/storage"
	"github.com/lekatlabs/lekat-tui/internal/ui/components"
	"github.com/lekatlabs/lekat-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	// StateLoading: fetching the initial history.
	StateLoading State = iota

	// StateReady: composer open, no request in flight.
	StateReady

	// StateSending: one send in flight; further submits are ignored
	// and the composer is locked until it resolves.
	StateSending

	// StateLocked: the analysis verdict has been delivered and the
	// session is complete; the composer stays locked.
	StateLocked
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversation
	conversation *model.Conversation

	// Backend
	client *api.Client
	cache  *storage.Cache // nil when the local cache is unavailable

	// UI components
	viewport    viewport.Model
	input       textarea.Model
	spinner     components.Spinner
	header      *components.Header
	statusBar   *components.StatusBar
	messageList *components.MessageList
	modal       components.AnalysisModal
	errOverlay  components.ErrorDisplay

	// Key bindings
	keyMap KeyMap

	// In-flight guards. Bubble Tea updates are single-threaded, so
	// plain bools are enough.
	sendInFlight    bool
	analyzeInFlight bool
	reloadInFlight  bool

	// reloadLimiter throttles history refreshes so periodic ticks
	// and manual reloads cannot stampede the server.
	reloadLimiter *rate.Limiter

	// cfg holds UI settings (reload interval, timestamps).
	cfg *config.Config
}

// New creates the chat model for a session.
func New(theme *styles.Theme, client *api.Client, cache *storage.Cache, cfg *config.Config) Model {
	input := textarea.New()
	input.Placeholder = "Ketik pesan..."
	input.Prompt = ""
	input.ShowLineNumbers = false
	input.CharLimit = 4000
	input.SetHeight(1)
	input.Focus()

	// Enter submits; the newline binding moves to shift/alt+enter.
	input.KeyMap.InsertNewline = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter"))

	vp := viewport.New(80, 20)

	conversation := model.NewConversation(client.SessionID())

	m := Model{
		state:         StateLoading,
		theme:         theme,
		conversation:  conversation,
		client:        client,
		cache:         cache,
		viewport:      vp,
		input:         input,
		spinner:       components.NewSpinner(theme),
		header:        components.NewHeader(theme),
		statusBar:     components.NewStatusBar(theme),
		messageList:   components.NewMessageList(theme),
		modal:         components.NewAnalysisModal(theme),
		errOverlay:    components.NewErrorDisplay(),
		keyMap:        DefaultKeyMap(),
		reloadLimiter: rate.NewLimiter(rate.Every(reloadMinInterval), 1),
		cfg:           cfg,
	}

	m.header.SetServer(cfg.Server.URL)
	m.statusBar.SetSession(client.SessionID())
	m.messageList.ShowTimestamps = cfg.UI.ShowTimestamps
	m.spinner.Start("Memuat...")
	m.syncStatus()
	return m
}

// Init starts the initial history load and the reload ticker.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.loadHistoryCmd(true),
		m.spinner.TickCmd(),
	}
	if interval := m.cfg.UI.ReloadInterval(); interval > 0 {
		cmds = append(cmds, reloadTickCmd(interval))
	}
	return tea.Batch(cmds...)
}

// Conversation exposes the transcript for tests and the plain CLI.
func (m *Model) Conversation() *model.Conversation {
	return m.conversation
}

// State exposes the view state.
func (m *Model) State() State {
	return m.state
}

// syncStatus pushes derived state into the status bar.
func (m *Model) syncStatus() {
	m.statusBar.SetCounts(m.conversation.MessageCount(), m.conversation.UserMessageCount())
	m.statusBar.SetGate(m.conversation.AnalysisEligible(), m.conversation.MessagesRemaining())

	switch {
	case m.state == StateLoading:
		m.statusBar.SetStatus(components.StatusLoading)
	case m.state == StateLocked:
		m.statusBar.SetStatus(components.StatusLocked)
	case m.sendInFlight:
		m.statusBar.SetStatus(components.StatusSending)
	case m.analyzeInFlight:
		m.statusBar.SetStatus(components.StatusAnalyzing)
	default:
		m.statusBar.SetStatus(components.StatusReady)
	}
	m.statusBar.SetSpinnerView(m.spinner.View())
}

// composerLocked reports whether input should be rejected.
func (m *Model) composerLocked() bool {
	return m.state == StateLoading || m.state == StateSending || m.state == StateLocked
}

// updateViewport re-renders the transcript into the viewport.
func (m *Model) updateViewport(goToBottom bool) {
	m.messageList.SetMessages(m.conversation.Messages)
	m.viewport.SetContent(m.messageList.View())
	if goToBottom {
		m.viewport.GotoBottom()
	}
}
