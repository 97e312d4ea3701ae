// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lekatlabs/lekat-tui/internal/api"
	"github.com/lekatlabs/lekat-tui/internal/config"
	"github.com/lekatlabs/lekat-tui/internal/model"
	"github.com/lekatlabs/lekat-tui/internal/ui/components"
	"github.com/lekatlabs/lekat-tui/internal/ui/styles"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	client := api.NewClient("http://localhost:5000", "test-sess")
	m := New(styles.NewTheme(), client, nil, config.Default())

	// Simulate the initial history load completing empty.
	updated, _ := m.Update(HistoryLoadedMsg{Initial: true})
	return updated.(Model)
}

func pressEnter(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func fillGate(m Model) Model {
	for i := 0; i < model.AnalysisMinMessages; i++ {
		m.conversation.AppendUserMessage("pesan")
	}
	return m
}

// =============================================================================
// SUBMIT TESTS
// =============================================================================

func TestSubmit_EmptyIsNoOp(t *testing.T) {
	for _, draft := range []string{"", "   ", "\t"} {
		m := newTestModel(t)
		m.input.SetValue(draft)

		m = pressEnter(t, m)

		if m.sendInFlight {
			t.Errorf("submit of %q should not start a send", draft)
		}
		if m.state != StateReady {
			t.Errorf("state = %v after empty submit, want StateReady", m.state)
		}
		if m.input.Value() != draft {
			t.Errorf("composer changed on empty submit: %q", m.input.Value())
		}
	}
}

func TestSubmit_StartsSendAndKeepsDraft(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("halo lekat")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if !m.sendInFlight {
		t.Error("submit should mark a send in flight")
	}
	if m.state != StateSending {
		t.Errorf("state = %v, want StateSending", m.state)
	}
	if cmd == nil {
		t.Error("submit should produce a command")
	}
	// The draft survives until the send succeeds.
	if m.input.Value() != "halo lekat" {
		t.Errorf("draft = %q, want preserved", m.input.Value())
	}
}

func TestSubmit_SecondSubmitWhileInFlightIgnored(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("pertama")
	m = pressEnter(t, m)

	m.input.SetValue("kedua")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if cmd != nil {
		t.Error("second submit while sending should be ignored")
	}
	if m.state != StateSending {
		t.Errorf("state = %v, want StateSending", m.state)
	}
}

func TestSendCompleted_AppendsAndClearsComposer(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("apa kabar")
	m = pressEnter(t, m)

	updated, _ := m.Update(SendCompletedMsg{User: "apa kabar", Bot: "baik"})
	m = updated.(Model)

	if m.sendInFlight {
		t.Error("send should no longer be in flight")
	}
	if m.state != StateReady {
		t.Errorf("state = %v, want StateReady", m.state)
	}
	if got := m.conversation.MessageCount(); got != 2 {
		t.Fatalf("MessageCount = %d, want 2", got)
	}
	if m.conversation.LastMessage().Sender != model.SenderBot {
		t.Error("bot reply should be the last message")
	}
	if m.input.Value() != "" {
		t.Errorf("composer should be cleared on success, got %q", m.input.Value())
	}
}

func TestSendFailed_KeepsDraftAndShowsError(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("hilang?")
	m = pressEnter(t, m)

	sendErr := &api.TransportError{Op: "send", Err: errors.New("connection refused")}
	updated, _ := m.Update(SendFailedMsg{Err: sendErr, Draft: "hilang?"})
	m = updated.(Model)

	if m.input.Value() != "hilang?" {
		t.Errorf("draft = %q, want preserved on failure", m.input.Value())
	}
	if !m.errOverlay.IsVisible() {
		t.Error("send failure should raise the blocking error overlay")
	}
	if m.conversation.MessageCount() != 0 {
		t.Error("failed send must not append messages")
	}
}

func TestErrorOverlay_BlocksUntilDismissed(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("x")
	m = pressEnter(t, m)
	updated, _ := m.Update(SendFailedMsg{
		Err: &api.TransportError{Op: "send", Err: errors.New("down")}})
	m = updated.(Model)

	// Typing while the overlay is up must not reach the composer.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = updated.(Model)
	if m.input.Value() != "x" {
		t.Errorf("composer = %q, overlay should block typing", m.input.Value())
	}

	// Escape dismisses it.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.errOverlay.IsVisible() {
		t.Error("escape should dismiss the overlay")
	}
}

// =============================================================================
// ANALYSIS GATE TESTS
// =============================================================================

func TestAnalyze_GateClosedBelowMinimum(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < model.AnalysisMinMessages-1; i++ {
		m.conversation.AppendUserMessage("pesan")
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = updated.(Model)

	if m.analyzeInFlight {
		t.Error("analysis must not start below the message minimum")
	}
	if cmd != nil {
		t.Error("gated analyze should produce no command")
	}
	if m.modal.IsOpen() {
		t.Error("modal should stay closed while gated")
	}
}

func TestAnalyze_GateOpensAtMinimum(t *testing.T) {
	m := fillGate(newTestModel(t))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = updated.(Model)

	if !m.analyzeInFlight {
		t.Error("analysis should start once the gate opens")
	}
	if cmd == nil {
		t.Error("analyze should produce a command")
	}
	if m.modal.State() != components.ModalLoading {
		t.Errorf("modal state = %v, want ModalLoading", m.modal.State())
	}
}

func TestAnalyze_SecondTriggerWhileInFlightIgnored(t *testing.T) {
	m := fillGate(newTestModel(t))
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = updated.(Model)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = updated.(Model)
	if cmd != nil {
		t.Error("second analyze while in flight should be ignored")
	}
}

func TestAnalysisCompleted_LocksComposer(t *testing.T) {
	m := fillGate(newTestModel(t))
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = updated.(Model)

	report := &model.AnalysisReport{
		AttachmentStyle: model.AttachmentStyle{Prediction: "aman", Confidence: 90},
	}
	updated, _ = m.Update(AnalysisCompletedMsg{Report: report})
	m = updated.(Model)

	if m.state != StateLocked {
		t.Errorf("state = %v, want StateLocked after the verdict", m.state)
	}
	if m.modal.State() != components.ModalRendered {
		t.Errorf("modal state = %v, want ModalRendered", m.modal.State())
	}

	// Further submits are ignored.
	m.input.SetValue("masih ada?")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if cmd != nil || m.sendInFlight {
		t.Error("locked composer must reject submits")
	}
}

func TestAnalyze_ReopenHeldReportWithoutRequest(t *testing.T) {
	m := fillGate(newTestModel(t))
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = updated.(Model)
	updated, _ = m.Update(AnalysisCompletedMsg{
		Report: &model.AnalysisReport{
			AttachmentStyle: model.AttachmentStyle{Prediction: "aman"}}})
	m = updated.(Model)

	// Close, then reopen: the held report renders with no new request.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.modal.IsOpen() {
		t.Fatal("escape should close the rendered modal")
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = updated.(Model)
	if cmd != nil {
		t.Error("reopening a held report must not fire a request")
	}
	if m.modal.State() != components.ModalRendered {
		t.Errorf("modal state = %v, want ModalRendered", m.modal.State())
	}
}

func TestAnalysisFailed_ShowsFailedModal(t *testing.T) {
	m := fillGate(newTestModel(t))
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = updated.(Model)

	updated, _ = m.Update(AnalysisFailedMsg{Err: errors.New("model pipeline crashed")})
	m = updated.(Model)

	if m.analyzeInFlight {
		t.Error("failure should clear the in-flight flag")
	}
	if m.modal.State() != components.ModalFailed {
		t.Errorf("modal state = %v, want ModalFailed", m.modal.State())
	}
}

func TestAnalysisFailed_FallsBackToCachedReport(t *testing.T) {
	m := fillGate(newTestModel(t))
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = updated.(Model)

	cached := &model.AnalysisReport{
		AttachmentStyle: model.AttachmentStyle{Prediction: "aman"},
		Cached:          true,
	}
	updated, _ = m.Update(AnalysisFailedMsg{Err: errors.New("down"), CachedReport: cached})
	m = updated.(Model)

	if m.modal.State() != components.ModalRendered {
		t.Errorf("modal state = %v, want rendered cached report", m.modal.State())
	}
	if m.modal.Report() != cached {
		t.Error("modal should hold the cached report")
	}
}

// =============================================================================
// HISTORY TESTS
// =============================================================================

func TestHistoryLoaded_ReplacesTranscript(t *testing.T) {
	m := newTestModel(t)
	m.conversation.AppendUserMessage("optimis")

	msgs := []*model.Message{
		{ID: "1", Sender: model.SenderUser, Content: "halo"},
		{ID: "2", Sender: model.SenderBot, Content: "halo juga"},
	}
	updated, _ := m.Update(HistoryLoadedMsg{Messages: msgs})
	m = updated.(Model)

	if m.conversation.MessageCount() != 2 {
		t.Errorf("MessageCount = %d, want 2 (reload is authoritative)",
			m.conversation.MessageCount())
	}
}

func TestHistoryError_IsNonBlocking(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("draft tetap")

	updated, _ := m.Update(HistoryErrorMsg{Err: errors.New("timeout")})
	m = updated.(Model)

	if m.errOverlay.IsVisible() {
		t.Error("history failure must not raise the blocking overlay")
	}
	if m.state != StateReady {
		t.Errorf("state = %v, want StateReady", m.state)
	}
	if m.input.Value() != "draft tetap" {
		t.Error("history failure must not touch the composer")
	}

	// Typing still works.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'!'}})
	m = updated.(Model)
	if m.input.Value() != "draft tetap!" {
		t.Errorf("composer = %q, want typing to keep working", m.input.Value())
	}
}

func TestInitialHistoryError_StillOpensComposer(t *testing.T) {
	client := api.NewClient("http://localhost:5000", "test-sess")
	m := New(styles.NewTheme(), client, nil, config.Default())

	updated, _ := m.Update(HistoryErrorMsg{Err: errors.New("refused"), Initial: true})
	m = updated.(Model)

	if m.state != StateReady {
		t.Errorf("state = %v, want StateReady even when the initial load fails", m.state)
	}
}
