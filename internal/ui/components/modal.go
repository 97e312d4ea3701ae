// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lekatlabs/lekat-tui/internal/model"
	"github.com/lekatlabs/lekat-tui/internal/report"
	"github.com/lekatlabs/lekat-tui/internal/ui/styles"
	"github.com/lekatlabs/lekat-tui/internal/util"
)

// =============================================================================
// ANALYSIS MODAL COMPONENT
// =============================================================================

// ModalState tracks the analysis modal lifecycle.
type ModalState int

const (
	// ModalIdle: closed, nothing in flight.
	ModalIdle ModalState = iota

	// ModalLoading: open, waiting on the analyze request.
	ModalLoading

	// ModalRendered: open, showing a report.
	ModalRendered

	// ModalFailed: open, showing the analyze error with a retry hint.
	ModalFailed
)

// AnalysisModal is the full-screen overlay that shows the analysis
// report. It holds the last successful report so reopening renders
// without a new request.
type AnalysisModal struct {
	state  ModalState
	report *model.AnalysisReport
	errMsg string

	viewport viewport.Model
	theme    *styles.Theme
	width    int
	height   int
}

// NewAnalysisModal creates a closed modal.
func NewAnalysisModal(theme *styles.Theme) AnalysisModal {
	vp := viewport.New(80, 20)
	return AnalysisModal{
		state:    ModalIdle,
		viewport: vp,
		theme:    theme,
	}
}

// State returns the current modal state.
func (m *AnalysisModal) State() ModalState {
	return m.state
}

// IsOpen reports whether the modal is visible.
func (m *AnalysisModal) IsOpen() bool {
	return m.state != ModalIdle
}

// Report returns the held report, or nil.
func (m *AnalysisModal) Report() *model.AnalysisReport {
	return m.report
}

// OpenLoading opens the modal in the loading state.
func (m *AnalysisModal) OpenLoading() {
	m.state = ModalLoading
	m.errMsg = ""
}

// OpenRendered opens the modal showing the held report. Returns
// false when no report is held yet.
func (m *AnalysisModal) OpenRendered() bool {
	if m.report == nil {
		return false
	}
	m.state = ModalRendered
	m.refresh()
	return true
}

// ShowReport stores a fresh report and renders it.
func (m *AnalysisModal) ShowReport(r *model.AnalysisReport) {
	m.report = r
	m.state = ModalRendered
	m.refresh()
	m.viewport.GotoTop()
}

// ShowError shows an analyze failure with a retry affordance.
func (m *AnalysisModal) ShowError(message string) {
	m.errMsg = util.SanitizeLine(message)
	m.state = ModalFailed
}

// Close hides the modal. The held report survives for reopening.
func (m *AnalysisModal) Close() {
	m.state = ModalIdle
}

// SetSize updates the modal dimensions.
func (m *AnalysisModal) SetSize(width, height int) {
	m.width = width
	m.height = height

	_, frameHeight := m.theme.ModalFrame.GetFrameSize()
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = height - frameHeight - 4
	if m.viewport.Height < 5 {
		m.viewport.Height = 5
	}

	if m.state == ModalRendered {
		m.refresh()
	}
}

// Update routes scroll keys to the report viewport.
func (m *AnalysisModal) Update(msg tea.Msg) tea.Cmd {
	if m.state != ModalRendered {
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// contentWidth is the usable width inside the modal frame.
func (m *AnalysisModal) contentWidth() int {
	w := m.width - 12
	if w < 40 {
		w = 40
	}
	return w
}

// refresh re-renders the held report into the viewport.
// Rendering is pure, so this is safe to call repeatedly.
func (m *AnalysisModal) refresh() {
	if m.report == nil {
		return
	}
	renderer := report.NewRenderer(m.theme, m.contentWidth())
	m.viewport.SetContent(renderer.Render(m.report))
}

// View renders the modal overlay.
func (m *AnalysisModal) View() string {
	switch m.state {
	case ModalIdle:
		return ""
	case ModalLoading:
		return m.renderFrame(
			m.theme.ThinkingText.Render("Menganalisis..."),
			"analisis berjalan, mohon tunggu")
	case ModalFailed:
		body := strings.Join([]string{
			m.theme.ErrorTitle.Render("Analisis gagal"),
			"",
			m.theme.ErrorMessage.Width(m.contentWidth()).Render(m.errMsg),
		}, "\n")
		return m.renderFrame(body, "r coba lagi · esc tutup")
	default:
		scroll := util.IntToString(int(m.viewport.ScrollPercent()*100)) + "%"
		return m.renderFrame(m.viewport.View(), "↑/↓ gulir ("+scroll+") · esc tutup")
	}
}

// renderFrame wraps body in the modal chrome and centers it.
func (m *AnalysisModal) renderFrame(body, footer string) string {
	title := m.theme.ModalTitle.Width(m.contentWidth()).Render("Analisis Percakapan")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		m.theme.ModalFooter.Render(footer))

	box := m.theme.ModalFrame.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
