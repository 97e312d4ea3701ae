// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the lekat TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble lipgloss.Style
	BotBubble  lipgloss.Style
	Timestamp  lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	InputLocked      lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	GateReady    lipgloss.Style
	GateWaiting  lipgloss.Style
	StatusNotice lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// SPINNER AND LOADING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// ERROR BOX STYLES
	// ==========================================================================

	ErrorBox     lipgloss.Style
	ErrorTitle   lipgloss.Style
	ErrorMessage lipgloss.Style
	ErrorTip     lipgloss.Style

	// ==========================================================================
	// ANALYSIS MODAL STYLES
	// ==========================================================================

	ModalFrame   lipgloss.Style
	ModalTitle   lipgloss.Style
	ModalFooter  lipgloss.Style
	CachedBanner lipgloss.Style

	// ==========================================================================
	// REPORT STYLES
	// ==========================================================================

	SectionTitle    lipgloss.Style
	Verdict         lipgloss.Style
	Confidence      lipgloss.Style
	TableHeader     lipgloss.Style
	TableCell       lipgloss.Style
	BadgeHigh       lipgloss.Style
	BadgeMedium     lipgloss.Style
	BadgeLow        lipgloss.Style
	BarFilled       lipgloss.Style
	BarEmpty        lipgloss.Style
	DominantCallout lipgloss.Style
	StatLabel       lipgloss.Style
	StatValue       lipgloss.Style
	TimelineEntry   lipgloss.Style
	TimelineMeta    lipgloss.Style

	// ==========================================================================
	// ACCESSIBILITY: Status indicator styles with shapes and high contrast
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 1)

	t.BotBubble = lipgloss.NewStyle().
		Foreground(BotBubbleFg).
		Background(BotBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(BotBubbleBorder).
		Padding(0, 1)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.InputLocked = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.GateReady = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.GateWaiting = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatusNotice = lipgloss.NewStyle().
		Foreground(Amber)

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Spinner and loading
	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Error box
	t.ErrorBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Rose).
		Padding(1, 2)

	t.ErrorTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ErrorTip = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Analysis modal
	t.ModalFrame = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Purple).
		Padding(1, 2)

	t.ModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple).
		Align(lipgloss.Center)

	t.ModalFooter = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.CachedBanner = lipgloss.NewStyle().
		Foreground(AmberDeep).
		Background(Amber).
		Bold(true).
		Padding(0, 1)

	// Report
	t.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Underline(true)

	t.Verdict = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Purple).
		Padding(0, 2)

	t.Confidence = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary).
		Underline(true)

	t.TableCell = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.BadgeHigh = lipgloss.NewStyle().
		Bold(true).
		Foreground(ImportanceHigh)

	t.BadgeMedium = lipgloss.NewStyle().
		Foreground(ImportanceMedium)

	t.BadgeLow = lipgloss.NewStyle().
		Foreground(ImportanceLow)

	t.BarFilled = lipgloss.NewStyle().
		Foreground(BarFill)

	t.BarEmpty = lipgloss.NewStyle().
		Foreground(BarTrack)

	t.DominantCallout = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.StatLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StatValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.TimelineEntry = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TimelineMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	// ACCESSIBILITY: Shape indicators supplement color so states
	// remain distinguishable without color perception.
	t.SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald).
		SetString("✓ ")

	t.ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose).
		SetString("✗ ")

	t.WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber).
		SetString("⚠ ")

	t.InfoStyle = lipgloss.NewStyle().
		Foreground(Cyan).
		SetString("ℹ ")
}

// SetSize updates the theme's layout dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
