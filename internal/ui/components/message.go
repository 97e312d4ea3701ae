// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the lekat TUI.
package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lekatlabs/lekat-tui/internal/model"
	"github.com/lekatlabs/lekat-tui/internal/ui/styles"
	"github.com/lekatlabs/lekat-tui/internal/util"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one chat message as a styled bubble.
// User messages sit right-aligned in blue, bot messages left-aligned
// in purple, matching the service's web layout.
type MessageBubble struct {
	Message       *model.Message
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewMessageBubble creates a bubble for a message.
func NewMessageBubble(msg *model.Message, theme *styles.Theme) *MessageBubble {
	if msg == nil {
		msg = &model.Message{Sender: model.SenderBot}
	}
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	if b.Message.Sender == model.SenderUser {
		return b.renderUserBubble()
	}
	return b.renderBotBubble()
}

// ==========================================================================
// USER BUBBLE - Blue tones, right-aligned
// ==========================================================================

func (b *MessageBubble) renderUserBubble() string {
	content := util.SanitizeControl(b.Message.Content)
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrappedContent := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrappedContent)+4, b.Width-8)

	bubble := lipgloss.NewStyle().
		Foreground(styles.UserBubbleFg).
		Background(styles.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.UserBubbleBorder).
		Padding(0, 2).
		Width(contentWidth).
		Render(wrappedContent)

	header := b.renderHeader(b.Message.Sender.DisplayName())

	// Right-align the bubble with a left margin.
	leftMargin := b.Width - contentWidth - 4
	if leftMargin < 0 {
		leftMargin = 0
	}
	marginStyle := lipgloss.NewStyle().MarginLeft(leftMargin)

	return lipgloss.JoinVertical(lipgloss.Right,
		marginStyle.Render(header),
		marginStyle.Render(bubble))
}

// ==========================================================================
// BOT BUBBLE - Purple tones, left-aligned
// ==========================================================================

func (b *MessageBubble) renderBotBubble() string {
	content := util.SanitizeControl(b.Message.Content)
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrappedContent := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrappedContent)+4, b.Width-8)

	bubble := lipgloss.NewStyle().
		Foreground(styles.BotBubbleFg).
		Background(styles.BotBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.BotBubbleBorder).
		Padding(0, 2).
		Width(contentWidth).
		MarginRight(4).
		Render(wrappedContent)

	header := b.renderHeader(b.Message.Sender.DisplayName())

	return lipgloss.JoinVertical(lipgloss.Left, header, bubble)
}

// renderHeader builds the "sender · timestamp" line above a bubble.
func (b *MessageBubble) renderHeader(name string) string {
	nameStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	parts := []string{nameStyle.Render(strings.ToLower(name))}
	if b.ShowTimestamp && !b.Message.CreatedAt.IsZero() {
		parts = append(parts, b.theme.Timestamp.Render(formatTime(b.Message.CreatedAt)))
	}
	return strings.Join(parts, " ")
}

// =============================================================================
// MESSAGE LIST COMPONENT
// =============================================================================

// MessageList renders the whole transcript as stacked bubbles.
type MessageList struct {
	messages []*model.Message
	width    int
	theme    *styles.Theme

	// ShowTimestamps toggles per-message timestamps.
	ShowTimestamps bool
}

// NewMessageList creates an empty message list.
func NewMessageList(theme *styles.Theme) *MessageList {
	return &MessageList{
		width:          80,
		theme:          theme,
		ShowTimestamps: true,
	}
}

// SetMessages replaces the rendered messages.
func (ml *MessageList) SetMessages(messages []*model.Message) {
	ml.messages = messages
}

// SetWidth sets the render width.
func (ml *MessageList) SetWidth(width int) {
	ml.width = width
}

// View renders all messages, or a friendly empty state.
func (ml *MessageList) View() string {
	if len(ml.messages) == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Width(ml.width).
			Align(lipgloss.Center).
			Padding(2, 0).
			Render("Belum ada pesan. Mulai percakapan!")
	}

	rendered := make([]string, 0, len(ml.messages))
	for _, msg := range ml.messages {
		bubble := NewMessageBubble(msg, ml.theme)
		bubble.SetWidth(ml.width)
		bubble.ShowTimestamp = ml.ShowTimestamps
		rendered = append(rendered, bubble.View())
	}
	return strings.Join(rendered, "\n\n")
}

// =============================================================================
// HELPERS
// =============================================================================

// wordWrap wraps text to a maximum width, preserving existing
// newlines. Words longer than the limit break mid-word.
func wordWrap(text string, width int) string {
	if width < 10 {
		width = 10
	}
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			for runeLen(word) > width {
				head := string([]rune(word)[:width])
				if line != "" {
					out = append(out, line)
					line = ""
				}
				out = append(out, head)
				word = string([]rune(word)[width:])
			}
			switch {
			case line == "":
				line = word
			case runeLen(line)+1+runeLen(word) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// maxLineWidth returns the display width of the widest line.
func maxLineWidth(text string) int {
	maxWidth := 0
	for _, line := range strings.Split(text, "\n") {
		if w := util.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func runeLen(s string) int {
	return len([]rune(s))
}

// formatTime renders a message timestamp relative to today:
// time-of-day for today's messages, date + time otherwise.
func formatTime(t time.Time) string {
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("15:04")
	}
	return t.Format("02 Jan 15:04")
}
