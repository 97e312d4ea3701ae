// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "Anda"
	case SenderBot:
		return "Lekat"
	default:
		return string(s)
	}
}

// Valid reports whether the sender is one the service recognizes.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderBot
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single chat message in the transcript.
type Message struct {
	// ID is the server-assigned identifier, or a locally generated
	// UUID for optimistic entries that have not been reloaded yet.
	ID string `json:"id"`

	// Sender is "user" or "bot".
	Sender Sender `json:"sender"`

	// Content is the message text.
	Content string `json:"content"`

	// CreatedAt is when the message was created.
	CreatedAt time.Time `json:"created_at"`

	// Local marks messages appended client-side before the next
	// history reload confirms them.
	Local bool `json:"-"`
}

// NewUserMessage creates a locally authored user message.
func NewUserMessage(content string) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Sender:    SenderUser,
		Content:   content,
		CreatedAt: time.Now(),
		Local:     true,
	}
}

// NewBotMessage creates a bot message from a send response.
func NewBotMessage(content string) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Sender:    SenderBot,
		Content:   content,
		CreatedAt: time.Now(),
		Local:     true,
	}
}

// IsEmpty reports whether the message has no visible content.
func (m *Message) IsEmpty() bool {
	return strings.TrimSpace(m.Content) == ""
}

// Preview returns a truncated single-line preview of the content.
// Safe for multi-byte characters.
func (m *Message) Preview(maxLen int) string {
	line := strings.ReplaceAll(m.Content, "\n", " ")
	runes := []rune(line)
	if len(runes) <= maxLen {
		return line
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// WordCount returns the number of whitespace-separated words.
func (m *Message) WordCount() int {
	return len(strings.Fields(m.Content))
}
