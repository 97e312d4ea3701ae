// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"
)

// AnalysisMinMessages is the number of user messages the service
// requires before it will run an analysis. The client mirrors the
// server-side gate so the trigger can be disabled locally.
const AnalysisMinMessages = 5

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the ordered, append-only transcript of a chat
// session. The server is authoritative: ReplaceAll swaps in reloaded
// history wholesale, discarding optimistic local entries.
type Conversation struct {
	// SessionID identifies the server-side chat session.
	SessionID string `json:"session_id"`

	// Messages in creation order.
	Messages []*Message `json:"messages"`

	// LoadedAt is when the transcript was last reloaded from the server.
	LoadedAt time.Time `json:"loaded_at"`
}

// NewConversation creates an empty conversation for a session.
func NewConversation(sessionID string) *Conversation {
	return &Conversation{
		SessionID: sessionID,
		Messages:  make([]*Message, 0, 64),
	}
}

// Append adds a message to the end of the transcript.
func (c *Conversation) Append(msg *Message) {
	c.Messages = append(c.Messages, msg)
}

// AppendUserMessage appends a user message and returns it.
func (c *Conversation) AppendUserMessage(content string) *Message {
	msg := NewUserMessage(content)
	c.Append(msg)
	return msg
}

// AppendBotMessage appends a bot message and returns it.
func (c *Conversation) AppendBotMessage(content string) *Message {
	msg := NewBotMessage(content)
	c.Append(msg)
	return msg
}

// ReplaceAll swaps the transcript for freshly loaded history.
func (c *Conversation) ReplaceAll(msgs []*Message) {
	c.Messages = msgs
	c.LoadedAt = time.Now()
}

// MessageCount returns the total number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// UserMessageCount returns how many messages were sent by the user.
// The analysis gate is derived from this count.
func (c *Conversation) UserMessageCount() int {
	n := 0
	for _, msg := range c.Messages {
		if msg.Sender == SenderUser {
			n++
		}
	}
	return n
}

// AnalysisEligible reports whether the session has enough user
// messages for the service to run an analysis.
func (c *Conversation) AnalysisEligible() bool {
	return c.UserMessageCount() >= AnalysisMinMessages
}

// MessagesRemaining returns how many more user messages are needed
// before analysis becomes available. Zero when already eligible.
func (c *Conversation) MessagesRemaining() int {
	remaining := AnalysisMinMessages - c.UserMessageCount()
	if remaining < 0 {
		return 0
	}
	return remaining
}

// LastMessage returns the most recent message, or nil when empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// IsEmpty reports whether the transcript has no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}
