// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations,
// messages, and analysis reports.
//
// # Key Types
//
//   - Conversation: ordered transcript for one chat session, with the
//     derived analysis gate (AnalysisEligible)
//   - Message: single message with sender, content, and timestamp
//   - AnalysisReport: the full analysis document returned by the
//     service, mirroring its JSON field for field
//   - ProbabilitySet: attachment-style probabilities that preserve the
//     order labels appeared in the JSON document
//
// # Usage
//
// Build up a transcript:
//
//	conv := model.NewConversation(sessionID)
//	conv.AppendUserMessage("halo")
//	if conv.AnalysisEligible() {
//	    // the analyze endpoint will accept this session
//	}
package model
