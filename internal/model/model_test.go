// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"testing"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestSender_DisplayName(t *testing.T) {
	tests := []struct {
		sender Sender
		want   string
	}{
		{SenderUser, "Anda"},
		{SenderBot, "Lekat"},
		{Sender("weird"), "weird"},
	}

	for _, tc := range tests {
		t.Run(string(tc.sender), func(t *testing.T) {
			if got := tc.sender.DisplayName(); got != tc.want {
				t.Errorf("DisplayName() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSender_Valid(t *testing.T) {
	if !SenderUser.Valid() || !SenderBot.Valid() {
		t.Error("built-in senders should be valid")
	}
	if Sender("other").Valid() {
		t.Error("unknown sender should not be valid")
	}
}

func TestMessage_IsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \t\n  ", true},
		{"real text", "halo", false},
		{"padded text", "  halo  ", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := NewUserMessage(tc.content)
			if got := msg.IsEmpty(); got != tc.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMessage_Preview(t *testing.T) {
	msg := NewBotMessage("halo dunia yang indah")
	if got := msg.Preview(9); got != "halo d..." {
		t.Errorf("Preview(9) = %q", got)
	}
	if got := msg.Preview(100); got != "halo dunia yang indah" {
		t.Errorf("Preview(100) = %q", got)
	}
}

func TestMessage_WordCount(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"satu", 1},
		{"dua  kata", 2},
		{"  tiga kata lagi \n", 3},
	}

	for _, tc := range tests {
		msg := NewUserMessage(tc.content)
		if got := msg.WordCount(); got != tc.want {
			t.Errorf("WordCount(%q) = %d, want %d", tc.content, got, tc.want)
		}
	}
}

func TestNewUserMessage_AssignsLocalID(t *testing.T) {
	a := NewUserMessage("x")
	b := NewUserMessage("x")
	if a.ID == "" || b.ID == "" {
		t.Fatal("local messages should get generated IDs")
	}
	if a.ID == b.ID {
		t.Error("generated IDs should be unique")
	}
	if !a.Local {
		t.Error("NewUserMessage should mark the message local")
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversation_AnalysisEligible(t *testing.T) {
	conv := NewConversation("sess")

	// Bot messages never count toward the gate.
	for i := 0; i < 10; i++ {
		conv.AppendBotMessage("balasan")
	}
	if conv.AnalysisEligible() {
		t.Fatal("bot messages alone should not unlock analysis")
	}

	// The gate opens at exactly AnalysisMinMessages user messages.
	for i := 0; i < AnalysisMinMessages-1; i++ {
		conv.AppendUserMessage("pesan")
	}
	if conv.AnalysisEligible() {
		t.Errorf("eligible at %d user messages, want gate at %d",
			conv.UserMessageCount(), AnalysisMinMessages)
	}
	conv.AppendUserMessage("pesan kelima")
	if !conv.AnalysisEligible() {
		t.Errorf("not eligible at %d user messages", conv.UserMessageCount())
	}
}

func TestConversation_MessagesRemaining(t *testing.T) {
	conv := NewConversation("sess")
	if got := conv.MessagesRemaining(); got != AnalysisMinMessages {
		t.Errorf("MessagesRemaining() = %d, want %d", got, AnalysisMinMessages)
	}
	for i := 0; i < AnalysisMinMessages+2; i++ {
		conv.AppendUserMessage("pesan")
	}
	if got := conv.MessagesRemaining(); got != 0 {
		t.Errorf("MessagesRemaining() after gate = %d, want 0", got)
	}
}

func TestConversation_ReplaceAll(t *testing.T) {
	conv := NewConversation("sess")
	conv.AppendUserMessage("lama")

	fresh := []*Message{NewUserMessage("baru"), NewBotMessage("balasan")}
	conv.ReplaceAll(fresh)

	if conv.MessageCount() != 2 {
		t.Fatalf("MessageCount() = %d, want 2", conv.MessageCount())
	}
	if conv.Messages[0].Content != "baru" {
		t.Errorf("first message = %q, want %q", conv.Messages[0].Content, "baru")
	}
	if conv.LastMessage().Content != "balasan" {
		t.Errorf("LastMessage() = %q", conv.LastMessage().Content)
	}
}

// =============================================================================
// REPORT TESTS
// =============================================================================

func TestProbabilitySet_PreservesDocumentOrder(t *testing.T) {
	// Keys deliberately out of alphabetical order.
	raw := []byte(`{"secure": 12.5, "anxious": 60.0, "avoidant": 27.5}`)

	var p ProbabilitySet
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	wantOrder := []string{"secure", "anxious", "avoidant"}
	got := p.Labels()
	if len(got) != len(wantOrder) {
		t.Fatalf("Labels() = %v, want %v", got, wantOrder)
	}
	for i, label := range wantOrder {
		if got[i] != label {
			t.Errorf("Labels()[%d] = %q, want %q", i, got[i], label)
		}
	}
	if p.Get("anxious") != 60.0 {
		t.Errorf("Get(anxious) = %v, want 60.0", p.Get("anxious"))
	}
}

func TestProbabilitySet_RoundTrip(t *testing.T) {
	p := NewProbabilitySet(
		LabelValue{Label: "fearful", Value: 5.5},
		LabelValue{Label: "secure", Value: 94.5},
	)

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"fearful":5.5,"secure":94.5}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestProbabilitySet_RejectsNonObject(t *testing.T) {
	var p ProbabilitySet
	if err := json.Unmarshal([]byte(`[1, 2]`), &p); err == nil {
		t.Error("expected error for non-object input")
	}
}

func TestEmotionAnalysis_SortedScores(t *testing.T) {
	e := EmotionAnalysis{
		Scores: map[string]float64{
			"sedih":   0.10,
			"senang":  0.55,
			"takut":   0.10,
			"percaya": 0.25,
		},
	}

	scores := e.SortedScores()
	wantOrder := []string{"senang", "percaya", "sedih", "takut"}
	for i, want := range wantOrder {
		if scores[i].Name != want {
			t.Errorf("SortedScores()[%d] = %q, want %q", i, scores[i].Name, want)
		}
	}
}

func TestAnalysisReport_Unmarshal(t *testing.T) {
	raw := []byte(`{
		"attachment_style": {
			"prediction": "secure",
			"confidence": 87.3,
			"probabilities": {"secure": 87.3, "anxious": 8.2, "avoidant": 4.5}
		},
		"phrase_analysis": {
			"total_unique_phrases": 42,
			"top_phrases": [
				{"phrase": "aku merasa", "frequency": 3, "percentage": 7.1,
				 "tfidf_score": 0.412, "importance": "high"},
				{"phrase": "tidak tahu", "frequency": 2, "percentage": 4.8,
				 "tfidf_score": null, "importance": "medium"}
			]
		},
		"cached": true,
		"analyzed_at": "2025-01-12 09:30:00"
	}`)

	var r AnalysisReport
	if err := json.Unmarshal(raw, &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if r.AttachmentStyle.Prediction != "secure" {
		t.Errorf("Prediction = %q", r.AttachmentStyle.Prediction)
	}
	if got := r.AttachmentStyle.Probabilities.Labels(); got[0] != "secure" || got[2] != "avoidant" {
		t.Errorf("probability order = %v", got)
	}
	if r.PhraseAnalysis.TopPhrases[0].TFIDFScore == nil {
		t.Error("first phrase should carry a tfidf score")
	}
	if r.PhraseAnalysis.TopPhrases[1].TFIDFScore != nil {
		t.Error("null tfidf_score should unmarshal to nil")
	}
	if !r.Cached {
		t.Error("Cached should be true")
	}
}
