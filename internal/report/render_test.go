// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lekatlabs/lekat-tui/internal/model"
	"github.com/lekatlabs/lekat-tui/internal/ui/styles"
)

func testRenderer(t *testing.T) Renderer {
	t.Helper()
	return NewRenderer(styles.NewTheme(), 100)
}

func floatPtr(f float64) *float64 { return &f }

func sampleReport() *model.AnalysisReport {
	return &model.AnalysisReport{
		AttachmentStyle: model.AttachmentStyle{
			Prediction: "cemas",
			Confidence: 87.3,
			Probabilities: model.NewProbabilitySet(
				model.LabelValue{Label: "cemas", Value: 87.3},
				model.LabelValue{Label: "aman", Value: 8.2},
				model.LabelValue{Label: "menghindar", Value: 4.5},
			),
		},
		PhraseAnalysis: model.PhraseAnalysis{
			TotalUniquePhrases:    42,
			TotalPhrasesExtracted: 120,
			TopPhrases: []model.TopPhrase{
				{Phrase: "aku takut", Frequency: 4, Percentage: 9.5, TFIDFScore: floatPtr(0.4126), Importance: "high"},
				{Phrase: "tidak apa", Frequency: 2, Percentage: 4.8, TFIDFScore: nil, Importance: "medium"},
			},
		},
		EmotionAnalysis: model.EmotionAnalysis{
			Scores: map[string]float64{
				"sedih":  0.051,
				"takut":  0.602,
				"senang": 0.347,
			},
			Dominant: model.DominantEmotion{Name: "takut", Score: 0.602},
		},
		BertFeatures: model.BertFeatures{
			EmbeddingDimension: 768,
			Statistics: model.EmbeddingStats{
				Mean: 0.01234, Std: 0.4567, Min: -1.98765, Max: 2.12345,
			},
		},
		TextStatistics: model.TextStatistics{
			TotalMessages:    12,
			AvgMessageLength: 34.5,
			WordCount:        287,
		},
		Timeline: []model.TimelineEntry{
			{
				Timestamp: "2025-01-10 08:00:00",
				Content:   "aku takut kamu pergi",
				WordCount: 4,
				Phrases: []model.PhraseMention{
					{Phrase: "aku takut", Score: 0.41},
					{Phrase: "kamu pergi", Score: 0.3},
				},
			},
		},
		Cached:     false,
		AnalyzedAt: "2025-01-10 08:05:00",
	}
}

// =============================================================================
// SECTION CONTENT
// =============================================================================

func TestRender_Verdict(t *testing.T) {
	out := testRenderer(t).Render(sampleReport())

	// Prediction renders uppercase, confidence as the raw percentage.
	if !strings.Contains(out, "CEMAS") {
		t.Error("verdict should render the prediction uppercase")
	}
	if !strings.Contains(out, "Confidence: 87.3%") {
		t.Error("confidence line missing or reformatted")
	}
}

func TestRender_ProbabilitiesInDocumentOrder(t *testing.T) {
	out := testRenderer(t).Render(sampleReport())

	// "aman" must come after "cemas" and before "menghindar", exactly
	// as the server emitted them, even though that is not sorted order.
	iCemas := strings.Index(out, "cemas")
	iAman := strings.Index(out, "aman")
	iMenghindar := strings.Index(out, "menghindar")
	if iCemas < 0 || iAman < 0 || iMenghindar < 0 {
		t.Fatal("probability labels missing from output")
	}
	if !(iCemas < iAman && iAman < iMenghindar) {
		t.Errorf("labels out of document order: cemas@%d aman@%d menghindar@%d",
			iCemas, iAman, iMenghindar)
	}
}

func TestRender_PhraseTable(t *testing.T) {
	out := testRenderer(t).Render(sampleReport())

	if !strings.Contains(out, "4x") {
		t.Error("frequency should render with an x suffix")
	}
	if !strings.Contains(out, "9.5%") {
		t.Error("percentage missing")
	}
	if !strings.Contains(out, "0.413") {
		t.Error("tfidf should render with exactly 3 decimals")
	}
	if !strings.Contains(out, " - ") {
		t.Error("nil tfidf should render as a dash")
	}
	if !strings.Contains(out, "Frasa unik: 42") {
		t.Error("unique phrase counter missing")
	}
}

func TestRender_PhrasesCappedAtFifteen(t *testing.T) {
	r := sampleReport()
	r.PhraseAnalysis.TopPhrases = nil
	for i := 0; i < 20; i++ {
		r.PhraseAnalysis.TopPhrases = append(r.PhraseAnalysis.TopPhrases, model.TopPhrase{
			Phrase: "frasa", Frequency: i + 1, Percentage: 1, Importance: "low",
		})
	}

	out := testRenderer(t).Render(r)
	if !strings.Contains(out, "15x") {
		t.Error("fifteenth phrase missing")
	}
	if strings.Contains(out, "16x") {
		t.Error("sixteenth phrase should be cut")
	}
}

func TestRender_EmotionsSortedDescending(t *testing.T) {
	out := testRenderer(t).Render(sampleReport())

	// Scores are 0-1 and display as percentages with one decimal.
	if !strings.Contains(out, "60.2%") {
		t.Error("takut should render as 60.2%")
	}
	if !strings.Contains(out, "34.7%") {
		t.Error("senang should render as 34.7%")
	}
	iTakut := strings.Index(out, "60.2%")
	iSenang := strings.Index(out, "34.7%")
	iSedih := strings.Index(out, "5.1%")
	if !(iTakut < iSenang && iSenang < iSedih) {
		t.Error("emotions should render sorted by score descending")
	}
	if !strings.Contains(out, "Emosi Dominan: takut (60.2%)") {
		t.Error("dominant emotion callout missing")
	}
}

func TestRender_EmotionsCappedAtEight(t *testing.T) {
	r := sampleReport()
	r.EmotionAnalysis.Scores = map[string]float64{
		"a": 0.9, "b": 0.8, "c": 0.7, "d": 0.6, "e": 0.5,
		"f": 0.4, "g": 0.3, "h": 0.2, "i": 0.1,
	}
	r.EmotionAnalysis.Dominant = model.DominantEmotion{}

	out := testRenderer(t).Render(r)
	if !strings.Contains(out, "20.0%") {
		t.Error("eighth emotion missing")
	}
	if strings.Contains(out, "10.0%") {
		t.Error("ninth emotion should be cut")
	}
}

func TestRender_EmbeddingStats(t *testing.T) {
	out := testRenderer(t).Render(sampleReport())

	if !strings.Contains(out, "Dimension: 768") {
		t.Error("embedding dimension missing")
	}
	if !strings.Contains(out, "0.0123") {
		t.Error("mean should render with 4 decimals")
	}
	if !strings.Contains(out, "-1.9877 → 2.1234") {
		t.Errorf("range should render min → max with 4 decimals, got:\n%s", out)
	}
}

func TestRender_TextStatistics(t *testing.T) {
	out := testRenderer(t).Render(sampleReport())

	if !strings.Contains(out, "Total Pesan: 12") {
		t.Error("total messages missing")
	}
	if !strings.Contains(out, "Jumlah Kata: 287") {
		t.Error("word count missing")
	}
}

func TestRender_Timeline(t *testing.T) {
	out := testRenderer(t).Render(sampleReport())

	if !strings.Contains(out, "4 kata") {
		t.Error("timeline word count missing")
	}
	if !strings.Contains(out, "Frasa: aku takut (0.41), kamu pergi (0.3)") {
		t.Error("timeline phrases should join with commas and carry scores")
	}
}

func TestRender_CachedBanner(t *testing.T) {
	r := sampleReport()
	rd := testRenderer(t)

	if strings.Contains(rd.Render(r), "Hasil tersimpan") {
		t.Error("fresh report should have no cached banner")
	}

	r.Cached = true
	out := rd.Render(r)
	if !strings.Contains(out, "Hasil tersimpan dari analisis sebelumnya (2025-01-10 08:05:00)") {
		t.Error("cached banner missing or misformatted")
	}
}

// =============================================================================
// RENDERER BEHAVIOR
// =============================================================================

func TestRender_NilReport(t *testing.T) {
	if out := testRenderer(t).Render(nil); out != "" {
		t.Errorf("Render(nil) = %q, want empty", out)
	}
}

func TestRender_EmptySectionsOmitted(t *testing.T) {
	out := testRenderer(t).Render(&model.AnalysisReport{})
	if out != "" {
		t.Errorf("empty report should render nothing, got %q", out)
	}
}

func TestRender_Idempotent(t *testing.T) {
	rd := testRenderer(t)
	r := sampleReport()

	before, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}

	first := rd.Render(r)
	second := rd.Render(r)
	if first != second {
		t.Error("rendering the same report twice should give identical output")
	}

	after, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("rendering must not mutate the report")
	}
}

func TestRender_SanitizesControlCharacters(t *testing.T) {
	r := sampleReport()
	r.AttachmentStyle.Prediction = "cemas\x1b[31m"

	out := testRenderer(t).Render(r)
	if strings.Contains(out, "\x1b[31m") {
		t.Error("server-supplied escape sequences must be stripped")
	}
}

func TestNewRenderer_EnforcesMinimumWidth(t *testing.T) {
	rd := NewRenderer(styles.NewTheme(), 5)
	out := rd.Render(sampleReport())
	if out == "" {
		t.Error("narrow renderer should still produce output")
	}
}
