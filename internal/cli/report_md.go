// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// report_md.go - Markdown rendition of the analysis report for the
// plain CLI. Follows the same display contract as the TUI renderer:
// same section order, same limits, same numeric precision.
package cli

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lekatlabs/lekat-tui/internal/model"
	"github.com/lekatlabs/lekat-tui/internal/util"
)

var upperID = cases.Upper(language.Indonesian)

// reportMarkdown renders a report document as markdown for glamour.
func reportMarkdown(r *model.AnalysisReport) string {
	if r == nil {
		return ""
	}

	var b strings.Builder

	if r.Cached {
		b.WriteString("> Hasil tersimpan dari analisis sebelumnya (" +
			util.SanitizeLine(r.AnalyzedAt) + ")\n\n")
	}

	if r.AttachmentStyle.Prediction != "" {
		b.WriteString("# Attachment Style Anda\n\n")
		b.WriteString("**" + upperID.String(util.SanitizeLine(r.AttachmentStyle.Prediction)) + "**")
		b.WriteString(" — Confidence: " +
			util.FloatToStringCompact(r.AttachmentStyle.Confidence) + "%\n\n")
	}

	if r.AttachmentStyle.Probabilities.Len() > 0 {
		b.WriteString("## Distribusi Probabilitas\n\n")
		for _, label := range r.AttachmentStyle.Probabilities.Labels() {
			p := r.AttachmentStyle.Probabilities.Get(label)
			b.WriteString("- " + util.SanitizeLine(label) + ": " +
				util.FloatToStringCompact(p) + "%\n")
		}
		b.WriteString("\n")
	}

	if len(r.PhraseAnalysis.TopPhrases) > 0 {
		b.WriteString("## Analisis Frasa Kunci (TF-IDF + Frequency)\n\n")
		b.WriteString("| # | Frasa | Frek | % | TF-IDF | Tingkat |\n")
		b.WriteString("|---|-------|------|---|--------|--------|\n")
		phrases := r.PhraseAnalysis.TopPhrases
		if len(phrases) > 15 {
			phrases = phrases[:15]
		}
		for i, p := range phrases {
			tfidf := "-"
			if p.TFIDFScore != nil {
				tfidf = util.FloatToStringPrec(*p.TFIDFScore, 3)
			}
			b.WriteString("| " + util.IntToString(i+1) +
				" | " + util.SanitizeLine(p.Phrase) +
				" | " + util.IntToString(p.Frequency) + "x" +
				" | " + util.FloatToStringCompact(p.Percentage) + "%" +
				" | " + tfidf +
				" | " + util.SanitizeLine(p.Importance) + " |\n")
		}
		b.WriteString("\n")
	}

	if len(r.EmotionAnalysis.Scores) > 0 {
		b.WriteString("## Analisis Emosi\n\n")
		scores := r.EmotionAnalysis.SortedScores()
		if len(scores) > 8 {
			scores = scores[:8]
		}
		for _, s := range scores {
			b.WriteString("- " + util.SanitizeLine(s.Name) + ": " +
				util.FloatToStringPrec(s.Score*100, 1) + "%\n")
		}
		if r.EmotionAnalysis.Dominant.Name != "" {
			b.WriteString("\nEmosi Dominan: **" +
				util.SanitizeLine(r.EmotionAnalysis.Dominant.Name) + "** (" +
				util.FloatToStringPrec(r.EmotionAnalysis.Dominant.Score*100, 1) + "%)\n")
		}
		b.WriteString("\n")
	}

	if r.BertFeatures.EmbeddingDimension > 0 {
		stats := r.BertFeatures.Statistics
		b.WriteString("## IndoBERT Embedding Analysis\n\n")
		b.WriteString("- Dimension: " + util.IntToString(r.BertFeatures.EmbeddingDimension) + "\n")
		b.WriteString("- Mean: " + util.FloatToStringPrec(stats.Mean, 4) + "\n")
		b.WriteString("- Std: " + util.FloatToStringPrec(stats.Std, 4) + "\n")
		b.WriteString("- Range: " + util.FloatToStringPrec(stats.Min, 4) +
			" → " + util.FloatToStringPrec(stats.Max, 4) + "\n\n")
	}

	if r.TextStatistics.TotalMessages > 0 {
		b.WriteString("## Statistik Teks\n\n")
		b.WriteString("- Total Pesan: " + util.IntToString(r.TextStatistics.TotalMessages) + "\n")
		b.WriteString("- Rata-rata Panjang Pesan: " +
			util.FloatToStringCompact(r.TextStatistics.AvgMessageLength) + "\n")
		b.WriteString("- Jumlah Kata: " + util.IntToString(r.TextStatistics.WordCount) + "\n\n")
	}

	if len(r.Timeline) > 0 {
		b.WriteString("## Timeline Percakapan\n\n")
		for _, entry := range r.Timeline {
			b.WriteString("**" + util.SanitizeLine(entry.Timestamp) + "** · " +
				util.IntToString(entry.WordCount) + " kata\n\n")
			b.WriteString(util.SanitizeLine(entry.Content) + "\n\n")
			if len(entry.Phrases) > 0 {
				parts := make([]string, 0, len(entry.Phrases))
				for _, p := range entry.Phrases {
					parts = append(parts, util.SanitizeLine(p.Phrase)+
						" ("+util.FloatToStringCompact(p.Score)+")")
				}
				b.WriteString("Frasa: " + strings.Join(parts, ", ") + "\n\n")
			}
		}
	}

	return b.String()
}
