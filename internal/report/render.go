// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report renders an analysis report document as styled
// terminal text.
//
// Rendering is pure: no I/O, no mutation of the report, and the same
// report at the same width always produces the same output. All
// numeric formatting is fixed here so the terminal shows exactly what
// the service computed; the renderer never rescales or re-sorts
// values beyond what the service UI contract requires.
package report

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lekatlabs/lekat-tui/internal/model"
	"github.com/lekatlabs/lekat-tui/internal/ui/styles"
	"github.com/lekatlabs/lekat-tui/internal/util"
)

// Section titles, matching the service UI.
const (
	titleStyle     = "Attachment Style Anda"
	titleProbs     = "Distribusi Probabilitas"
	titlePhrases   = "Analisis Frasa Kunci (TF-IDF + Frequency)"
	titleEmotions  = "Analisis Emosi"
	titleEmbedding = "IndoBERT Embedding Analysis"
	titleTextStats = "Statistik Teks"
	titleTimeline  = "Timeline Percakapan"
)

// Rendering limits from the service UI contract.
const (
	// maxPhrases caps the phrase table at the first entries of
	// top_phrases, in the order the server ranked them.
	maxPhrases = 15

	// maxEmotions caps the emotion list at the highest-scoring
	// entries after sorting descending.
	maxEmotions = 8

	// minWidth is the narrowest layout the renderer will attempt.
	minWidth = 40
)

var upperID = cases.Upper(language.Indonesian)

// Renderer renders analysis reports at a fixed width with a theme.
type Renderer struct {
	theme *styles.Theme
	width int
}

// NewRenderer creates a renderer for the given theme and width.
func NewRenderer(theme *styles.Theme, width int) Renderer {
	if width < minWidth {
		width = minWidth
	}
	return Renderer{theme: theme, width: width}
}

// Render produces the full styled report. Sections with no data are
// omitted rather than rendered empty.
func (rd Renderer) Render(r *model.AnalysisReport) string {
	if r == nil {
		return ""
	}

	var sections []string

	if r.Cached {
		sections = append(sections, rd.renderCachedBanner(r))
	}
	if r.AttachmentStyle.Prediction != "" {
		sections = append(sections, rd.renderVerdict(&r.AttachmentStyle))
	}
	if r.AttachmentStyle.Probabilities.Len() > 0 {
		sections = append(sections, rd.renderProbabilities(&r.AttachmentStyle))
	}
	if len(r.PhraseAnalysis.TopPhrases) > 0 {
		sections = append(sections, rd.renderPhrases(&r.PhraseAnalysis))
	}
	if len(r.EmotionAnalysis.Scores) > 0 {
		sections = append(sections, rd.renderEmotions(&r.EmotionAnalysis))
	}
	if r.BertFeatures.EmbeddingDimension > 0 {
		sections = append(sections, rd.renderEmbedding(&r.BertFeatures))
	}
	if r.TextStatistics.TotalMessages > 0 {
		sections = append(sections, rd.renderTextStats(&r.TextStatistics))
	}
	if len(r.Timeline) > 0 {
		sections = append(sections, rd.renderTimeline(r.Timeline))
	}

	return strings.Join(sections, "\n\n")
}

// =============================================================================
// SECTIONS
// =============================================================================

// renderCachedBanner shows that the server returned a stored result.
func (rd Renderer) renderCachedBanner(r *model.AnalysisReport) string {
	notice := "Hasil tersimpan dari analisis sebelumnya (" +
		util.SanitizeLine(r.AnalyzedAt) + ")"
	return rd.theme.CachedBanner.Render(notice)
}

// renderVerdict shows the predicted style and confidence.
// The prediction renders uppercase; confidence is the raw percentage.
func (rd Renderer) renderVerdict(s *model.AttachmentStyle) string {
	prediction := upperID.String(util.SanitizeLine(s.Prediction))
	lines := []string{
		rd.theme.SectionTitle.Render(titleStyle),
		rd.theme.Verdict.Render(prediction),
		rd.theme.Confidence.Render("Confidence: " + util.FloatToStringCompact(s.Confidence) + "%"),
	}
	return strings.Join(lines, "\n")
}

// renderProbabilities shows one bar per label in document order.
// Values are already 0-100 percentages; no rescaling happens here.
func (rd Renderer) renderProbabilities(s *model.AttachmentStyle) string {
	labels := s.Probabilities.Labels()

	labelWidth := 0
	for _, label := range labels {
		if w := util.StringWidth(label); w > labelWidth {
			labelWidth = w
		}
	}

	// label + space + bar + space + value
	barWidth := rd.width - labelWidth - 10
	if barWidth < 10 {
		barWidth = 10
	}

	lines := []string{rd.theme.SectionTitle.Render(titleProbs)}
	for _, label := range labels {
		p := s.Probabilities.Get(label)
		lines = append(lines,
			rd.theme.TableCell.Render(util.PadWidth(util.SanitizeLine(label), labelWidth))+
				" "+rd.renderBar(p, barWidth)+
				" "+rd.theme.StatValue.Render(util.FloatToStringCompact(p)+"%"))
	}
	return strings.Join(lines, "\n")
}

// renderPhrases shows the ranked phrase table: the first maxPhrases
// entries exactly as ordered by the server.
func (rd Renderer) renderPhrases(p *model.PhraseAnalysis) string {
	phrases := p.TopPhrases
	if len(phrases) > maxPhrases {
		phrases = phrases[:maxPhrases]
	}

	const (
		rankW  = 4
		freqW  = 6
		pctW   = 8
		tfidfW = 8
		badgeW = 8
	)
	phraseW := rd.width - rankW - freqW - pctW - tfidfW - badgeW - 5
	if phraseW < 12 {
		phraseW = 12
	}

	header := strings.Join([]string{
		util.PadWidth("#", rankW),
		util.PadWidth("Frasa", phraseW),
		util.PadWidth("Frek", freqW),
		util.PadWidth("%", pctW),
		util.PadWidth("TF-IDF", tfidfW),
		util.PadWidth("Tingkat", badgeW),
	}, " ")

	lines := []string{
		rd.theme.SectionTitle.Render(titlePhrases),
		rd.theme.StatLabel.Render(
			"Frasa unik: " + util.IntToString(p.TotalUniquePhrases) +
				"  Total diekstrak: " + util.IntToString(p.TotalPhrasesExtracted)),
		rd.theme.TableHeader.Render(header),
	}

	for i, phrase := range phrases {
		tfidf := "-"
		if phrase.TFIDFScore != nil {
			tfidf = util.FloatToStringPrec(*phrase.TFIDFScore, 3)
		}
		row := strings.Join([]string{
			util.PadWidth(util.IntToString(i+1), rankW),
			util.PadWidth(util.SanitizeLine(phrase.Phrase), phraseW),
			util.PadWidth(util.IntToString(phrase.Frequency)+"x", freqW),
			util.PadWidth(util.FloatToStringCompact(phrase.Percentage)+"%", pctW),
			util.PadWidth(tfidf, tfidfW),
		}, " ")
		lines = append(lines,
			rd.theme.TableCell.Render(row)+" "+rd.renderBadge(phrase.Importance))
	}
	return strings.Join(lines, "\n")
}

// renderEmotions shows the top emotions sorted by score descending.
// Scores arrive on a 0-1 scale and display as percentages.
func (rd Renderer) renderEmotions(e *model.EmotionAnalysis) string {
	scores := e.SortedScores()
	if len(scores) > maxEmotions {
		scores = scores[:maxEmotions]
	}

	nameWidth := 0
	for _, s := range scores {
		if w := util.StringWidth(s.Name); w > nameWidth {
			nameWidth = w
		}
	}

	barWidth := rd.width - nameWidth - 10
	if barWidth < 10 {
		barWidth = 10
	}

	lines := []string{rd.theme.SectionTitle.Render(titleEmotions)}
	for _, s := range scores {
		pct := s.Score * 100
		lines = append(lines,
			rd.theme.TableCell.Render(util.PadWidth(util.SanitizeLine(s.Name), nameWidth))+
				" "+rd.renderBar(pct, barWidth)+
				" "+rd.theme.StatValue.Render(util.FloatToStringPrec(pct, 1)+"%"))
	}

	if e.Dominant.Name != "" {
		lines = append(lines, rd.theme.DominantCallout.Render(
			"Emosi Dominan: "+util.SanitizeLine(e.Dominant.Name)+
				" ("+util.FloatToStringPrec(e.Dominant.Score*100, 1)+"%)"))
	}
	return strings.Join(lines, "\n")
}

// renderEmbedding shows the embedding dimension and vector summary.
func (rd Renderer) renderEmbedding(b *model.BertFeatures) string {
	stats := b.Statistics
	lines := []string{
		rd.theme.SectionTitle.Render(titleEmbedding),
		rd.statLine("Dimension", util.IntToString(b.EmbeddingDimension)),
		rd.statLine("Mean", util.FloatToStringPrec(stats.Mean, 4)),
		rd.statLine("Std", util.FloatToStringPrec(stats.Std, 4)),
		rd.statLine("Range", util.FloatToStringPrec(stats.Min, 4)+" → "+util.FloatToStringPrec(stats.Max, 4)),
	}
	return strings.Join(lines, "\n")
}

// renderTextStats shows the transcript counters.
func (rd Renderer) renderTextStats(s *model.TextStatistics) string {
	lines := []string{
		rd.theme.SectionTitle.Render(titleTextStats),
		rd.statLine("Total Pesan", util.IntToString(s.TotalMessages)),
		rd.statLine("Rata-rata Panjang Pesan", util.FloatToStringCompact(s.AvgMessageLength)),
		rd.statLine("Jumlah Kata", util.IntToString(s.WordCount)),
	}
	return strings.Join(lines, "\n")
}

// renderTimeline shows every analyzed message in order with its
// word count and extracted phrases.
func (rd Renderer) renderTimeline(entries []model.TimelineEntry) string {
	lines := []string{rd.theme.SectionTitle.Render(titleTimeline)}
	for _, entry := range entries {
		meta := util.SanitizeLine(entry.Timestamp) + " · " +
			util.IntToString(entry.WordCount) + " kata"
		lines = append(lines, rd.theme.TimelineMeta.Render(meta))
		lines = append(lines, rd.theme.TimelineEntry.Render(
			wordWrap(util.SanitizeControl(entry.Content), rd.width-2)))
		if len(entry.Phrases) > 0 {
			parts := make([]string, 0, len(entry.Phrases))
			for _, p := range entry.Phrases {
				parts = append(parts,
					util.SanitizeLine(p.Phrase)+" ("+util.FloatToStringCompact(p.Score)+")")
			}
			lines = append(lines, rd.theme.TimelineMeta.Render(
				wordWrap("Frasa: "+strings.Join(parts, ", "), rd.width-2)))
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// =============================================================================
// HELPERS
// =============================================================================

// renderBar draws a horizontal bar for a 0-100 percentage.
func (rd Renderer) renderBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct*float64(width)/100 + 0.5)
	if filled > width {
		filled = width
	}
	return rd.theme.BarFilled.Render(strings.Repeat("█", filled)) +
		rd.theme.BarEmpty.Render(strings.Repeat("░", width-filled))
}

// renderBadge styles an importance grade.
func (rd Renderer) renderBadge(importance string) string {
	label := util.SanitizeLine(importance)
	switch strings.ToLower(label) {
	case "high", "tinggi":
		return rd.theme.BadgeHigh.Render(label)
	case "medium", "sedang":
		return rd.theme.BadgeMedium.Render(label)
	default:
		return rd.theme.BadgeLow.Render(label)
	}
}

// statLine renders a "label: value" pair.
func (rd Renderer) statLine(label, value string) string {
	return rd.theme.StatLabel.Render(label+": ") + rd.theme.StatValue.Render(value)
}

// wordWrap wraps text to a maximum display width, preserving
// existing newlines. Words wider than the limit break mid-word.
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
			for util.StringWidth(word) > width {
				head := util.TruncateRunesNoEllipsis(word, width)
				if line != "" {
					out = append(out, line)
					line = ""
				}
				out = append(out, head)
				word = strings.TrimPrefix(word, head)
			}
			switch {
			case line == "":
				line = word
			case util.StringWidth(line)+1+util.StringWidth(word) <= width:
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
