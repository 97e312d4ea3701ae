// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// =============================================================================
// ANALYSIS REPORT
// =============================================================================

// AnalysisReport is the document returned by the analyze endpoint.
// Field names mirror the service's JSON exactly. Sections may be
// absent on older reports; consumers must tolerate zero values.
//
// Scale contract: AttachmentStyle probabilities are 0-100 percentages,
// emotion scores are 0-1 fractions. The renderer multiplies emotion
// scores by 100 and never rescales probabilities.
type AnalysisReport struct {
	AttachmentStyle AttachmentStyle `json:"attachment_style"`
	PhraseAnalysis  PhraseAnalysis  `json:"phrase_analysis"`
	EmotionAnalysis EmotionAnalysis `json:"emotion_analysis"`
	BertFeatures    BertFeatures    `json:"bert_features"`
	TextStatistics  TextStatistics  `json:"text_statistics"`
	Timeline        []TimelineEntry `json:"timeline"`

	// Cached is true when the server returned a stored result
	// instead of running a fresh analysis.
	Cached     bool   `json:"cached"`
	AnalyzedAt string `json:"analyzed_at"`
}

// AttachmentStyle holds the classifier verdict.
type AttachmentStyle struct {
	Prediction string `json:"prediction"`

	// Confidence is a 0-100 percentage.
	Confidence float64 `json:"confidence"`

	// Probabilities maps style label to a 0-100 percentage,
	// preserving the order the server emitted.
	Probabilities ProbabilitySet `json:"probabilities"`
}

// PhraseAnalysis holds key-phrase extraction results.
type PhraseAnalysis struct {
	TotalUniquePhrases    int         `json:"total_unique_phrases"`
	TotalPhrasesExtracted int         `json:"total_phrases_extracted"`
	TopPhrases            []TopPhrase `json:"top_phrases"`
}

// TopPhrase is one ranked phrase. The server emits these already
// ordered; the client must not re-sort them.
type TopPhrase struct {
	Phrase     string  `json:"phrase"`
	Frequency  int     `json:"frequency"`
	Percentage float64 `json:"percentage"`

	// TFIDFScore is nil when the corpus was too small to compute it.
	TFIDFScore *float64 `json:"tfidf_score"`
	Importance string   `json:"importance"`
}

// EmotionAnalysis holds per-emotion scores on a 0-1 scale.
type EmotionAnalysis struct {
	Scores   map[string]float64 `json:"scores"`
	Dominant DominantEmotion    `json:"dominant"`
}

// DominantEmotion is the single highest-scoring emotion.
type DominantEmotion struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// EmotionScore pairs an emotion name with its 0-1 score.
type EmotionScore struct {
	Name  string
	Score float64
}

// SortedScores returns the scores ordered by score descending.
// Ties break alphabetically so rendering is deterministic.
func (e *EmotionAnalysis) SortedScores() []EmotionScore {
	scores := make([]EmotionScore, 0, len(e.Scores))
	for name, score := range e.Scores {
		scores = append(scores, EmotionScore{Name: name, Score: score})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Name < scores[j].Name
	})
	return scores
}

// BertFeatures describes the IndoBERT embedding the analysis used.
type BertFeatures struct {
	EmbeddingDimension int            `json:"embedding_dimension"`
	Statistics         EmbeddingStats `json:"statistics"`
}

// EmbeddingStats summarizes the embedding vector.
type EmbeddingStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// TextStatistics holds simple counters over the analyzed transcript.
type TextStatistics struct {
	TotalMessages    int     `json:"total_messages"`
	AvgMessageLength float64 `json:"avg_message_length"`
	WordCount        int     `json:"word_count"`
}

// TimelineEntry is one analyzed message in chronological order.
type TimelineEntry struct {
	Timestamp string          `json:"timestamp"`
	Content   string          `json:"content"`
	WordCount int             `json:"word_count"`
	Phrases   []PhraseMention `json:"phrases"`
}

// PhraseMention is a phrase found in one timeline entry.
type PhraseMention struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// =============================================================================
// ORDERED PROBABILITIES
// =============================================================================

// ProbabilitySet is a label-to-percentage map that preserves the
// order labels appeared in the JSON document. encoding/json maps
// drop ordering, and probability rows must render in document order.
type ProbabilitySet struct {
	labels []string
	values map[string]float64
}

// LabelValue is one ordered probability entry.
type LabelValue struct {
	Label string
	Value float64
}

// NewProbabilitySet builds a set from ordered label/value pairs.
func NewProbabilitySet(pairs ...LabelValue) ProbabilitySet {
	p := ProbabilitySet{values: make(map[string]float64, len(pairs))}
	for _, pair := range pairs {
		p.labels = append(p.labels, pair.Label)
		p.values[pair.Label] = pair.Value
	}
	return p
}

// Labels returns the labels in document order.
func (p ProbabilitySet) Labels() []string {
	return p.labels
}

// Get returns the percentage for a label.
func (p ProbabilitySet) Get(label string) float64 {
	return p.values[label]
}

// Len returns the number of labels.
func (p ProbabilitySet) Len() int {
	return len(p.labels)
}

// UnmarshalJSON decodes a JSON object, recording key order.
func (p *ProbabilitySet) UnmarshalJSON(data []byte) error {
	p.labels = nil
	p.values = make(map[string]float64)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("probabilities: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("probabilities: non-string key %v", keyTok)
		}
		var value float64
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("probabilities: value for %q: %w", key, err)
		}
		p.labels = append(p.labels, key)
		p.values[key] = value
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON encodes the set as a JSON object in document order.
func (p ProbabilitySet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range p.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p.values[label])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
