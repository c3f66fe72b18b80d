package models

import "strings"

// Speaker labels produced by the segmenter. Exactly two labels exist; mapping
// them onto interviewer/participant roles is the caller's business.
const (
	SpeakerA = "SPEAKER_A"
	SpeakerB = "SPEAKER_B"
)

// Marker tokens substituted by renderers. The literals are part of the
// external contract and must not change.
const (
	PauseMarker   = "[PAUSE]"
	UnclearMarker = "[UNCLEAR]"
)

// QualityBand is the discrete confidence classification of a segment.
type QualityBand string

const (
	BandHigh   QualityBand = "HIGH"
	BandMedium QualityBand = "MEDIUM"
	BandLow    QualityBand = "LOW"
)

// Segment is one recognized speech unit as produced by the recognizer.
// Confidence is a log-probability-like score, typically in [-3.0, 0.0],
// higher meaning more confident. Segments arrive in non-decreasing Start
// order; overlapping segments are allowed and never merged.
type Segment struct {
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
}

// NewSegment validates and constructs a Segment. Text is trimmed; a segment
// whose text is empty after trimming fails with ErrEmptyText wrapped in an
// InvalidSegmentError, which callers usually treat as "drop silently".
func NewSegment(text string, start, end, confidence float64) (Segment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Segment{}, &InvalidSegmentError{Field: "text", Message: "empty after trimming", cause: ErrEmptyText}
	}
	if start < 0 {
		return Segment{}, &InvalidSegmentError{Field: "start", Message: "must not be negative"}
	}
	if start >= end {
		return Segment{}, &InvalidSegmentError{Field: "end", Message: "must be greater than start"}
	}
	return Segment{
		Text:       trimmed,
		Start:      start,
		End:        end,
		Confidence: confidence,
	}, nil
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// WordCount returns the number of whitespace-separated tokens in the text.
func (s Segment) WordCount() int {
	return len(strings.Fields(s.Text))
}

// AnnotatedSegment is a Segment plus the derived quality flags. The classifier
// sets Band and Unclear; the segmenter stamps IsPauseMarker on its own copy
// while building turns. Not mutated after the turn list is returned.
type AnnotatedSegment struct {
	Segment

	Band          QualityBand `json:"quality_band"`
	Unclear       bool        `json:"is_unclear"`
	IsPauseMarker bool        `json:"is_pause_marker"`
}

// RenderText returns the text a renderer should display: the unclear marker
// for unclear segments, the original text otherwise.
func (a AnnotatedSegment) RenderText() string {
	if a.Unclear {
		return UnclearMarker
	}
	return a.Text
}

// Turn is a maximal run of consecutive segments attributed to one speaker.
// Created once by the segmenter and never mutated afterward.
type Turn struct {
	Speaker   string             `json:"speaker"`
	Segments  []AnnotatedSegment `json:"segments"`
	Start     float64            `json:"start"`
	End       float64            `json:"end"`
	Duration  float64            `json:"duration"`
	WordCount int                `json:"word_count"`
}
