// Package quality maps segment confidence scores onto discrete quality bands.
package quality

import (
	"github.com/qc20/interview-transcriber/pkg/models"
)

// Options are the classification thresholds. Confidence scores are
// log-probability-like: higher means more confident.
type Options struct {
	HighThreshold    float64 // above this -> HIGH
	LowThreshold     float64 // at or below this -> LOW
	MinClearDuration float64 // segments shorter than this are flagged unclear
}

// DefaultOptions returns the documented default thresholds.
func DefaultOptions() Options {
	return Options{
		HighThreshold:    -0.5,
		LowThreshold:     -1.5,
		MinClearDuration: 0.3,
	}
}

// OptionsFromConfig builds classifier options from the tool configuration.
func OptionsFromConfig(cfg *models.Config) Options {
	return Options{
		HighThreshold:    cfg.HighConfidence,
		LowThreshold:     cfg.LowConfidence,
		MinClearDuration: cfg.MinClearDuration,
	}
}

// Classifier assigns quality bands and the unclear flag. It is stateless and
// deterministic; it never drops segments. Dropping (e.g. a min-confidence
// cutoff) is the caller's decision, applied before this stage.
type Classifier struct {
	opts Options
}

// NewClassifier creates a classifier with the given thresholds.
func NewClassifier(opts Options) *Classifier {
	return &Classifier{opts: opts}
}

// Band returns the quality band for a raw confidence score.
func (c *Classifier) Band(confidence float64) models.QualityBand {
	switch {
	case confidence > c.opts.HighThreshold:
		return models.BandHigh
	case confidence > c.opts.LowThreshold:
		return models.BandMedium
	default:
		return models.BandLow
	}
}

// Classify annotates one segment. A segment is unclear when its band is LOW,
// when it is shorter than MinClearDuration, or when it has no words.
func (c *Classifier) Classify(seg models.Segment) models.AnnotatedSegment {
	band := c.Band(seg.Confidence)
	unclear := band == models.BandLow ||
		seg.Duration() < c.opts.MinClearDuration ||
		seg.WordCount() == 0

	return models.AnnotatedSegment{
		Segment: seg,
		Band:    band,
		Unclear: unclear,
	}
}

// ClassifyAll annotates a whole segment sequence, preserving order.
func (c *Classifier) ClassifyAll(segments []models.Segment) []models.AnnotatedSegment {
	annotated := make([]models.AnnotatedSegment, 0, len(segments))
	for _, seg := range segments {
		annotated = append(annotated, c.Classify(seg))
	}
	return annotated
}
