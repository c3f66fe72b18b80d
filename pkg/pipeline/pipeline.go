// Package pipeline wires the post-processing stages together:
// validate -> optional confidence filter -> classify -> segment -> aggregate.
//
// Each run owns its slices and state, so independent runs can execute in
// parallel with no cross-talk.
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/qc20/interview-transcriber/pkg/models"
	"github.com/qc20/interview-transcriber/pkg/quality"
	"github.com/qc20/interview-transcriber/pkg/recognizer"
	"github.com/qc20/interview-transcriber/pkg/segmenter"
	"github.com/qc20/interview-transcriber/pkg/stats"
	"github.com/qc20/interview-transcriber/pkg/utils"
)

// Result is the output of one post-processing run.
type Result struct {
	RunID         string         `json:"run_id"`
	Turns         []models.Turn  `json:"turns"`
	Report        *models.Report `json:"report"`
	Dropped       int            `json:"dropped_segments"` // below the min-confidence cutoff
	Skipped       int            `json:"skipped_segments"` // invalid timing, skipped in lenient mode
	ProcessTimeMs int64          `json:"process_time_ms"`
}

// Pipeline runs the post-processing stages with fixed configuration.
type Pipeline struct {
	config     *models.Config
	classifier *quality.Classifier
	segmenter  *segmenter.Segmenter
	statsOpts  stats.Options
}

// New creates a pipeline from the tool configuration.
func New(config *models.Config) *Pipeline {
	return &Pipeline{
		config:     config,
		classifier: quality.NewClassifier(quality.OptionsFromConfig(config)),
		segmenter:  segmenter.New(segmenter.OptionsFromConfig(config)),
		statsOpts:  stats.OptionsFromConfig(config),
	}
}

// Process runs the full pipeline over raw recognizer output.
//
// Raw segments with empty text are dropped silently (a no-op, not an error).
// Segments with invalid timing are skipped with a warning, unless
// StrictSegments is set, in which case the run aborts on the first one.
func (p *Pipeline) Process(raw []recognizer.RawSegment) (*Result, error) {
	started := time.Now()
	result := &Result{RunID: uuid.New().String()}

	segments := make([]models.Segment, 0, len(raw))
	for i, rs := range raw {
		seg, err := models.NewSegment(rs.Text, rs.Start, rs.End, rs.Confidence)
		if err != nil {
			if errors.Is(err, models.ErrEmptyText) {
				utils.Debug("dropping empty segment %d", i)
				continue
			}
			if p.config.StrictSegments {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			utils.Warn("skipping segment %d: %v", i, err)
			result.Skipped++
			continue
		}

		if p.config.MinConfidence != nil && seg.Confidence < *p.config.MinConfidence {
			utils.Debug("dropping segment %d below confidence cutoff: %.3f < %.3f",
				i, seg.Confidence, *p.config.MinConfidence)
			result.Dropped++
			continue
		}

		segments = append(segments, seg)
	}

	annotated := p.classifier.ClassifyAll(segments)
	result.Turns = p.segmenter.Segment(annotated)
	result.Report = stats.Aggregate(result.Turns, p.statsOpts)
	result.ProcessTimeMs = time.Since(started).Milliseconds()

	utils.Info("run %s: %d segments -> %d turns, quality %s",
		result.RunID, result.Report.TotalSegments, result.Report.TotalTurns, result.Report.AudioQuality)

	return result, nil
}
