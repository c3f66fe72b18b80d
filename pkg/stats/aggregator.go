// Package stats computes the aggregate Report over a finalized turn list.
package stats

import (
	"github.com/qc20/interview-transcriber/pkg/models"
	"github.com/qc20/interview-transcriber/pkg/quality"
)

// Options carry the band thresholds so the corpus quality label uses the same
// bands as the per-segment classifier.
type Options struct {
	HighThreshold float64
	LowThreshold  float64
}

// DefaultOptions returns the documented default thresholds.
func DefaultOptions() Options {
	return Options{HighThreshold: -0.5, LowThreshold: -1.5}
}

// OptionsFromConfig builds aggregator options from the tool configuration.
func OptionsFromConfig(cfg *models.Config) Options {
	return Options{HighThreshold: cfg.HighConfidence, LowThreshold: cfg.LowConfidence}
}

// Aggregate computes the Report for a turn list. It is a pure function with
// no I/O and never fails: degenerate input (no turns, no segments, zero total
// duration) yields a zero-valued Report with nil rates and quality "Unknown".
//
// Mean confidence is taken over ALL segments, unclear ones included. The
// pause count and durations cover every strictly positive gap between
// consecutive segments, independent of the marker thresholds.
func Aggregate(turns []models.Turn, opts Options) *models.Report {
	report := &models.Report{
		AudioQuality: "Unknown",
		Speakers:     make(map[string]models.SpeakerStats),
		Turns:        make([]models.TurnStats, 0, len(turns)),
	}

	var (
		confidenceSum float64
		highConfCount int
		bandCounts    = map[models.QualityBand]int{}
		firstStart    float64
		lastEnd       float64
		prevEnd       float64
		haveSegment   bool
	)

	for i, turn := range turns {
		report.TotalTurns++
		report.TotalWords += turn.WordCount

		speaker := report.Speakers[turn.Speaker]
		speaker.TurnCount++
		speaker.TalkTime += turn.Duration
		speaker.WordCount += turn.WordCount
		report.Speakers[turn.Speaker] = speaker

		report.Turns = append(report.Turns, turnStats(i, turn))

		for _, seg := range turn.Segments {
			dur := seg.Duration()
			report.TotalSegments++
			report.SpeechTime += dur
			confidenceSum += seg.Confidence

			if seg.Confidence > opts.HighThreshold {
				highConfCount++
			}
			bandCounts[seg.Band]++
			if seg.Unclear {
				report.UnclearSegments++
			}
			if seg.IsPauseMarker {
				report.PauseMarkedSegs++
			}

			if !haveSegment {
				firstStart = seg.Start
				lastEnd = seg.End
				haveSegment = true
			} else {
				if seg.Start < firstStart {
					firstStart = seg.Start
				}
				if seg.End > lastEnd {
					lastEnd = seg.End
				}
				if gap := seg.Start - prevEnd; gap > 0 {
					report.PauseCount++
					report.TotalPauseTime += gap
					if gap > report.LongestPause {
						report.LongestPause = gap
					}
				}
			}
			prevEnd = seg.End

			if report.TotalSegments == 1 || dur > report.LongestSegmentLength {
				report.LongestSegmentLength = dur
			}
			if report.TotalSegments == 1 || dur < report.ShortestSegmentLength {
				report.ShortestSegmentLength = dur
			}
		}
	}

	if report.TotalSegments == 0 {
		return report
	}

	n := float64(report.TotalSegments)
	report.TotalDuration = lastEnd - firstStart
	report.MeanConfidence = confidenceSum / n
	report.HighConfidenceRatio = float64(highConfCount) / n
	report.HighBandRatio = float64(bandCounts[models.BandHigh]) / n
	report.MediumBandRatio = float64(bandCounts[models.BandMedium]) / n
	report.LowBandRatio = float64(bandCounts[models.BandLow]) / n
	report.AvgSegmentLength = report.SpeechTime / n

	if report.PauseCount > 0 {
		report.AvgPauseDuration = report.TotalPauseTime / float64(report.PauseCount)
	}
	if report.TotalDuration > 0 {
		report.SpeechRatio = report.SpeechTime / report.TotalDuration
	}
	if report.SpeechTime > 0 {
		rate := float64(report.TotalWords) / (report.SpeechTime / 60.0)
		report.WordsPerMinute = &rate
	}

	classifier := quality.NewClassifier(quality.Options{
		HighThreshold: opts.HighThreshold,
		LowThreshold:  opts.LowThreshold,
	})
	switch classifier.Band(report.MeanConfidence) {
	case models.BandHigh:
		report.AudioQuality = "High"
	case models.BandMedium:
		report.AudioQuality = "Medium"
	default:
		report.AudioQuality = "Low"
	}

	return report
}

// turnStats computes one per-turn metrics row. The speech rate is nil, not
// infinite, for zero-duration turns.
func turnStats(index int, turn models.Turn) models.TurnStats {
	row := models.TurnStats{
		Index:     index,
		Speaker:   turn.Speaker,
		Start:     turn.Start,
		End:       turn.End,
		Duration:  turn.Duration,
		WordCount: turn.WordCount,
	}
	if turn.Duration > 0 {
		rate := float64(turn.WordCount) / (turn.Duration / 60.0)
		row.WordsPerMinute = &rate
	}
	return row
}
