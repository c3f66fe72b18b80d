// Package segmenter assigns speaker labels to an ordered segment stream and
// groups consecutive same-speaker segments into turns.
//
// The heuristic is timing-only: a speaker switch needs both a long enough
// silence gap before the segment and a long enough floor-holding time for the
// current speaker. Exactly two labels are produced; mapping them onto
// interviewer/participant roles happens downstream.
package segmenter

import (
	"github.com/sirupsen/logrus"

	"github.com/qc20/interview-transcriber/pkg/models"
)

// Options are the timing thresholds, in seconds. A gap exactly equal to a
// threshold counts as meeting it.
type Options struct {
	// SilenceThreshold is the minimum gap between segments required to
	// consider a speaker switch.
	SilenceThreshold float64
	// MinSpeakerTime is the minimum time a speaker must hold the floor
	// before a later silence can trigger a switch. The timer resets only on
	// an actual switch, so several long silences in a row cannot cause
	// rapid oscillation.
	MinSpeakerTime float64
	// PauseThreshold is the gap that earns a segment its pause marker.
	PauseThreshold float64
	// LongPauseThreshold marks a segment regardless of anything else.
	LongPauseThreshold float64
}

// DefaultOptions returns the documented default thresholds.
func DefaultOptions() Options {
	return Options{
		SilenceThreshold:   1.2,
		MinSpeakerTime:     4.0,
		PauseThreshold:     1.0,
		LongPauseThreshold: 3.0,
	}
}

// OptionsFromConfig builds segmenter options from the tool configuration.
func OptionsFromConfig(cfg *models.Config) Options {
	return Options{
		SilenceThreshold:   cfg.SilenceThreshold,
		MinSpeakerTime:     cfg.MinSpeakerTime,
		PauseThreshold:     cfg.PauseThreshold,
		LongPauseThreshold: cfg.LongPauseThreshold,
	}
}

// Segmenter runs the speaker-turn state machine. It holds no state between
// calls; each Segment call is a pure function of its input and the options.
type Segmenter struct {
	opts Options
}

// New creates a segmenter with the given thresholds.
func New(opts Options) *Segmenter {
	return &Segmenter{opts: opts}
}

// speakerState is the per-pass mutable state. Initialized before the first
// segment, updated once per segment, discarded when the pass completes.
type speakerState struct {
	current  string  // current speaker label
	lastEnd  float64 // end time of the previous segment
	heldTime float64 // accumulated floor time since the last switch
}

func otherSpeaker(label string) string {
	if label == models.SpeakerA {
		return models.SpeakerB
	}
	return models.SpeakerA
}

// Segment assigns a speaker label to every segment and groups them into
// turns. The output covers every input segment exactly once, in original
// order. The first segment always opens SPEAKER_A's first turn.
func (s *Segmenter) Segment(segments []models.AnnotatedSegment) []models.Turn {
	if len(segments) == 0 {
		return nil
	}

	state := speakerState{current: models.SpeakerA}
	var turns []models.Turn
	var open []models.AnnotatedSegment

	for i, seg := range segments {
		gap := 0.0
		if i > 0 {
			gap = seg.Start - state.lastEnd
		}

		// Switch decision uses the floor time accumulated BEFORE this
		// segment. Ties meet the thresholds.
		if i > 0 && gap >= s.opts.SilenceThreshold && state.heldTime >= s.opts.MinSpeakerTime {
			logrus.Debugf("speaker switch at %.2fs: gap=%.2fs held=%.2fs", seg.Start, gap, state.heldTime)
			turns = append(turns, sealTurn(state.current, open))
			open = nil
			state.current = otherSpeaker(state.current)
			state.heldTime = 0
		} else {
			state.heldTime += seg.Duration() + gap
		}

		// Pauses are recorded even without a speaker change.
		if gap >= s.opts.PauseThreshold || gap >= s.opts.LongPauseThreshold {
			seg.IsPauseMarker = true
		}

		open = append(open, seg)
		state.lastEnd = seg.End
	}

	turns = append(turns, sealTurn(state.current, open))
	return turns
}

// sealTurn closes a turn and computes its derived fields. Start and End are
// the min/max over members; segments may overlap, so End is not necessarily
// the last member's. WordCount counts only words of non-unclear members,
// matching what a renderer would print.
func sealTurn(speaker string, segments []models.AnnotatedSegment) models.Turn {
	turn := models.Turn{
		Speaker:  speaker,
		Segments: segments,
		Start:    segments[0].Start,
		End:      segments[0].End,
	}
	for _, seg := range segments {
		if seg.Start < turn.Start {
			turn.Start = seg.Start
		}
		if seg.End > turn.End {
			turn.End = seg.End
		}
		if !seg.Unclear {
			turn.WordCount += seg.WordCount()
		}
	}
	turn.Duration = turn.End - turn.Start
	return turn
}
