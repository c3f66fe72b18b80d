package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qc20/interview-transcriber/pkg/models"
	"github.com/qc20/interview-transcriber/pkg/quality"
	"github.com/qc20/interview-transcriber/pkg/segmenter"
)

func buildTurns(t *testing.T, triples [][3]float64) []models.Turn {
	t.Helper()
	classifier := quality.NewClassifier(quality.DefaultOptions())
	segments := make([]models.AnnotatedSegment, 0, len(triples))
	for _, tr := range triples {
		seg, err := models.NewSegment("three short words", tr[0], tr[1], tr[2])
		assert.NoError(t, err)
		segments = append(segments, classifier.Classify(seg))
	}
	return segmenter.New(segmenter.DefaultOptions()).Segment(segments)
}

func TestAggregateEmpty(t *testing.T) {
	report := Aggregate(nil, DefaultOptions())

	assert.Equal(t, 0, report.TotalTurns)
	assert.Equal(t, 0, report.TotalSegments)
	assert.Equal(t, 0, report.TotalWords)
	assert.Equal(t, 0.0, report.TotalDuration)
	assert.Nil(t, report.WordsPerMinute)
	assert.Equal(t, "Unknown", report.AudioQuality)
	assert.Empty(t, report.Speakers)
	assert.Empty(t, report.Turns)
}

func TestAggregateBasicCounts(t *testing.T) {
	turns := buildTurns(t, [][3]float64{
		{0, 2, -0.3},
		{2.1, 4, -0.4},
		{6, 8, -2.0},
	})
	report := Aggregate(turns, DefaultOptions())

	assert.Equal(t, 2, report.TotalTurns)
	assert.Equal(t, 3, report.TotalSegments)
	assert.InDelta(t, 8.0, report.TotalDuration, 1e-9)
	assert.InDelta(t, 5.9, report.SpeechTime, 1e-9)

	// The LOW segment is unclear, so its words are excluded.
	assert.Equal(t, 6, report.TotalWords)
	assert.Equal(t, 1, report.UnclearSegments)
}

func TestMeanConfidenceIncludesUnclear(t *testing.T) {
	turns := buildTurns(t, [][3]float64{
		{0, 2, -0.3},
		{2.1, 4, -0.4},
		{6, 8, -2.0},
	})
	report := Aggregate(turns, DefaultOptions())

	// (-0.3 + -0.4 + -2.0) / 3 — the unclear segment counts.
	assert.InDelta(t, -0.9, report.MeanConfidence, 1e-9)
	assert.Equal(t, "Medium", report.AudioQuality)
}

func TestHighConfidenceRatio(t *testing.T) {
	turns := buildTurns(t, [][3]float64{
		{0, 2, -0.3},
		{2.1, 4, -0.4},
		{6, 8, -2.0},
	})
	report := Aggregate(turns, DefaultOptions())

	assert.InDelta(t, 2.0/3.0, report.HighConfidenceRatio, 1e-9)
	assert.InDelta(t, 2.0/3.0, report.HighBandRatio, 1e-9)
	assert.InDelta(t, 1.0/3.0, report.LowBandRatio, 1e-9)
}

func TestSpeakerTalkTimeRoundTrip(t *testing.T) {
	turns := buildTurns(t, [][3]float64{
		{0, 3, -0.3},
		{3.1, 5, -0.4},
		{7, 9, -0.5},
		{13, 15, -0.6},
	})
	report := Aggregate(turns, DefaultOptions())

	var speakerTotal, turnTotal float64
	for _, s := range report.Speakers {
		speakerTotal += s.TalkTime
	}
	for _, turn := range turns {
		turnTotal += turn.Duration
	}
	assert.InDelta(t, turnTotal, speakerTotal, 1e-9)
}

func TestPauseStatistics(t *testing.T) {
	turns := buildTurns(t, [][3]float64{
		{0, 2, -0.3},
		{2.5, 4, -0.3}, // gap 0.5
		{6, 8, -0.3},   // gap 2.0
	})
	report := Aggregate(turns, DefaultOptions())

	assert.Equal(t, 2, report.PauseCount)
	assert.InDelta(t, 2.5, report.TotalPauseTime, 1e-9)
	assert.InDelta(t, 1.25, report.AvgPauseDuration, 1e-9)
	assert.InDelta(t, 2.0, report.LongestPause, 1e-9)
	assert.InDelta(t, 5.5/8.0, report.SpeechRatio, 1e-9)
}

func TestZeroDurationTurnRateIsNil(t *testing.T) {
	// The aggregator is total over its input: a zero-duration turn reports
	// an undefined rate instead of dividing by zero.
	turn := models.Turn{
		Speaker:   models.SpeakerA,
		Start:     1.0,
		End:       1.0,
		Duration:  0,
		WordCount: 4,
	}
	report := Aggregate([]models.Turn{turn}, DefaultOptions())

	assert.Len(t, report.Turns, 1)
	assert.Nil(t, report.Turns[0].WordsPerMinute)
}

func TestPerTurnRates(t *testing.T) {
	turns := buildTurns(t, [][3]float64{{0, 3, -0.3}})
	report := Aggregate(turns, DefaultOptions())

	assert.Len(t, report.Turns, 1)
	row := report.Turns[0]
	assert.Equal(t, models.SpeakerA, row.Speaker)
	assert.NotNil(t, row.WordsPerMinute)
	assert.InDelta(t, 60.0, *row.WordsPerMinute, 1e-9) // 3 words in 3s
}

func TestAudioQualityLabels(t *testing.T) {
	cases := []struct {
		confidence float64
		label      string
	}{
		{-0.2, "High"},
		{-1.0, "Medium"},
		{-2.2, "Low"},
	}
	for _, tc := range cases {
		turns := buildTurns(t, [][3]float64{{0, 2, tc.confidence}})
		report := Aggregate(turns, DefaultOptions())
		assert.Equal(t, tc.label, report.AudioQuality)
	}
}

func TestSegmentLengthStats(t *testing.T) {
	turns := buildTurns(t, [][3]float64{
		{0, 1, -0.3},
		{1.1, 4.1, -0.3},
	})
	report := Aggregate(turns, DefaultOptions())

	assert.InDelta(t, 1.0, report.ShortestSegmentLength, 1e-9)
	assert.InDelta(t, 3.0, report.LongestSegmentLength, 1e-9)
	assert.InDelta(t, 2.0, report.AvgSegmentLength, 1e-9)
}
