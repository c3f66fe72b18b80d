package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSegment(t *testing.T) {
	seg, err := NewSegment("  hello world  ", 1.0, 2.5, -0.4)
	assert.NoError(t, err)
	assert.Equal(t, "hello world", seg.Text)
	assert.Equal(t, 1.0, seg.Start)
	assert.Equal(t, 2.5, seg.End)
	assert.Equal(t, -0.4, seg.Confidence)
	assert.InDelta(t, 1.5, seg.Duration(), 1e-9)
	assert.Equal(t, 2, seg.WordCount())
}

func TestNewSegmentEmptyText(t *testing.T) {
	_, err := NewSegment("   ", 0, 1, -0.2)
	assert.Error(t, err)

	// Empty text is a drop-silently case, signalled via the sentinel.
	assert.True(t, errors.Is(err, ErrEmptyText))

	var segErr *InvalidSegmentError
	assert.True(t, errors.As(err, &segErr))
	assert.Equal(t, "text", segErr.Field)
}

func TestNewSegmentInvalidTiming(t *testing.T) {
	var segErr *InvalidSegmentError

	// start >= end
	_, err := NewSegment("text", 2.0, 2.0, -0.2)
	assert.Error(t, err)
	assert.True(t, errors.As(err, &segErr))
	assert.Equal(t, "end", segErr.Field)
	assert.False(t, errors.Is(err, ErrEmptyText))

	// negative start
	_, err = NewSegment("text", -0.1, 1.0, -0.2)
	assert.Error(t, err)
	assert.True(t, errors.As(err, &segErr))
	assert.Equal(t, "start", segErr.Field)
}

func TestAnnotatedSegmentRenderText(t *testing.T) {
	seg, err := NewSegment("clear enough", 0, 2, -0.3)
	assert.NoError(t, err)

	clear := AnnotatedSegment{Segment: seg, Band: BandHigh}
	assert.Equal(t, "clear enough", clear.RenderText())

	unclear := AnnotatedSegment{Segment: seg, Band: BandLow, Unclear: true}
	assert.Equal(t, UnclearMarker, unclear.RenderText())
}
