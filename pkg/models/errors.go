package models

import (
	"errors"
	"fmt"
)

// ErrEmptyText marks a segment whose text vanished after trimming. Callers
// drop such segments silently instead of reporting them.
var ErrEmptyText = errors.New("segment text is empty")

// InvalidSegmentError reports a segment that failed construction. It is fatal
// to that single segment; whether the whole run aborts is the caller's call.
type InvalidSegmentError struct {
	Field   string
	Message string
	cause   error
}

func (e *InvalidSegmentError) Error() string {
	return fmt.Sprintf("invalid segment: %s - %s", e.Field, e.Message)
}

func (e *InvalidSegmentError) Unwrap() error {
	return e.cause
}
