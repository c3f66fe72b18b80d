package utils

import (
	"fmt"
	"time"
)

// ErrorHandler retries flaky operations and keeps per-operation error counts.
// Watch mode uses it for result files that are still being written when the
// filesystem event fires.
type ErrorHandler struct {
	MaxRetries int
	RetryDelay float64
	ErrorStats map[string]map[string]int // operation -> error message -> count
}

// NewErrorHandler creates a handler with the given retry budget and base
// delay in seconds. The delay grows linearly with each attempt.
func NewErrorHandler(maxRetries int, retryDelay float64) *ErrorHandler {
	return &ErrorHandler{
		MaxRetries: maxRetries,
		RetryDelay: retryDelay,
		ErrorStats: make(map[string]map[string]int),
	}
}

// Retry runs fn, retrying on failure up to MaxRetries attempts.
func (h *ErrorHandler) Retry(operation string, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt < h.MaxRetries; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		h.updateErrorStats(operation, err.Error())

		if attempt < h.MaxRetries-1 {
			delay := h.RetryDelay * float64(attempt+1)
			Warn("operation %s failed (attempt %d/%d): %s", operation, attempt+1, h.MaxRetries, err)
			Warn("retrying in %.1f seconds...", delay)
			time.Sleep(time.Duration(delay * float64(time.Second)))
		}
	}

	return fmt.Errorf("operation %s still failing after %d retries: %w", operation, h.MaxRetries, lastErr)
}

func (h *ErrorHandler) updateErrorStats(operation string, errMsg string) {
	if h.ErrorStats[operation] == nil {
		h.ErrorStats[operation] = make(map[string]int)
	}
	h.ErrorStats[operation][errMsg]++
}

// GetErrorStats returns the accumulated error counts.
func (h *ErrorHandler) GetErrorStats() map[string]map[string]int {
	return h.ErrorStats
}
