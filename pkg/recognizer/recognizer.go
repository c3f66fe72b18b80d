// Package recognizer is the seam to the external speech-recognition
// collaborator. The core never runs recognition itself; it consumes an
// ordered sequence of raw segments from whatever produced them.
package recognizer

import "context"

// RawSegment is one recognition result unit, before any validation.
type RawSegment struct {
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
}

// ProgressCallback reports recognition/loading progress.
type ProgressCallback func(percent int, message string)

// Recognizer produces the ordered raw segment sequence for one audio source.
type Recognizer interface {
	// GetResult returns the raw segments in non-decreasing start order.
	GetResult(ctx context.Context, callback ProgressCallback) ([]RawSegment, error)
}

// Options are pass-through recognition settings. They influence recognition
// quality upstream but are opaque to the post-processing core.
type Options struct {
	Language string // language code, e.g. "en", "da"
	Context  string // free-text interview context fed to the model
}
