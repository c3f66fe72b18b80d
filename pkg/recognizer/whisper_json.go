package recognizer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/qc20/interview-transcriber/pkg/utils"
)

// whisperSegment mirrors one entry of a Whisper verbose-JSON result. The
// avg_logprob field is the log-probability confidence the classifier bands.
type whisperSegment struct {
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	AvgLogprob float64 `json:"avg_logprob"`
}

// whisperResult is the subset of the Whisper result file we consume.
type whisperResult struct {
	Language string           `json:"language"`
	Duration float64          `json:"duration"`
	Segments []whisperSegment `json:"segments"`
}

// FileRecognizer loads a Whisper verbose-JSON result file. It stands in for
// the live recognition stage: the upstream model already ran and left its
// result on disk.
type FileRecognizer struct {
	Path string
	Opts Options
}

// NewFileRecognizer creates a recognizer backed by a result file.
func NewFileRecognizer(path string, opts Options) *FileRecognizer {
	return &FileRecognizer{Path: path, Opts: opts}
}

// GetResult parses the result file into raw segments, preserving order.
func (r *FileRecognizer) GetResult(ctx context.Context, callback ProgressCallback) ([]RawSegment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if callback != nil {
		callback(0, "reading recognition result")
	}

	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recognition result: %w", err)
	}

	var result whisperResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse recognition result: %w", err)
	}

	if r.Opts.Language != "" && result.Language != "" && result.Language != r.Opts.Language {
		utils.Warn("recognition language %q differs from configured %q", result.Language, r.Opts.Language)
	}

	segments := make([]RawSegment, 0, len(result.Segments))
	for _, seg := range result.Segments {
		segments = append(segments, RawSegment{
			Text:       seg.Text,
			Start:      seg.Start,
			End:        seg.End,
			Confidence: seg.AvgLogprob,
		})
	}

	if callback != nil {
		callback(100, fmt.Sprintf("loaded %d segments", len(segments)))
	}

	utils.Debug("loaded %d segments from %s", len(segments), r.Path)
	return segments, nil
}
