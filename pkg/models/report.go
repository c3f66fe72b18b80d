package models

// TurnStats carries the per-turn metrics computed by the aggregator.
// WordsPerMinute is nil when the turn has zero duration.
type TurnStats struct {
	Index          int      `json:"index"`
	Speaker        string   `json:"speaker"`
	Start          float64  `json:"start"`
	End            float64  `json:"end"`
	Duration       float64  `json:"duration"`
	WordCount      int      `json:"word_count"`
	WordsPerMinute *float64 `json:"words_per_minute"`
}

// SpeakerStats aggregates one speaker's share of the conversation.
type SpeakerStats struct {
	TurnCount int     `json:"turn_count"`
	TalkTime  float64 `json:"talk_time"`
	WordCount int     `json:"word_count"`
}

// Report is the aggregate statistics object for one transcription run.
// Created once per run, immutable thereafter.
//
// MeanConfidence is the arithmetic mean over ALL segments, unclear ones
// included. PauseCount and the pause durations count every strictly positive
// gap between consecutive segments; pause MARKERS on segments use the
// configured thresholds and are a separate concept.
type Report struct {
	TotalTurns    int     `json:"total_turns"`
	TotalSegments int     `json:"total_segments"`
	TotalWords    int     `json:"total_words"`
	TotalDuration float64 `json:"total_duration"` // span from first start to last end
	SpeechTime    float64 `json:"speech_time"`    // sum of segment durations
	SpeechRatio   float64 `json:"speech_ratio"`   // speech time / total duration, 0 when empty

	MeanConfidence      float64 `json:"mean_confidence"`
	HighConfidenceRatio float64 `json:"high_confidence_ratio"`
	HighBandRatio       float64 `json:"high_band_ratio"`
	MediumBandRatio     float64 `json:"medium_band_ratio"`
	LowBandRatio        float64 `json:"low_band_ratio"`
	AudioQuality        string  `json:"audio_quality"` // High/Medium/Low, Unknown when empty

	WordsPerMinute *float64 `json:"words_per_minute"` // corpus rate, nil when no speech time

	AvgSegmentLength      float64 `json:"avg_segment_length"`
	LongestSegmentLength  float64 `json:"longest_segment_length"`
	ShortestSegmentLength float64 `json:"shortest_segment_length"`

	PauseCount       int     `json:"pause_count"`
	TotalPauseTime   float64 `json:"total_pause_time"`
	AvgPauseDuration float64 `json:"avg_pause_duration"`
	LongestPause     float64 `json:"longest_pause"`
	UnclearSegments  int     `json:"unclear_segments"`
	PauseMarkedSegs  int     `json:"pause_marked_segments"`

	Speakers map[string]SpeakerStats `json:"speakers"`
	Turns    []TurnStats             `json:"turns"`
}
