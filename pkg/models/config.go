package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Config holds the full configuration surface of the tool. Thresholds are
// explicit parameters rather than process-wide constants so that independent
// runs stay reproducible and can execute in parallel.
type Config struct {
	InputFolder  string `json:"input_folder"`  // folder with recognition result files
	OutputFolder string `json:"output_folder"` // folder for rendered transcripts/reports

	// Segmenter thresholds, in seconds.
	SilenceThreshold   float64 `json:"silence_threshold"`    // minimum gap to consider a speaker switch
	MinSpeakerTime     float64 `json:"min_speaker_time"`     // minimum floor-holding time before a switch
	PauseThreshold     float64 `json:"pause_threshold"`      // gap that earns a [PAUSE] marker
	LongPauseThreshold float64 `json:"long_pause_threshold"` // gap always marked, switch or not

	// Classifier thresholds on the log-probability confidence score.
	HighConfidence   float64 `json:"high_confidence"`    // above this -> HIGH
	LowConfidence    float64 `json:"low_confidence"`     // at or below this -> LOW
	MinClearDuration float64 `json:"min_clear_duration"` // shorter segments are flagged unclear

	// MinConfidence, when set, drops segments below the cutoff before
	// classification. Nil means no dropping.
	MinConfidence *float64 `json:"min_confidence"`

	// StrictSegments aborts the run on the first invalid segment instead of
	// skipping it with a warning.
	StrictSegments bool `json:"strict_segments"`

	// SpeakerNames maps the segmenter's labels onto display roles, applied
	// only at render time (e.g. SPEAKER_A -> INTERVIEWER).
	SpeakerNames map[string]string `json:"speaker_names"`

	// Pass-through recognition settings, opaque to the core.
	Language         string `json:"language"`
	InterviewContext string `json:"interview_context"`

	ExportText bool   `json:"export_text"`
	ExportJSON bool   `json:"export_json"`
	WatchMode  bool   `json:"watch_mode"`
	LogLevel   string `json:"log_level"`
	LogFile    string `json:"log_file"`
}

// ConfigValidationError reports a config field that failed validation.
type ConfigValidationError struct {
	Field   string
	Message string
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s - %s", e.Field, e.Message)
}

// NewDefaultConfig returns the documented defaults.
func NewDefaultConfig() *Config {
	return &Config{
		InputFolder:        "./recognitions",
		OutputFolder:       "./transcripts",
		SilenceThreshold:   1.2,
		MinSpeakerTime:     4.0,
		PauseThreshold:     1.0,
		LongPauseThreshold: 3.0,
		HighConfidence:     -0.5,
		LowConfidence:      -1.5,
		MinClearDuration:   0.3,
		MinConfidence:      nil,
		StrictSegments:     false,
		SpeakerNames: map[string]string{
			SpeakerA: "INTERVIEWER",
			SpeakerB: "PARTICIPANT",
		},
		Language:   "en",
		ExportText: true,
		ExportJSON: true,
		WatchMode:  false,
		LogLevel:   "INFO",
		LogFile:    "",
	}
}

// Validate checks threshold sanity. Folders are created on demand by the
// exporters, so only values are validated here.
func (c *Config) Validate() error {
	if c.SilenceThreshold <= 0 {
		return &ConfigValidationError{"SilenceThreshold", "must be positive"}
	}
	if c.MinSpeakerTime < 0 {
		return &ConfigValidationError{"MinSpeakerTime", "must not be negative"}
	}
	if c.PauseThreshold <= 0 {
		return &ConfigValidationError{"PauseThreshold", "must be positive"}
	}
	if c.LongPauseThreshold < c.PauseThreshold {
		return &ConfigValidationError{"LongPauseThreshold", "must not be below PauseThreshold"}
	}
	if c.HighConfidence <= c.LowConfidence {
		return &ConfigValidationError{"HighConfidence", "must be above LowConfidence"}
	}
	if c.MinClearDuration < 0 {
		return &ConfigValidationError{"MinClearDuration", "must not be negative"}
	}
	return nil
}

// LoadFromFile loads and validates configuration from a JSON file.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("failed to read config file: %v", err)
		return err
	}

	if err := json.Unmarshal(data, c); err != nil {
		logrus.Errorf("failed to parse config file: %v", err)
		return err
	}

	if err := c.Validate(); err != nil {
		logrus.Errorf("config validation failed: %v", err)
		return err
	}

	return nil
}

// SaveToFile writes the configuration as indented JSON.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logrus.Errorf("failed to create config directory: %v", err)
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		logrus.Errorf("failed to serialize config: %v", err)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		logrus.Errorf("failed to write config file: %v", err)
		return err
	}

	return nil
}

// Update applies a batch of field updates, rolling back on any error.
// The map keys are the JSON tag names.
func (c *Config) Update(updates map[string]interface{}) error {
	tempConfig := *c

	updateBytes, err := json.Marshal(updates)
	if err != nil {
		logrus.Errorf("failed to serialize updates: %v", err)
		return err
	}

	if err := json.Unmarshal(updateBytes, c); err != nil {
		*c = tempConfig
		logrus.Errorf("failed to apply config updates: %v", err)
		return err
	}

	if err := c.Validate(); err != nil {
		*c = tempConfig
		logrus.Errorf("config validation failed: %v", err)
		return err
	}

	return nil
}

// Reset restores the default configuration.
func (c *Config) Reset() {
	*c = *NewDefaultConfig()
}
