package models

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, 1.2, config.SilenceThreshold)
	assert.Equal(t, 4.0, config.MinSpeakerTime)
	assert.Equal(t, 1.0, config.PauseThreshold)
	assert.Equal(t, 3.0, config.LongPauseThreshold)
	assert.Equal(t, -0.5, config.HighConfidence)
	assert.Equal(t, -1.5, config.LowConfidence)
	assert.Equal(t, 0.3, config.MinClearDuration)
	assert.Nil(t, config.MinConfidence)
	assert.False(t, config.StrictSegments)
	assert.Equal(t, "INTERVIEWER", config.SpeakerNames[SpeakerA])
	assert.Equal(t, "PARTICIPANT", config.SpeakerNames[SpeakerB])
	assert.True(t, config.ExportText)
}

func TestConfigValidate(t *testing.T) {
	config := NewDefaultConfig()
	assert.NoError(t, config.Validate())

	config.SilenceThreshold = 0
	err := config.Validate()
	assert.Error(t, err)
	configErr, ok := err.(*ConfigValidationError)
	assert.True(t, ok)
	assert.Equal(t, "SilenceThreshold", configErr.Field)

	config.SilenceThreshold = 1.2
	config.HighConfidence = -2.0 // below LowConfidence
	err = config.Validate()
	assert.Error(t, err)
	configErr, ok = err.(*ConfigValidationError)
	assert.True(t, ok)
	assert.Equal(t, "HighConfidence", configErr.Field)

	config.HighConfidence = -0.5
	config.LongPauseThreshold = 0.5 // below PauseThreshold
	err = config.Validate()
	assert.Error(t, err)
	configErr, ok = err.(*ConfigValidationError)
	assert.True(t, ok)
	assert.Equal(t, "LongPauseThreshold", configErr.Field)
}

func TestConfigSaveAndLoad(t *testing.T) {
	tempFile := "./test_config.json"
	defer os.Remove(tempFile)

	cutoff := -1.8
	originalConfig := NewDefaultConfig()
	originalConfig.SilenceThreshold = 1.5
	originalConfig.MinConfidence = &cutoff
	originalConfig.Language = "da"

	err := originalConfig.SaveToFile(tempFile)
	assert.NoError(t, err)

	loadedConfig := NewDefaultConfig()
	err = loadedConfig.LoadFromFile(tempFile)
	assert.NoError(t, err)

	assert.Equal(t, originalConfig.SilenceThreshold, loadedConfig.SilenceThreshold)
	assert.NotNil(t, loadedConfig.MinConfidence)
	assert.Equal(t, cutoff, *loadedConfig.MinConfidence)
	assert.Equal(t, "da", loadedConfig.Language)
}

func TestConfigUpdate(t *testing.T) {
	config := NewDefaultConfig()

	updates := map[string]interface{}{
		"silence_threshold": 2.0,
		"min_speaker_time":  6.0,
		"watch_mode":        true,
	}

	err := config.Update(updates)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, config.SilenceThreshold)
	assert.Equal(t, 6.0, config.MinSpeakerTime)
	assert.True(t, config.WatchMode)

	// Invalid update rolls back.
	invalidUpdates := map[string]interface{}{
		"silence_threshold": -1.0,
	}

	err = config.Update(invalidUpdates)
	assert.Error(t, err)
	assert.Equal(t, 2.0, config.SilenceThreshold)
}

func TestConfigReset(t *testing.T) {
	config := NewDefaultConfig()
	config.SilenceThreshold = 5.0
	config.WatchMode = true

	config.Reset()

	assert.Equal(t, 1.2, config.SilenceThreshold)
	assert.False(t, config.WatchMode)
}
