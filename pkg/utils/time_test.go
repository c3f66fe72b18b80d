package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "00:00", FormatTimestamp(0))
	assert.Equal(t, "00:59", FormatTimestamp(59.9))
	assert.Equal(t, "02:05", FormatTimestamp(125))
	assert.Equal(t, "75:00", FormatTimestamp(4500)) // MM:SS keeps counting minutes
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:42", FormatDuration(42))
	assert.Equal(t, "12:03", FormatDuration(723))
	assert.Equal(t, "01:00:05", FormatDuration(3605))
}

func TestFormatTimeDuration(t *testing.T) {
	assert.Equal(t, "5s", FormatTimeDuration(5))
	assert.Equal(t, "2m 10s", FormatTimeDuration(130))
	assert.Equal(t, "1h 0m 1s", FormatTimeDuration(3601))
}
