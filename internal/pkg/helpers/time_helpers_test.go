package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, time.Hour, ParseDuration("1h", time.Minute))
	assert.Equal(t, 30*time.Minute, ParseDuration("30m", time.Hour))
	assert.Equal(t, 720*time.Hour, ParseDuration("720h", time.Hour))
}

func TestParseDurationInvalid(t *testing.T) {
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
	assert.Equal(t, 15*time.Minute, ParseDuration("not-a-duration", 15*time.Minute))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-01-10")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 10, parsed.Day())

	_, err = ParseDate("10/01/2026")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, 9, 1, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "2026-09-01", FormatDate(ts))
}
