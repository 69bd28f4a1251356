package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 24*time.Hour, ParseDuration("24h", time.Hour))
	assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}

func TestParseDeadline(t *testing.T) {
	got, err := ParseDeadline("2026-12-31T18:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 31, 18, 0, 0, 0, time.UTC), got)

	got, err = ParseDeadline("2026-12-31")
	assert.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.December, got.Month())

	_, err = ParseDeadline("next friday")
	assert.Error(t, err)
}
