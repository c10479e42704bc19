package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShowTime(t *testing.T) {
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	got, err := ParseShowTime("2035-04-01T22:00:00+02:00")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
	assert.Equal(t, time.UTC, got.Location())

	got, err = ParseShowTime("2035-04-01 20:00:00")
	require.NoError(t, err)
	assert.True(t, want.Equal(got))

	_, err = ParseShowTime("next tuesday")
	assert.Error(t, err)
}

func TestFormatShowTime(t *testing.T) {
	assert.Equal(t, "", FormatShowTime(time.Time{}))
	assert.Equal(t, "2035-04-01T20:00:00Z", FormatShowTime(time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)))
}

func TestIsUpcoming(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsUpcoming(now, now))
	assert.True(t, IsUpcoming(now.Add(time.Minute), now))
	assert.False(t, IsUpcoming(now.Add(-time.Minute), now))
}
