package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	ts := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-28T09:30:00Z", FormatTimeForDB(ts))
}

func TestFormatTimePtrForDB(t *testing.T) {
	assert.Nil(t, FormatTimePtrForDB(nil))

	ts := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-28T09:30:00Z", FormatTimePtrForDB(&ts))
}

func TestParseTimeFromDB_RoundTrip(t *testing.T) {
	ts := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

	parsed, err := ParseTimeFromDB(FormatTimeForDB(ts))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestParseTimeFromDB_Invalid(t *testing.T) {
	_, err := ParseTimeFromDB("2026-08-28 09:30:00")
	assert.Error(t, err)
}
