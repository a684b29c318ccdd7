package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), date)
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, value := range []string{"01/01/2024", "2024-1-1", "yesterday", ""} {
		_, err := ParseDate(value)
		require.Error(t, err, "value %q", value)
	}
}

func TestFormatLogDate(t *testing.T) {
	date := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "Mon Jan 01 2024", FormatLogDate(date))
}

func TestFormatLogDateRoundTrip(t *testing.T) {
	date, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	require.Equal(t, "Thu Feb 29 2024", FormatLogDate(date))
}

func TestTodayIsMidnightUTC(t *testing.T) {
	today := Today()
	require.Equal(t, time.UTC, today.Location())
	require.Zero(t, today.Hour())
	require.Zero(t, today.Minute())
}
