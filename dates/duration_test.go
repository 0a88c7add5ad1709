package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	t.Run("hours and minutes", func(t *testing.T) {
		d, err := Diff(FromISO("2024-01-01T23:00:00Z"), FromISO("2024-01-02T01:30:00Z"), "UTC")
		require.NoError(t, err)
		assert.Equal(t, int64(2), d.Hours)
		assert.InDelta(t, 30.0, d.Minutes, 1e-9)
	})

	t.Run("negative when end precedes start", func(t *testing.T) {
		d, err := Diff(FromISO("2024-01-02T01:30:00Z"), FromISO("2024-01-01T23:00:00Z"), "UTC")
		require.NoError(t, err)
		assert.Equal(t, int64(-2), d.Hours)
		assert.InDelta(t, -30.0, d.Minutes, 1e-9)
	})

	t.Run("sub-hour difference keeps hours at zero", func(t *testing.T) {
		d, err := Diff(FromISO("2024-01-01T10:00:00Z"), FromISO("2024-01-01T10:45:00Z"), "UTC")
		require.NoError(t, err)
		assert.Equal(t, int64(0), d.Hours)
		assert.InDelta(t, 45.0, d.Minutes, 1e-9)
	})

	t.Run("zone does not change the elapsed time", func(t *testing.T) {
		d, err := Diff(FromISO("2024-01-01T23:00:00Z"), FromISO("2024-01-02T01:30:00Z"), "America/New_York")
		require.NoError(t, err)
		assert.Equal(t, int64(2), d.Hours)
		assert.InDelta(t, 30.0, d.Minutes, 1e-9)
	})

	t.Run("mixed input kinds", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
		d, err := Diff(FromTime(start), FromEpoch(start.Add(90*time.Minute).Unix()), "UTC")
		require.NoError(t, err)
		assert.Equal(t, int64(1), d.Hours)
		assert.InDelta(t, 30.0, d.Minutes, 1e-9)
	})

	t.Run("invalid zone errors", func(t *testing.T) {
		_, err := Diff(FromISO("2024-01-01T23:00:00Z"), FromISO("2024-01-02T01:30:00Z"), "Nowhere/Void")
		assert.Error(t, err)
	})

	t.Run("unsupported input errors", func(t *testing.T) {
		_, err := Diff(Input{}, FromISO("2024-01-02T01:30:00Z"), "UTC")
		assert.ErrorIs(t, err, ErrUnsupportedInput)
	})
}
