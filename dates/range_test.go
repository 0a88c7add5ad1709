package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDays(t *testing.T) {
	t.Run("inclusive span", func(t *testing.T) {
		days, err := Days(FromISO("2024-03-01"), FromISO("2024-03-03"))
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, days)
	})

	t.Run("same day yields one element", func(t *testing.T) {
		days, err := Days(FromISO("2024-03-01"), FromISO("2024-03-01"))
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-03-01"}, days)
	})

	t.Run("start after end yields empty", func(t *testing.T) {
		days, err := Days(FromISO("2024-03-03"), FromISO("2024-03-01"))
		require.NoError(t, err)
		assert.Empty(t, days)
	})

	t.Run("mid-day endpoints are widened to whole days", func(t *testing.T) {
		days, err := Days(FromISO("2024-03-01T22:45:00Z"), FromISO("2024-03-02T00:15:00Z"))
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, days)
	})

	t.Run("month boundary", func(t *testing.T) {
		days, err := Days(FromISO("2024-02-28"), FromISO("2024-03-01"))
		require.NoError(t, err)
		// 2024 is a leap year.
		assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"}, days)
	})

	t.Run("epoch endpoints", func(t *testing.T) {
		days, err := Days(FromEpoch(1709251200), FromEpoch(1709424000)) // 2024-03-01 .. 2024-03-03 UTC
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, days)
	})

	t.Run("unsupported input errors", func(t *testing.T) {
		_, err := Days(Input{}, FromISO("2024-03-01"))
		assert.ErrorIs(t, err, ErrUnsupportedInput)
	})
}
