package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

	t.Run("today", func(t *testing.T) {
		rng, err := ResolvePeriod(PeriodToday, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), rng.Start)
		assert.Equal(t, now, rng.End)
		assert.Equal(t, 1, rng.Days)
	})

	t.Run("week", func(t *testing.T) {
		rng, err := ResolvePeriod(PeriodWeek, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), rng.Start)
		assert.Equal(t, now, rng.End)
		assert.Equal(t, 7, rng.Days)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ResolvePeriod(Period("month"), now)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := ResolvePeriod(Period(""), now)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}
