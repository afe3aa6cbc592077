package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astroportal/internal/models/db_models"
)

func TestValidityWindow(t *testing.T) {
	// Mid-afternoon in Warsaw; the window must start at local midnight.
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, plLoc)
	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, plLoc).Unix()

	cases := []struct {
		category db_models.HoroscopeType
		end      time.Time
	}{
		{db_models.HoroscopeDaily, time.Date(2026, 3, 11, 0, 0, 0, 0, plLoc)},
		{db_models.HoroscopeWeekly, time.Date(2026, 3, 17, 0, 0, 0, 0, plLoc)},
		{db_models.HoroscopeMonthly, time.Date(2026, 4, 10, 0, 0, 0, 0, plLoc)},
		{db_models.HoroscopeYearly, time.Date(2027, 3, 10, 0, 0, 0, 0, plLoc)},
	}
	for _, c := range cases {
		from, to := ValidityWindow(c.category, now)
		assert.Equal(t, dayStart, from, c.category)
		require.NotNil(t, to, c.category)
		assert.Equal(t, c.end.Unix(), *to, c.category)
	}
}

func TestValidityWindow_LifetimeIsOpenEnded(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, plLoc)

	from, to := ValidityWindow(db_models.HoroscopeLifetime, now)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, plLoc).Unix(), from)
	assert.Nil(t, to)
}

func TestValidityWindow_DailyAcrossDSTChange(t *testing.T) {
	// Clocks spring forward in Poland on 2026-03-29; the daily window is
	// 23 hours long but still ends at the next local midnight.
	now := time.Date(2026, 3, 29, 1, 0, 0, 0, plLoc)

	from, to := ValidityWindow(db_models.HoroscopeDaily, now)
	require.NotNil(t, to)
	assert.Equal(t, time.Date(2026, 3, 29, 0, 0, 0, 0, plLoc).Unix(), from)
	assert.Equal(t, time.Date(2026, 3, 30, 0, 0, 0, 0, plLoc).Unix(), *to)
}

func TestFromUnixSeconds(t *testing.T) {
	assert.True(t, FromUnixSeconds(0).IsZero())
	assert.True(t, FromUnixSeconds(-5).IsZero())

	ts := time.Date(2026, 6, 1, 12, 0, 0, 0, plLoc)
	assert.True(t, ts.Equal(FromUnixSeconds(ts.Unix())))
}

func TestFormatRFC3339(t *testing.T) {
	assert.Empty(t, FormatRFC3339(time.Time{}))

	ts := time.Date(2026, 6, 1, 12, 0, 0, 0, plLoc)
	assert.Equal(t, "2026-06-01T12:00:00+02:00", FormatRFC3339(ts))
}
