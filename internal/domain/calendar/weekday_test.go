package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/siamhora/siamhora/pkg/errors"
)

func TestResolveStrict_KnownWeekday(t *testing.T) {
	res, err := ResolveStrict("27/10/2568", "", "")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, res.Weekday)
	assert.Equal(t, DefaultTimezone, res.Timezone)
	assert.Equal(t, 2025, res.Date.Year)
}

func TestResolveStrict_ExplicitTimeAndZone(t *testing.T) {
	res, err := ResolveStrict("01/01/2543", "23:30", "Asia/Tokyo")
	require.NoError(t, err)
	// 2000-01-01 was a Saturday in every timezone at a fixed wall clock.
	assert.Equal(t, time.Saturday, res.Weekday)
	assert.Equal(t, "Asia/Tokyo", res.Timezone)
	assert.Equal(t, 23, res.Time.Hour())
	assert.Equal(t, 30, res.Time.Minute())
}

func TestResolveStrict_BadTime(t *testing.T) {
	for _, bad := range []string{"25:00", "12:60", "noon", "7", "07:5"} {
		_, err := ResolveStrict("27/10/2568", bad, "")
		require.Error(t, err, bad)
		assert.Equal(t, apperrors.ErrCodeTimeFormatInvalid, apperrors.GetCode(err), bad)
	}
}

func TestResolveStrict_UnknownTimezone(t *testing.T) {
	_, err := ResolveStrict("27/10/2568", "08:00", "Mars/Olympus")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeTimezoneUnknown, apperrors.GetCode(err))
}

func TestResolveStrict_BadDatePropagates(t *testing.T) {
	_, err := ResolveStrict("", "08:00", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeDateEmpty, apperrors.GetCode(err))
}

func TestResolveWithFallback_BadTimeBecomesMidnight(t *testing.T) {
	res, err := ResolveWithFallback("27/10/2568", "not-a-time", "")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Time.Hour())
	assert.Equal(t, 0, res.Time.Minute())
	assert.Equal(t, time.Monday, res.Weekday)
}

func TestResolveWithFallback_UnknownZoneBecomesBangkok(t *testing.T) {
	res, err := ResolveWithFallback("27/10/2568", "08:00", "Nowhere/Void")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimezone, res.Timezone)
	assert.Equal(t, 8, res.Time.Hour())
}

func TestResolveWithFallback_BadDateStillFails(t *testing.T) {
	_, err := ResolveWithFallback("99/99/9999", "", "")
	assert.Error(t, err)
}

func TestParseTimeOfDay(t *testing.T) {
	h, m, err := ParseTimeOfDay("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, h)
	assert.Equal(t, 45, m)

	h, m, err = ParseTimeOfDay("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23, h)
	assert.Equal(t, 59, m)

	_, _, err = ParseTimeOfDay("24:00")
	assert.Error(t, err)
}

//Personal.AI order the ending
