package calendar

import (
	"regexp"
	"strconv"
	"time"

	apperrors "github.com/siamhora/siamhora/pkg/errors"
)

// DefaultTimezone is used when a caller does not supply a timezone.
const DefaultTimezone = "Asia/Bangkok"

// DefaultTimeOfDay is used when a caller does not supply a birth time.
const DefaultTimeOfDay = "00:00"

// timeOfDayPattern matches a strict 24-hour HH:MM string.
var timeOfDayPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// Resolution is a fully resolved calendar moment: the normalized date
// anchored to a wall-clock time in a timezone, plus its weekday.
type Resolution struct {
	Date     NormalizedDate
	Time     time.Time
	Weekday  time.Weekday
	Timezone string
}

// ParseTimeOfDay parses a strict HH:MM string into hour and minute.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, apperrors.Newf(apperrors.ErrCodeTimeFormatInvalid,
			"time %q is not in HH:MM format", s)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, nil
}

// ResolveStrict resolves a raw date string to its weekday, rejecting
// malformed time strings and unknown timezones.  Empty timeOfDay and tz
// fall back to the package defaults before validation.
func ResolveStrict(rawDate, timeOfDay, tz string) (Resolution, error) {
	date, err := NormalizeDate(rawDate)
	if err != nil {
		return Resolution{}, err
	}

	if timeOfDay == "" {
		timeOfDay = DefaultTimeOfDay
	}
	hour, minute, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return Resolution{}, err
	}

	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Resolution{}, apperrors.Newf(apperrors.ErrCodeTimezoneUnknown,
			"unknown timezone %q", tz)
	}

	t := time.Date(date.Year, time.Month(date.Month), date.Day, hour, minute, 0, 0, loc)
	return Resolution{
		Date:     date,
		Time:     t,
		Weekday:  t.Weekday(),
		Timezone: tz,
	}, nil
}

// ResolveWithFallback resolves a raw date string to its weekday, silently
// substituting defaults for a malformed time ("00:00") or unknown timezone
// (Asia/Bangkok).  Only the date itself can produce an error.
func ResolveWithFallback(rawDate, timeOfDay, tz string) (Resolution, error) {
	date, err := NormalizeDate(rawDate)
	if err != nil {
		return Resolution{}, err
	}

	hour, minute := 0, 0
	if timeOfDay != "" {
		if h, m, perr := ParseTimeOfDay(timeOfDay); perr == nil {
			hour, minute = h, m
		}
	}

	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		tz = DefaultTimezone
		loc, _ = time.LoadLocation(DefaultTimezone)
	}

	t := time.Date(date.Year, time.Month(date.Month), date.Day, hour, minute, 0, 0, loc)
	return Resolution{
		Date:     date,
		Time:     t,
		Weekday:  t.Weekday(),
		Timezone: tz,
	}, nil
}

//Personal.AI order the ending
