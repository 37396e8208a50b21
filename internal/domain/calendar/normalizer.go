// Package calendar implements Thai dual-calendar date handling: parsing of
// loosely formatted Buddhist-Era and Common-Era date strings, weekday
// resolution in arbitrary timezones, and Thai-language rendering of dates.
package calendar

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/siamhora/siamhora/pkg/errors"
)

// Calendar year ranges accepted by the normalizer.  Values outside both
// windows are rejected as neither a plausible CE nor BE year.
const (
	MinCEYear = 1800
	MaxCEYear = 2100
	MinBEYear = 2400
	MaxBEYear = 2700

	// BEOffset is the difference between a Buddhist-Era year and the
	// corresponding Common-Era year.
	BEOffset = 543

	// twoDigitBEBase promotes a 2-digit year to a full Buddhist-Era year,
	// e.g. "68" becomes 2568.
	twoDigitBEBase = 2500

	// maxSafeDay is the day-of-month that every month of every year has.
	// Out-of-range day values are clamped to it rather than rejected.
	maxSafeDay = 28
)

// System identifies which calendar the raw input was written in.
type System string

const (
	SystemGregorian System = "gregorian"
	SystemBuddhist  System = "buddhist"
)

// NormalizedDate is the result of parsing a raw date string.  Year is always
// Common Era regardless of the input's calendar.
type NormalizedDate struct {
	Year     int    // CE year
	Month    int    // 1..12
	Day      int    // 1..31, clamped when the raw value was impossible
	Calendar System // calendar the input was written in
}

// YearBE returns the Buddhist-Era rendering of the year.
func (d NormalizedDate) YearBE() int {
	return d.Year + BEOffset
}

// ISO renders the date as an ISO-8601 Gregorian date string.
func (d NormalizedDate) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// separatorReplacer collapses the accepted separator characters into "/".
var separatorReplacer = strings.NewReplacer("-", "/", ".", "/", " ", "/")

// NormalizeDate parses a loosely formatted date string into a NormalizedDate.
//
// Accepted separators are "/", "-", "." and space.  If the first numeric
// group has four digits the layout is year/month/day, otherwise it is
// day/month/year.  A 2-digit year is promoted to a Buddhist-Era year by
// adding 2500.  Years in [2400, 2700] are treated as Buddhist Era and
// converted to Common Era by subtracting 543; years in [1800, 2100] are
// already Common Era.  Any other year is an error.
//
// A day outside the month's valid range is clamped to 28 instead of being
// rejected; upstream callers prefer a usable nearby date over a hard failure.
func NormalizeDate(raw string) (NormalizedDate, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NormalizedDate{}, apperrors.New(apperrors.ErrCodeDateEmpty, "date string is empty")
	}

	parts := strings.Split(separatorReplacer.Replace(trimmed), "/")
	fields := make([]string, 0, 3)
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	if len(fields) != 3 {
		return NormalizedDate{}, apperrors.Newf(apperrors.ErrCodeDateFormatInvalid,
			"date %q does not have three numeric components", raw)
	}

	nums := make([]int, 3)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return NormalizedDate{}, apperrors.Newf(apperrors.ErrCodeDateFormatInvalid,
				"date component %q is not numeric", f)
		}
		nums[i] = n
	}

	var year, month, day int
	if len(fields[0]) == 4 {
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		day, month, year = nums[0], nums[1], nums[2]
	}

	if year < 100 {
		year += twoDigitBEBase
	}

	system := SystemGregorian
	switch {
	case year >= MinBEYear && year <= MaxBEYear:
		year -= BEOffset
		system = SystemBuddhist
	case year >= MinCEYear && year <= MaxCEYear:
		// Already Common Era.
	default:
		return NormalizedDate{}, apperrors.Newf(apperrors.ErrCodeDateYearRange,
			"year %d is outside both CE [%d, %d] and BE [%d, %d] ranges",
			year, MinCEYear, MaxCEYear, MinBEYear, MaxBEYear)
	}

	if month < 1 || month > 12 {
		return NormalizedDate{}, apperrors.Newf(apperrors.ErrCodeDateFormatInvalid,
			"month %d is out of range", month)
	}

	if day < 1 || day > daysInMonth(year, month) {
		day = maxSafeDay
	}

	return NormalizedDate{Year: year, Month: month, Day: day, Calendar: system}, nil
}

// daysInMonth returns the number of days in the given month of a CE year.
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

//Personal.AI order the ending
