// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/frequency"
)

const (
	// DateLayout is the format expected in config files and is also the output
	// date format.
	DateLayout = constants.DateLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a calendar date in DateLayout.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// Format renders t as a calendar date in its own location.
func Format(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay drops the clock portion of t, keeping its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddMonths offsets t by whole months. Days past the end of the target month
// overflow into the following month, e.g. January 31 plus one month is March 3
// in a non-leap year.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

// LastDayOfMonth returns the number of days in the given month.
func LastDayOfMonth(year int, month time.Month) int {
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// TwiceMonthlyDate returns the date of payment index i for a twice-monthly
// cadence that starts in the month of first. Even indexes fall on the 15th and
// odd indexes on the last day of the month; each pair advances one month.
// Only the month of first is used: when first is after the 15th, index 0 is
// still the 15th of that month and so falls before first.
func TwiceMonthlyDate(first time.Time, index int) time.Time {
	month := time.Date(first.Year(), first.Month()+time.Month(index/2), 1, 0, 0, 0, 0, first.Location())
	day := constants.TwiceMonthlyFirstDay
	if index%2 == 1 {
		day = LastDayOfMonth(month.Year(), month.Month())
	}
	return time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, first.Location())
}

// DueDate returns the due date of payment index i (zero based) for a schedule
// whose first payment is due on first. The second result is false for an
// unrecognized cadence or a negative index.
func DueDate(first time.Time, f frequency.Frequency, index int) (time.Time, bool) {
	config, ok := frequency.Lookup(f)
	if !ok || index < 0 {
		return time.Time{}, false
	}
	first = StartOfDay(first)

	switch {
	case f == frequency.TwiceMonthly:
		return TwiceMonthlyDate(first, index), true
	case config.MonthsBetween > 0:
		return AddMonths(first, index*config.MonthsBetween), true
	default:
		return first.AddDate(0, 0, index*config.DaysBetween), true
	}
}
