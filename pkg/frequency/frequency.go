// Package frequency defines the supported payment cadences and how each one
// steps through the calendar.
package frequency

import (
	"fmt"
	"strings"

	"github.com/iwvelando/loan-schedule/pkg/constants"
)

// Frequency is a payment cadence.
type Frequency string

// Supported cadences.
const (
	Weekly       Frequency = "weekly"
	BiWeekly     Frequency = "bi-weekly"
	TwiceMonthly Frequency = "twice-monthly"
	Monthly      Frequency = "monthly"
)

// Config describes how often payments fall due for a cadence.
type Config struct {
	PaymentsPerYear int
	DaysBetween     int
	MonthsBetween   int
}

var table = map[Frequency]Config{
	Weekly:       {PaymentsPerYear: 52, DaysBetween: 7},
	BiWeekly:     {PaymentsPerYear: 26, DaysBetween: 14},
	TwiceMonthly: {PaymentsPerYear: 24, DaysBetween: 15},
	Monthly:      {PaymentsPerYear: constants.MonthsPerYear, MonthsBetween: 1},
}

// Whole payments counted per calendar month when sizing a term. Weekly and
// bi-weekly loans count four weeks to the month.
var paymentsPerMonth = map[Frequency]int{
	Weekly:       4,
	BiWeekly:     2,
	TwiceMonthly: 2,
	Monthly:      1,
}

var aliases = map[string]Frequency{
	"weekly":        Weekly,
	"bi-weekly":     BiWeekly,
	"biweekly":      BiWeekly,
	"twice-monthly": TwiceMonthly,
	"semi-monthly":  TwiceMonthly,
	"semimonthly":   TwiceMonthly,
	"monthly":       Monthly,
}

// All returns the supported cadences, most frequent first.
func All() []Frequency {
	return []Frequency{Weekly, BiWeekly, TwiceMonthly, Monthly}
}

// Lookup returns the configuration for f. The second result is false for an
// unrecognized cadence.
func Lookup(f Frequency) (Config, bool) {
	c, ok := table[f]
	return c, ok
}

// Valid reports whether f is a supported cadence.
func (f Frequency) Valid() bool {
	_, ok := table[f]
	return ok
}

// String returns the canonical cadence name.
func (f Frequency) String() string {
	return string(f)
}

// Parse converts a user supplied cadence name into a Frequency.
func Parse(s string) (Frequency, error) {
	if f, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unknown payment frequency %q, expected one of %s, %s, %s, %s",
		s, Weekly, BiWeekly, TwiceMonthly, Monthly)
}

// DefaultNumberOfPayments returns the number of payments a standard short-term
// loan uses for f, or 0 for an unrecognized cadence. This is a product policy
// and places no limit on how long a schedule may be.
func DefaultNumberOfPayments(f Frequency) int {
	return NumberOfPaymentsForTerm(f, constants.DefaultTermMonths)
}

// NumberOfPaymentsForTerm returns how many payments of cadence f fit in a
// term of the given number of months, or 0 when either is invalid.
func NumberOfPaymentsForTerm(f Frequency, months int) int {
	if months <= 0 {
		return 0
	}
	return months * paymentsPerMonth[f]
}
