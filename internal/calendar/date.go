package calendar

import (
	"fmt"
	"time"

	"github.com/username/weekday-picker/pkg/dateutil"
)

// Date is a calendar day with no time-of-day or zone. The zero value is not a
// valid date. Dates compare with == by calendar-day identity.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for year, month and day, normalizing overflow the
// same way time.Date does (e.g. June 31 becomes July 1).
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime strips the time-of-day and returns the UTC calendar day of t.
func FromTime(t time.Time) Date {
	y, m, d := dateutil.StartOfDay(t).Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse parses an ISO calendar date, or any other layout understood by
// dateutil.ParseDate, into a Date.
func Parse(s string) (Date, error) {
	t, err := dateutil.ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date: %w", err)
	}
	return FromTime(t), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// literals.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns UTC midnight of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Weekday returns the UTC day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend reports whether d is a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	return dateutil.IsWeekend(d.Time())
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Before(other):
		return -1
	case other.Before(d):
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// String renders the date as zero-padded YYYY-MM-DD.
func (d Date) String() string {
	return dateutil.FormatDate(d.Time())
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(d Date) bool {
	return d.IsWeekend()
}

// Format renders the date as YYYY-MM-DD.
func Format(d Date) string {
	return d.String()
}
