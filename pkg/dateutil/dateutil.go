package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar-date layout used for every date string
const DateLayout = "2006-01-02"

// StartOfDay returns UTC midnight of the calendar day the given time falls on in UTC
func StartOfDay(date time.Time) time.Time {
	date = date.UTC()
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// MondayOffset returns the number of days since Monday: 0 for Monday, 6 for Sunday
func MondayOffset(date time.Time) int {
	weekday := int(date.UTC().Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday - 1
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWeekday returns true if the date is Monday-Friday in UTC
func IsWeekday(date time.Time) bool {
	weekday := date.UTC().Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday in UTC
func IsWeekend(date time.Time) bool {
	weekday := date.UTC().Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// FormatDate formats the UTC calendar day as YYYY-MM-DD
// Example: 2024-06-03
func FormatDate(date time.Time) string {
	return StartOfDay(date).Format(DateLayout)
}

// ParseDate parses an ISO date, optionally with a time of day
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		DateLayout,
		"2006-01-02T15:04:05",
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}
