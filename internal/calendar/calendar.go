package calendar

import (
	"time"

	"github.com/username/weekday-picker/pkg/dateutil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWeekday DayType = iota + 1
	DayTypeWeekend
)

// String returns a lowercase label for the day type
func (t DayType) String() string {
	switch t {
	case DayTypeWeekday:
		return "weekday"
	case DayTypeWeekend:
		return "weekend"
	default:
		return "unknown"
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date      Date
	Type      DayType
	IsWorkday bool
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year     int
	Month    time.Month
	WorkDays int
	Weekends int
	Days     []DayInfo
}

// ClassifyDay returns the DayType for the given date
func ClassifyDay(d Date) DayType {
	if dateutil.IsWeekday(d.Time()) {
		return DayTypeWeekday
	}
	return DayTypeWeekend
}

// NewDayInfo returns detailed info for a specific day
func NewDayInfo(d Date) DayInfo {
	dayType := ClassifyDay(d)
	return DayInfo{
		Date:      d,
		Type:      dayType,
		IsWorkday: dayType == DayTypeWeekday,
	}
}

// NewMonthInfo returns calendar info for the entire month
func NewMonthInfo(year int, month time.Month) *MonthInfo {
	first := NewDate(year, month, 1)
	last := NewDate(year, month, dateutil.DaysInMonth(year, month))

	info := &MonthInfo{
		Year:  first.Year,
		Month: first.Month,
		Days:  make([]DayInfo, 0, last.Day),
	}

	for _, d := range Enumerate(first, last) {
		day := NewDayInfo(d)
		info.Days = append(info.Days, day)

		// Update statistics
		if day.IsWorkday {
			info.WorkDays++
		} else {
			info.Weekends++
		}
	}

	return info
}

// First returns the first day of the month
func (m *MonthInfo) First() Date {
	return NewDate(m.Year, m.Month, 1)
}
