package calendar

// Range is an inclusive span of calendar days with Start <= End.
type Range struct {
	Start Date
	End   Date
}

// NewRange returns the Range covering a and b, swapping them if needed.
func NewRange(a, b Date) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Contains reports whether d lies within the range, endpoints included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !r.End.Before(d)
}

// Days returns the number of calendar days in the range.
func (r Range) Days() int {
	if r.End.Before(r.Start) {
		return 0
	}
	hours := r.End.Time().Sub(r.Start.Time()).Hours()
	return int(hours/24) + 1
}

// Enumerate returns every calendar day from start to end inclusive in
// ascending order. A fresh slice is built on every call. It returns nil when
// start is after end; callers order the endpoints first.
func Enumerate(start, end Date) []Date {
	if end.Before(start) {
		return nil
	}

	dates := make([]Date, 0, Range{Start: start, End: end}.Days())
	current := start.Time()
	last := end.Time()
	for !current.After(last) {
		dates = append(dates, FromTime(current))
		current = current.AddDate(0, 0, 1)
	}
	return dates
}

// Classified is a range partitioned into weekday and weekend ISO date
// strings, each in chronological order.
type Classified struct {
	Weekdays []string
	Weekends []string
}

// Classify enumerates r and splits the days by weekday / weekend.
func Classify(r Range) Classified {
	out := Classified{
		Weekdays: []string{},
		Weekends: []string{},
	}
	for _, d := range Enumerate(r.Start, r.End) {
		if d.IsWeekend() {
			out.Weekends = append(out.Weekends, d.String())
		} else {
			out.Weekdays = append(out.Weekdays, d.String())
		}
	}
	return out
}
