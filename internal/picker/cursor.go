package picker

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Cursor is the month currently shown by the grid
type Cursor struct {
	Year  int
	Month time.Month
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d/%d", int(c.Month), c.Year)
}

// AddMonths returns the cursor moved by delta months, rolling the year as needed
func (c Cursor) AddMonths(delta int) Cursor {
	m := int(c.Month) - 1 + delta
	years := m / 12
	m %= 12
	if m < 0 {
		m += 12
		years--
	}
	return Cursor{Year: c.Year + years, Month: time.Month(m + 1)}
}

// AddYears returns the cursor moved by delta years
func (c Cursor) AddYears(delta int) Cursor {
	return Cursor{Year: c.Year + delta, Month: c.Month}
}

// Cursor returns the month being displayed
func (p *Picker) Cursor() Cursor {
	return p.cursor
}

// ChangeMonth moves the view by delta months
func (p *Picker) ChangeMonth(delta int) {
	p.cursor = p.cursor.AddMonths(delta)
	p.logger.Debug("Month changed", zap.Stringer("cursor", p.cursor))
}

// ChangeYear moves the view by delta years
func (p *Picker) ChangeYear(delta int) {
	p.cursor = p.cursor.AddYears(delta)
	p.logger.Debug("Year changed", zap.Stringer("cursor", p.cursor))
}

// GoTo shows the given month
func (p *Picker) GoTo(year int, month time.Month) {
	p.cursor = Cursor{Year: year, Month: time.January}.AddMonths(int(month) - 1)
}
