package picker

import (
	"time"

	"github.com/username/weekday-picker/internal/calendar"
	"github.com/username/weekday-picker/pkg/dateutil"
)

// ColumnHeaders are the weekday column labels, Monday first
var ColumnHeaders = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Cell is one slot of the month grid. Blank cells pad the first week.
type Cell struct {
	Blank    bool
	Date     calendar.Date
	Weekend  bool
	Selected bool
}

// Day returns the day of month, or 0 for a blank cell
func (c Cell) Day() int {
	if c.Blank {
		return 0
	}
	return c.Date.Day
}

// Week is one row of the grid. Only the last week can be shorter than 7 cells.
type Week []Cell

// Grid is the rendered month
type Grid struct {
	Year  int
	Month time.Month
	Weeks []Week
}

// Cells returns every non-blank cell in date order
func (g Grid) Cells() []Cell {
	var out []Cell
	for _, w := range g.Weeks {
		for _, c := range w {
			if !c.Blank {
				out = append(out, c)
			}
		}
	}
	return out
}

// Find returns the position of date d in the grid
func (g Grid) Find(d calendar.Date) (row, col int, ok bool) {
	for r, w := range g.Weeks {
		for c, cell := range w {
			if !cell.Blank && cell.Date == d {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// BuildGrid lays out the month of cursor in Monday-first weeks. A week row is
// closed after every Sunday and a trailing partial week becomes the last row.
func BuildGrid(cursor Cursor, highlighted func(calendar.Date) bool) Grid {
	info := calendar.NewMonthInfo(cursor.Year, cursor.Month)
	g := Grid{Year: info.Year, Month: info.Month}

	var week Week
	blanks := dateutil.MondayOffset(info.First().Time())
	for i := 0; i < blanks; i++ {
		week = append(week, Cell{Blank: true})
	}

	for _, day := range info.Days {
		cell := Cell{
			Date:    day.Date,
			Weekend: day.Type == calendar.DayTypeWeekend,
		}
		if !cell.Weekend && highlighted != nil {
			cell.Selected = highlighted(day.Date)
		}
		week = append(week, cell)

		if day.Date.Weekday() == time.Sunday {
			g.Weeks = append(g.Weeks, week)
			week = nil
		}
	}

	if len(week) > 0 {
		g.Weeks = append(g.Weeks, week)
	}

	return g
}

// Grid returns the month grid for the current cursor with selected weekdays marked
func (p *Picker) Grid() Grid {
	return BuildGrid(p.cursor, p.IsHighlighted)
}
