// Package render draws the picker as terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/username/weekday-picker/internal/calendar"
	"github.com/username/weekday-picker/internal/export"
	"github.com/username/weekday-picker/internal/picker"
)

// Plain-mode cell markers
const (
	markSelected = "*"
	markWeekend  = "~"
	markPending  = "^"
)

// Renderer turns picker state into text
type Renderer struct {
	styles Styles
	plain  bool
}

// New returns a renderer using the coloured theme
func New() *Renderer {
	return &Renderer{styles: DefaultStyles()}
}

// NewPlain returns a renderer for pipes and logs. Cell state is shown with
// markers instead of colour: * selected, ~ weekend, ^ pending start, and the
// cursor day is wrapped in brackets.
func NewPlain() *Renderer {
	return &Renderer{styles: DefaultStyles(), plain: true}
}

func (r *Renderer) paint(style lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return style.Render(text)
}

// MonthOptions carries transient marks that are not part of the grid
type MonthOptions struct {
	Cursor  *calendar.Date // keyboard cursor, if any
	Pending *calendar.Date // start of an unfinished range, if any
}

// Month draws the grid: a header line and one line per week
func (r *Renderer) Month(g picker.Grid, opts MonthOptions) string {
	var b strings.Builder

	headers := make([]string, len(picker.ColumnHeaders))
	for i, h := range picker.ColumnHeaders {
		headers[i] = r.paint(r.styles.DayHeader, fmt.Sprintf(" %-3s ", h))
	}
	b.WriteString(strings.Join(headers, ""))

	for _, week := range g.Weeks {
		b.WriteString("\n")
		for _, cell := range week {
			b.WriteString(r.cell(cell, opts))
		}
	}

	return b.String()
}

func (r *Renderer) cell(c picker.Cell, opts MonthOptions) string {
	if c.Blank {
		return strings.Repeat(" ", 5)
	}

	isCursor := opts.Cursor != nil && *opts.Cursor == c.Date
	isPending := opts.Pending != nil && *opts.Pending == c.Date

	left, right, mark := " ", " ", " "
	if r.plain {
		switch {
		case c.Selected:
			mark = markSelected
		case c.Weekend:
			mark = markWeekend
		case isPending:
			mark = markPending
		}
		if isCursor {
			left, right = "[", "]"
		}
	}
	text := fmt.Sprintf("%s%2d%s%s", left, c.Day(), mark, right)

	style := r.styles.Day
	switch {
	case isCursor:
		style = r.styles.Cursor
	case c.Selected:
		style = r.styles.Selected
	case isPending:
		style = r.styles.Pending
	case c.Weekend:
		style = r.styles.Weekend
	}
	return r.paint(style, text)
}

// Results draws the two read-only panels echoing the last computed lists
func (r *Renderer) Results(weekdays, weekends []string) string {
	return strings.Join([]string{
		r.paint(r.styles.PanelTitle, "Selected Weekday Range:"),
		r.paint(r.styles.PanelBody, export.JoinOrNone(weekdays)),
		r.paint(r.styles.PanelTitle, "Weekend Dates in Range:"),
		r.paint(r.styles.PanelBody, export.JoinOrNone(weekends)),
	}, "\n")
}

// Presets lists shortcut ranges numbered from 1
func (r *Renderer) Presets(presets []picker.Preset) string {
	if len(presets) == 0 {
		return ""
	}
	lines := make([]string, 0, len(presets))
	for i, p := range presets {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			r.paint(r.styles.PresetKey, fmt.Sprintf("[%d]", i+1)),
			r.paint(r.styles.PresetLabel, p.Label),
			r.paint(r.styles.Help, fmt.Sprintf("(%s to %s)", p.Start, p.End))))
	}
	return strings.Join(lines, "\n")
}

// Summary describes the shown month's weekday and weekend counts
func (r *Renderer) Summary(g picker.Grid) string {
	info := calendar.NewMonthInfo(g.Year, g.Month)
	return r.paint(r.styles.Help, fmt.Sprintf("%d weekdays, %d weekend days", info.WorkDays, info.Weekends))
}

// Widget draws the whole widget: title, grid, presets and result panels
func (r *Renderer) Widget(p *picker.Picker, cursor *calendar.Date) string {
	opts := MonthOptions{Cursor: cursor}
	if p.Phase() == picker.PhaseAwaitingEnd {
		if start, ok := p.Start(); ok {
			opts.Pending = &start
		}
	}

	g := p.Grid()
	sections := []string{
		r.paint(r.styles.Title, p.Cursor().String()),
		r.Month(g, opts),
		r.Summary(g),
	}
	if presets := r.Presets(p.Presets()); presets != "" {
		sections = append(sections, "", presets)
	}
	sections = append(sections, "", r.Results(p.Weekdays(), p.Weekends()))

	body := strings.Join(sections, "\n")
	return r.paint(r.styles.Box, body)
}
