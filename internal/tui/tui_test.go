package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/weekday-picker/internal/calendar"
	"github.com/username/weekday-picker/internal/picker"
	"github.com/username/weekday-picker/internal/render"
)

func newModel(t *testing.T, onChange picker.ChangeFunc) (Model, *picker.Picker) {
	t.Helper()
	june, err := picker.NewPreset("June", "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	p := picker.New(picker.Options{
		Now:              func() time.Time { return time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC) },
		OnChange:         onChange,
		PredefinedRanges: []picker.Preset{june},
	})
	return New(p, render.NewPlain(), nil), p
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestNew_CursorOnFirstWeekday(t *testing.T) {
	m, _ := newModel(t, nil)

	// June 1 and 2 2024 are a weekend
	assert.Equal(t, calendar.MustParse("2024-06-03"), m.Cursor())
}

func TestUpdate_TwoClicks(t *testing.T) {
	var weekdays, weekends []string
	m, p := newModel(t, func(wd, we []string) {
		weekdays, weekends = wd, we
	})

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	right := tea.KeyMsg{Type: tea.KeyRight}

	// Monday 3rd, then four days right to Friday 7th
	m = send(t, m, enter)
	assert.Equal(t, picker.PhaseAwaitingEnd, p.Phase())
	assert.Contains(t, m.Status(), "select an end date")

	m = send(t, m, right, right, right, right, enter)

	assert.Equal(t, picker.PhaseComplete, p.Phase())
	assert.Equal(t, []string{"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07"}, weekdays)
	assert.Empty(t, weekends)
	assert.Equal(t, "Selected 2024-06-03 to 2024-06-07", m.Status())
}

func TestUpdate_WeekendClickIgnored(t *testing.T) {
	m, p := newModel(t, nil)

	// Monday 3rd minus one day is Sunday 2nd
	m = send(t, m, runes("h"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, picker.PhaseIdle, p.Phase())
	assert.Contains(t, m.Status(), "weekend")
}

func TestUpdate_CursorCrossesMonth(t *testing.T) {
	m, p := newModel(t, nil)

	m = send(t, m, runes("k"))

	assert.Equal(t, calendar.MustParse("2024-05-27"), m.Cursor())
	assert.Equal(t, picker.Cursor{Year: 2024, Month: time.May}, p.Cursor())
}

func TestUpdate_MonthNavigationClampsDay(t *testing.T) {
	m, p := newModel(t, nil)
	p.GoTo(2024, time.January)
	m.cursor = calendar.MustParse("2024-01-31")

	m = send(t, m, runes("n"))

	assert.Equal(t, picker.Cursor{Year: 2024, Month: time.February}, p.Cursor())
	assert.Equal(t, calendar.MustParse("2024-02-29"), m.Cursor())

	m = send(t, m, runes("N"))
	assert.Equal(t, picker.Cursor{Year: 2025, Month: time.February}, p.Cursor())
	assert.Equal(t, calendar.MustParse("2025-02-28"), m.Cursor())
}

func TestUpdate_PresetAndClear(t *testing.T) {
	calls := 0
	m, p := newModel(t, func(_, _ []string) { calls++ })

	m = send(t, m, runes("1"))
	assert.Equal(t, picker.PhaseComplete, p.Phase())
	assert.Len(t, p.Weekdays(), 20)
	assert.Equal(t, "Selected June", m.Status())

	m = send(t, m, runes("9"))
	assert.Equal(t, 1, calls)

	m = send(t, m, runes("c"))
	assert.Equal(t, picker.PhaseIdle, p.Phase())
	assert.Empty(t, p.Weekdays())
	assert.Equal(t, "Selection cleared", m.Status())
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newModel(t, nil)

	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestView(t *testing.T) {
	m, _ := newModel(t, nil)

	out := m.View()
	assert.Contains(t, out, "6/2024")
	assert.Contains(t, out, "[ 3 ]")
	assert.Contains(t, out, "[1] June")
	assert.Contains(t, out, "q quit")
}
