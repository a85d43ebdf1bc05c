// Package tui hosts the picker in an interactive terminal program.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/username/weekday-picker/internal/calendar"
	"github.com/username/weekday-picker/internal/picker"
	"github.com/username/weekday-picker/internal/render"
	"github.com/username/weekday-picker/pkg/dateutil"
	"go.uber.org/zap"
)

const helpText = "←↓↑→/hjkl move • enter select • n/p month • N/P year • 1-9 preset • c clear • q quit"

// Model is the bubbletea model around a picker
type Model struct {
	picker   *picker.Picker
	renderer *render.Renderer
	logger   *zap.Logger

	cursor   calendar.Date
	status   string
	quitting bool
}

// New creates a model with the keyboard cursor on the first weekday of the
// month the picker shows
func New(p *picker.Picker, r *render.Renderer, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		picker:   p,
		renderer: r,
		logger:   logger,
	}
	c := p.Cursor()
	m.cursor = calendar.NewDate(c.Year, c.Month, 1)
	for m.cursor.IsWeekend() {
		m.cursor = m.cursor.AddDays(1)
	}
	return m
}

// Cursor returns the day under the keyboard cursor
func (m Model) Cursor() calendar.Date {
	return m.cursor
}

// Status returns the last status line
func (m Model) Status() string {
	return m.status
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); k {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-7)
	case "down", "j":
		m.moveCursor(7)

	case "enter", " ":
		m.click()

	case "n":
		m.picker.ChangeMonth(1)
		m.followView()
	case "p":
		m.picker.ChangeMonth(-1)
		m.followView()
	case "N":
		m.picker.ChangeYear(1)
		m.followView()
	case "P":
		m.picker.ChangeYear(-1)
		m.followView()

	case "c":
		m.picker.Clear()
		m.status = "Selection cleared"

	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			m.selectPreset(int(k[0] - '1'))
		}
	}

	return m, nil
}

func (m *Model) click() {
	if !m.picker.Click(m.cursor) {
		m.status = fmt.Sprintf("%s is a weekend day and cannot be selected", m.cursor)
		return
	}
	switch m.picker.Phase() {
	case picker.PhaseAwaitingEnd:
		m.status = fmt.Sprintf("Start %s, select an end date", m.cursor)
	case picker.PhaseComplete:
		r, _ := m.picker.Range()
		m.status = fmt.Sprintf("Selected %s to %s", r.Start, r.End)
	}
}

func (m *Model) selectPreset(i int) {
	presets := m.picker.Presets()
	if err := m.picker.SelectPresetAt(i); err != nil {
		m.logger.Debug("Preset key without preset", zap.Int("index", i), zap.Error(err))
		return
	}
	m.status = fmt.Sprintf("Selected %s", presets[i].Label)
}

// moveCursor shifts the keyboard cursor and brings its month into view
func (m *Model) moveCursor(days int) {
	m.cursor = m.cursor.AddDays(days)
	c := m.picker.Cursor()
	if m.cursor.Year != c.Year || m.cursor.Month != c.Month {
		m.picker.GoTo(m.cursor.Year, m.cursor.Month)
	}
}

// followView keeps the cursor's day of month after the view changed,
// clamped to the length of the new month
func (m *Model) followView() {
	c := m.picker.Cursor()
	day := min(m.cursor.Day, dateutil.DaysInMonth(c.Year, c.Month))
	m.cursor = calendar.Date{Year: c.Year, Month: c.Month, Day: day}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	cursor := m.cursor
	b.WriteString(m.renderer.Widget(m.picker, &cursor))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpText)
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive program and blocks until the user quits
func Run(p *picker.Picker, r *render.Renderer, logger *zap.Logger, opts ...tea.ProgramOption) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	started := time.Now()
	if _, err := tea.NewProgram(New(p, r, logger), opts...).Run(); err != nil {
		return fmt.Errorf("failed to run interactive picker: %w", err)
	}
	logger.Info("Interactive picker closed", zap.Duration("duration", time.Since(started)))
	return nil
}
