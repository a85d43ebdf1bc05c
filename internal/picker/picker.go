// Package picker implements a weekday-only date range selection widget.
//
// A Picker is a headless widget: hosts feed it day clicks, preset selections
// and navigation actions, and draw its Grid however they like. Weekend days
// can be seen but not clicked. When a range is complete the host's ChangeFunc
// receives the weekday and weekend dates inside it.
//
// A Picker is not safe for concurrent use; every interaction is expected to
// come from a single event loop.
package picker

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/weekday-picker/internal/calendar"
	"go.uber.org/zap"
)

// ErrUnknownPreset is returned when a preset label or index is not configured
var ErrUnknownPreset = errors.New("unknown predefined range")

// Phase is the stage of the two-click range selection
type Phase int

const (
	// PhaseIdle means no start date is set
	PhaseIdle Phase = iota
	// PhaseAwaitingEnd means a start date is set and the next click ends the range
	PhaseAwaitingEnd
	// PhaseComplete means both ends are set and results are published
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingEnd:
		return "awaiting_end"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ChangeFunc receives the weekday and weekend dates of a completed range as
// YYYY-MM-DD strings in chronological order. The slices are owned by the
// callee.
type ChangeFunc func(weekdays, weekends []string)

// Preset is a named shortcut range supplied by the host
type Preset struct {
	Label string
	Start calendar.Date
	End   calendar.Date
}

// NewPreset parses the two ISO dates of a predefined range
func NewPreset(label, start, end string) (Preset, error) {
	s, err := calendar.Parse(start)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %q start: %w", label, err)
	}
	e, err := calendar.Parse(end)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %q end: %w", label, err)
	}
	return Preset{Label: label, Start: s, End: e}, nil
}

// Options configures a Picker
type Options struct {
	// OnChange is called once every time a range becomes complete
	OnChange ChangeFunc
	// PredefinedRanges are offered as shortcuts, in order
	PredefinedRanges []Preset
	// Now supplies the initial month shown; defaults to time.Now
	Now func() time.Time
	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// Picker is a single widget instance
type Picker struct {
	start    calendar.Date
	end      calendar.Date
	phase    Phase
	cursor   Cursor
	result   calendar.Classified
	selected map[calendar.Date]bool

	presets  []Preset
	onChange ChangeFunc
	logger   *zap.Logger
}

// New creates a new Picker showing the current UTC month
func New(opts Options) *Picker {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	today := calendar.FromTime(now())
	p := &Picker{
		cursor:   Cursor{Year: today.Year, Month: today.Month},
		presets:  append([]Preset(nil), opts.PredefinedRanges...),
		onChange: opts.OnChange,
		logger:   logger,
	}
	p.resetResult()
	return p
}

// Click handles a click on day d. Weekend clicks are ignored and leave every
// piece of state untouched; Click reports whether the click was accepted.
func (p *Picker) Click(d calendar.Date) bool {
	if d.IsWeekend() {
		p.logger.Debug("Ignoring weekend click", zap.Stringer("date", d))
		return false
	}

	switch p.phase {
	case PhaseAwaitingEnd:
		start := p.start
		if d.Before(start) {
			p.complete(d, start)
		} else {
			p.complete(start, d)
		}
	default:
		// Idle or Complete: start a new range
		p.start = d
		p.end = calendar.Date{}
		p.phase = PhaseAwaitingEnd
		p.logger.Debug("Range start selected", zap.Stringer("start", d))
	}
	return true
}

// SelectRange sets both ends at once and completes the selection. Endpoints
// are not checked for weekends, but are put in order.
func (p *Picker) SelectRange(start, end calendar.Date) {
	r := calendar.NewRange(start, end)
	p.complete(r.Start, r.End)
}

// SelectPreset completes the selection with the preset of the given label
func (p *Picker) SelectPreset(label string) error {
	for i := range p.presets {
		if p.presets[i].Label == label {
			return p.SelectPresetAt(i)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownPreset, label)
}

// SelectPresetAt completes the selection with the i-th preset
func (p *Picker) SelectPresetAt(i int) error {
	if i < 0 || i >= len(p.presets) {
		return fmt.Errorf("%w: index %d", ErrUnknownPreset, i)
	}
	preset := p.presets[i]
	p.logger.Debug("Predefined range selected",
		zap.String("label", preset.Label),
		zap.Stringer("start", preset.Start),
		zap.Stringer("end", preset.End))
	p.SelectRange(preset.Start, preset.End)
	return nil
}

// Clear drops the selection and every derived result
func (p *Picker) Clear() {
	p.start = calendar.Date{}
	p.end = calendar.Date{}
	p.phase = PhaseIdle
	p.resetResult()
	p.logger.Debug("Selection cleared")
}

// complete stores the ordered pair, recomputes the classification and then
// notifies the host. The host always sees the pair from this transition.
func (p *Picker) complete(start, end calendar.Date) {
	p.start = start
	p.end = end
	p.phase = PhaseComplete
	p.recompute()

	p.logger.Info("Range selected",
		zap.Stringer("start", start),
		zap.Stringer("end", end),
		zap.Int("weekdays", len(p.result.Weekdays)),
		zap.Int("weekends", len(p.result.Weekends)))

	if p.onChange != nil {
		p.onChange(p.Weekdays(), p.Weekends())
	}
}

func (p *Picker) recompute() {
	p.result = calendar.Classify(calendar.Range{Start: p.start, End: p.end})
	p.selected = make(map[calendar.Date]bool, len(p.result.Weekdays))
	for _, d := range calendar.Enumerate(p.start, p.end) {
		if !d.IsWeekend() {
			p.selected[d] = true
		}
	}
}

func (p *Picker) resetResult() {
	p.result = calendar.Classified{Weekdays: []string{}, Weekends: []string{}}
	p.selected = map[calendar.Date]bool{}
}

// Phase returns the current selection phase
func (p *Picker) Phase() Phase {
	return p.phase
}

// Start returns the range start, if one is set
func (p *Picker) Start() (calendar.Date, bool) {
	return p.start, p.phase != PhaseIdle
}

// End returns the range end, if the range is complete
func (p *Picker) End() (calendar.Date, bool) {
	return p.end, p.phase == PhaseComplete
}

// Range returns the completed range
func (p *Picker) Range() (calendar.Range, bool) {
	if p.phase != PhaseComplete {
		return calendar.Range{}, false
	}
	return calendar.Range{Start: p.start, End: p.end}, true
}

// Weekdays returns a copy of the last computed weekday dates
func (p *Picker) Weekdays() []string {
	return append([]string{}, p.result.Weekdays...)
}

// Weekends returns a copy of the last computed weekend dates
func (p *Picker) Weekends() []string {
	return append([]string{}, p.result.Weekends...)
}

// IsHighlighted reports whether d is a selected weekday
func (p *Picker) IsHighlighted(d calendar.Date) bool {
	return p.selected[d]
}

// Presets returns the configured predefined ranges
func (p *Picker) Presets() []Preset {
	return append([]Preset(nil), p.presets...)
}
