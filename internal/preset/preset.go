package preset

import (
	"fmt"
	"time"

	"github.com/username/weekday-picker/internal/calendar"
	"github.com/username/weekday-picker/internal/picker"
)

// Definition describes a predefined range as written in configuration.
// Either Start and End are set (absolute range), or LastDays is positive
// and the range is [today-LastDays, today].
type Definition struct {
	Label    string `mapstructure:"label" yaml:"label"`
	Start    string `mapstructure:"start" yaml:"start,omitempty"`
	End      string `mapstructure:"end" yaml:"end,omitempty"`
	LastDays int    `mapstructure:"last_days" yaml:"last_days,omitempty"`
}

// Defaults returns the built-in shortcuts
func Defaults() []Definition {
	return []Definition{
		{Label: "Last 7 Days", LastDays: 7},
		{Label: "Last 30 Days", LastDays: 30},
	}
}

// Validate checks a definition without resolving relative dates
func (d Definition) Validate() error {
	if d.Label == "" {
		return fmt.Errorf("preset label is required")
	}

	absolute := d.Start != "" || d.End != ""
	switch {
	case absolute && d.LastDays != 0:
		return fmt.Errorf("preset %q: start/end and last_days are mutually exclusive", d.Label)
	case absolute:
		if d.Start == "" || d.End == "" {
			return fmt.Errorf("preset %q: both start and end are required", d.Label)
		}
		if _, err := picker.NewPreset(d.Label, d.Start, d.End); err != nil {
			return err
		}
	case d.LastDays < 0:
		return fmt.Errorf("preset %q: last_days must not be negative", d.Label)
	case d.LastDays == 0:
		return fmt.Errorf("preset %q: either start/end or last_days is required", d.Label)
	}
	return nil
}

// Resolve turns a definition into a concrete picker preset relative to now
func (d Definition) Resolve(now time.Time) (picker.Preset, error) {
	if err := d.Validate(); err != nil {
		return picker.Preset{}, err
	}

	if d.LastDays > 0 {
		today := calendar.FromTime(now)
		return picker.Preset{
			Label: d.Label,
			Start: today.AddDays(-d.LastDays),
			End:   today,
		}, nil
	}
	return picker.NewPreset(d.Label, d.Start, d.End)
}

// Resolve resolves every definition, rejecting duplicate labels
func Resolve(defs []Definition, now time.Time) ([]picker.Preset, error) {
	seen := make(map[string]bool, len(defs))
	presets := make([]picker.Preset, 0, len(defs))

	for _, def := range defs {
		if seen[def.Label] {
			return nil, fmt.Errorf("duplicate preset label %q", def.Label)
		}
		seen[def.Label] = true

		p, err := def.Resolve(now)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve preset: %w", err)
		}
		presets = append(presets, p)
	}

	return presets, nil
}
