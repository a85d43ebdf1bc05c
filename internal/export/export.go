// Package export writes completed selections for the host application.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format that is not supported
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatICS  Format = "ics"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatICS}

// ParseFormat parses a format name; the empty string means text
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(s))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Selection is a completed range and its classified days
type Selection struct {
	Start    string   `json:"start" yaml:"start"`
	End      string   `json:"end" yaml:"end"`
	Weekdays []string `json:"weekdays" yaml:"weekdays"`
	Weekends []string `json:"weekends" yaml:"weekends"`
}

// Write encodes sel to w in the given format
func Write(w io.Writer, format Format, sel Selection) error {
	switch format {
	case FormatText, "":
		return writeText(w, sel)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sel); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sel); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return nil
	case FormatICS:
		cal, err := Calendar(sel)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, cal.Serialize()); err != nil {
			return fmt.Errorf("failed to write ics: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, sel Selection) error {
	_, err := fmt.Fprintf(w, "Selected Weekday Range: %s\nWeekend Dates in Range: %s\n",
		JoinOrNone(sel.Weekdays), JoinOrNone(sel.Weekends))
	if err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	return nil
}

// JoinOrNone joins dates with ", ", or returns "None" for an empty list
func JoinOrNone(dates []string) string {
	if len(dates) == 0 {
		return "None"
	}
	return strings.Join(dates, ", ")
}

// uidNamespace scopes the name-based UUIDs of exported events
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/username/weekday-picker"))

// EventUID returns the stable UID of the all-day event for date
func EventUID(date string) string {
	return uuid.NewSHA1(uidNamespace, []byte(date)).String()
}

// Calendar builds an iCalendar with one all-day event per selected weekday
func Calendar(sel Selection) (*ics.Calendar, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//weekday-picker//EN")

	stamp := time.Now().UTC()
	for _, ds := range sel.Weekdays {
		day, err := time.Parse("2006-01-02", ds)
		if err != nil {
			return nil, fmt.Errorf("failed to parse weekday %q: %w", ds, err)
		}

		event := cal.AddEvent(EventUID(ds))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("Selected weekday (%s to %s)", sel.Start, sel.End))
	}

	return cal, nil
}
