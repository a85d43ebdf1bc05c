package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var scenarioB = Selection{
	Start:    "2024-06-07",
	End:      "2024-06-10",
	Weekdays: []string{"2024-06-07", "2024-06-10"},
	Weekends: []string{"2024-06-08", "2024-06-09"},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"ics", FormatICS, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, scenarioB))

	assert.Equal(t,
		"Selected Weekday Range: 2024-06-07, 2024-06-10\nWeekend Dates in Range: 2024-06-08, 2024-06-09\n",
		buf.String())
}

func TestWrite_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, Selection{Start: "2024-06-03", End: "2024-06-07", Weekdays: []string{"2024-06-03"}}))

	assert.Contains(t, buf.String(), "Weekend Dates in Range: None")
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, scenarioB))

	var got Selection
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, scenarioB, got)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, scenarioB))

	assert.Contains(t, buf.String(), "weekends:")

	var got Selection
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, scenarioB, got)
}

func TestWrite_ICS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatICS, scenarioB))

	cal, err := ics.ParseCalendar(strings.NewReader(buf.String()))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventUID("2024-06-07"), events[0].Id())
	assert.Equal(t, EventUID("2024-06-10"), events[1].Id())

	start, err := events[1].GetAllDayStartAt()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", start.Format("2006-01-02"))
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("pdf"), scenarioB)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestCalendar_BadDate(t *testing.T) {
	_, err := Calendar(Selection{Weekdays: []string{"not-a-date"}})
	assert.Error(t, err)
}

func TestEventUID_Stable(t *testing.T) {
	assert.Equal(t, EventUID("2024-06-03"), EventUID("2024-06-03"))
	assert.NotEqual(t, EventUID("2024-06-03"), EventUID("2024-06-04"))
}
