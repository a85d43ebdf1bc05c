package render

import "github.com/charmbracelet/lipgloss"

// Styles holds every style used to draw the widget
type Styles struct {
	Box         lipgloss.Style
	Title       lipgloss.Style
	DayHeader   lipgloss.Style
	Day         lipgloss.Style
	Weekend     lipgloss.Style
	Selected    lipgloss.Style
	Pending     lipgloss.Style
	Cursor      lipgloss.Style
	PanelTitle  lipgloss.Style
	PanelBody   lipgloss.Style
	PresetKey   lipgloss.Style
	PresetLabel lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the coloured terminal theme
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5")),

		DayHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Bold(true),

		Day: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),

		Weekend: lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Faint(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color("2")).
			Foreground(lipgloss.Color("0")),

		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Underline(true),

		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color("3")).
			Foreground(lipgloss.Color("0")).
			Bold(true),

		PanelTitle: lipgloss.NewStyle().
			Bold(true),

		PanelBody: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),

		PresetKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true),

		PresetLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true),
	}
}
