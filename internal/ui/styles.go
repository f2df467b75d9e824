package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Brand palette.
const (
	ColorPrimary   = "#2C5FF6" // Titles, focused borders
	ColorSecondary = "#1AC6D1" // Metrics, selection
	ColorAccent    = "#FFB454" // Duplicate alerts, warnings
	ColorSurface   = "#090B16" // Header background
	ColorDanger    = "#F25F5C"
	ColorMuted     = "241"
	ColorText      = "252"
	ColorBorder    = "238"
)

// Styles contains shared style definitions used across panels and modals.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style
	Header       lipgloss.Style

	// Panel frames; the focused panel gets the primary border.
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style

	Box       lipgloss.Style // Modal box
	BoxDanger lipgloss.Style // Destructive confirmation box
	Card      lipgloss.Style // Bordered card inside a panel

	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Section  lipgloss.Style
	Empty    lipgloss.Style
	Metric   lipgloss.Style
	Alert    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Label    lipgloss.Style
	Details  lipgloss.Style
	User     lipgloss.Style
	Bot      lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorSurface)).
		Padding(0, 1),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	PanelFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPrimary)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondary)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSecondary)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Metric: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSecondary)),
	Alert: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondary)),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	User: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Bot: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSecondary)),
}

// trendGlyph renders a metric trend arrow.
func trendGlyph(t string) string {
	switch t {
	case "up":
		return Styles.Success.Render("▲")
	case "down":
		return Styles.Error.Render("▼")
	default:
		return Styles.Muted.Render("■")
	}
}

// NewCompactListDelegate returns a list delegate with zero spacing and the
// shared selection styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Normal
	d.Styles.NormalDesc = Styles.Muted
	return d
}
