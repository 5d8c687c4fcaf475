package browse

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#101F38")
	colorAccent  = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#8a94a6")
	colorBorder  = lipgloss.Color("#2a3850")
)

// Styles holds the lipgloss styles of the browser page.
type Styles struct {
	Title     lipgloss.Style
	Sidebar   lipgloss.Style
	Main      lipgloss.Style
	Header    lipgloss.Style
	Option    lipgloss.Style
	Cursor    lipgloss.Style
	Count     lipgloss.Style
	Token     lipgloss.Style
	Footer    lipgloss.Style
	Help      lipgloss.Style
	Focused   lipgloss.Style
	Unfocused lipgloss.Style
}

// DefaultStyles returns the default page styles.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Sidebar:   lipgloss.NewStyle().Width(34).Padding(0, 1),
		Main:      lipgloss.NewStyle().Padding(0, 2),
		Header:    lipgloss.NewStyle().Bold(true).MarginTop(1),
		Option:    lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Count:     lipgloss.NewStyle().Foreground(colorMuted),
		Token:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(colorPrimary).Padding(0, 1).MarginRight(1),
		Footer:    lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
		Help:      lipgloss.NewStyle().Foreground(colorMuted),
		Focused:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent),
		Unfocused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder),
	}
}

// TagDot renders a coloured dot for a tag colour; empty colour renders a blank.
func TagDot(color string) string {
	if color == "" {
		return " "
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}
