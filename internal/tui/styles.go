package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorText  = "252"
	colorMuted = "241"
	colorLink  = "147"
	colorIntro = "105"
)

var styles = struct {
	Headline lipgloss.Style
	Tagline  lipgloss.Style
	Shortcut lipgloss.Style
	Menu     lipgloss.Style
	Number   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Heading  lipgloss.Style
	Body     lipgloss.Style
	Link     lipgloss.Style
	Muted    lipgloss.Style
	Panel    lipgloss.Style
	Intro    lipgloss.Style
	Bar      lipgloss.Style
}{
	Headline: lipgloss.NewStyle().Bold(true).Italic(true),
	Tagline:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)),
	Shortcut: lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)).MarginRight(6),
	Menu:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)),
	Number:   lipgloss.NewStyle().Bold(true).Width(4),
	Item:     lipgloss.NewStyle().Bold(true),
	Selected: lipgloss.NewStyle().Bold(true).Underline(true),
	Heading:  lipgloss.NewStyle().Bold(true).MarginBottom(1),
	Body:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorText)).MarginBottom(1),
	Link:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorLink)),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3),
	Intro:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorIntro)),
	Bar:      lipgloss.NewStyle().Foreground(lipgloss.Color(colorIntro)),
}
