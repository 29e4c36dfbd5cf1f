package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/elifdikmn/elif-dev/internal/motion"
	"github.com/elifdikmn/elif-dev/internal/overlay"
)

const maxTextWidth = 80

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var body string
	switch {
	case m.intro:
		body = m.introView()
	case m.ctrl.IsOpen():
		body = m.panelView()
	default:
		body = m.heroView()
	}

	helpView := m.helpView()
	page := lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, body)
	if m.intro {
		return page
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.menuButton(page), helpView)
}

func (m Model) helpView() string {
	return m.help.View(m.keys.forState(m.ctrl.State()))
}

// bodyHeight is the area above the help line.
func (m Model) bodyHeight() int {
	h := m.height - lipgloss.Height(m.helpView())
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) textWidth() int {
	w := m.width - 8
	if w > maxTextWidth {
		w = maxTextWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) accent() lipgloss.Color {
	return lipgloss.Color(motion.HueColor(m.hue.Value).Hex())
}

func (m Model) introView() string {
	bars := []string{"▃", "▅", "█", "▅", "▃"}
	return lipgloss.JoinVertical(lipgloss.Center,
		styles.Bar.Render(strings.Join(bars, " ")),
		"",
		styles.Intro.Render("W E L C O M E"),
	)
}

// menuButton overlays the menu hint on the first line of page.
func (m Model) menuButton(page string) string {
	label := "⠿ menu"
	if m.ctrl.IsOpen() {
		label = "✕ close"
	}
	label = styles.Menu.Render(label)

	lines := strings.Split(page, "\n")
	if len(lines) == 0 {
		return page
	}
	pad := m.width - lipgloss.Width(label) - 2
	if pad < 0 {
		pad = 0
	}
	lines[0] = strings.Repeat(" ", pad) + label
	return strings.Join(lines, "\n")
}

func (m Model) heroView() string {
	palette := motion.PaletteAt(m.mouseX, m.mouseY)

	headline := m.headline.Shown()
	if m.headline.Cursor() {
		headline += "▌"
	}
	headlineStyle := styles.Headline.Foreground(m.accent())

	shortcuts := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Shortcut.Render("→ see my projects "+styles.Muted.Render("[p]")),
		styles.Shortcut.Render("→ more about me "+styles.Muted.Render("[a]")),
	)

	tagline := styles.Tagline.
		Width(m.textWidth()).
		Align(lipgloss.Center).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color(palette.Primary.Hex())).
		Render(m.site.Tagline)

	return lipgloss.JoinVertical(lipgloss.Center,
		headlineStyle.Render(headline),
		"",
		tagline,
		"",
		shortcuts,
	)
}

func (m Model) panelView() string {
	st := m.ctrl.State()
	var inner string
	switch st.View {
	case overlay.About:
		inner = m.aboutView()
	case overlay.Projects:
		inner = m.projectsView()
	case overlay.Contact:
		inner = m.contactView()
	default:
		inner = m.listView()
	}
	if st.View != overlay.List {
		inner = lipgloss.JoinVertical(lipgloss.Left, styles.Muted.Render("← Back [b]"), "", inner)
	}
	return styles.Panel.BorderForeground(m.accent()).Render(inner)
}

func (m Model) listView() string {
	var rows []string
	for i, it := range overlay.MenuItems() {
		label := styles.Item.Render(it.Label)
		if i == m.cursor {
			label = styles.Selected.Foreground(m.accent()).Render(it.Label)
		}
		rows = append(rows, styles.Number.Render(it.Number)+label)
	}
	return strings.Join(rows, "\n\n")
}

func (m Model) aboutView() string {
	about := m.site.About
	parts := []string{styles.Heading.Foreground(m.accent()).Render(about.Heading)}
	for _, p := range about.Paragraphs {
		parts = append(parts, styles.Body.Width(m.textWidth()).Render(p))
	}
	if l := m.site.Link("resume"); l != nil {
		parts = append(parts, styles.Link.Render("↓ resume")+" "+styles.Muted.Render(l.URL))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) projectsView() string {
	p := m.site.Projects
	parts := []string{
		styles.Heading.Foreground(m.accent()).Render(p.Heading),
		styles.Body.Width(m.textWidth()).Render(p.Message),
	}
	for _, name := range []string{"github", "resume"} {
		if l := m.site.Link(name); l != nil {
			parts = append(parts, fmt.Sprintf("%s  %s", styles.Link.Render(l.Label), styles.Muted.Render(l.URL)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m Model) contactView() string {
	parts := []string{styles.Heading.Foreground(m.accent()).Render("CONTACT")}
	for _, l := range m.site.ContactLinks() {
		parts = append(parts, fmt.Sprintf("%s  %s", styles.Link.Render(l.Label), styles.Muted.Render(strings.TrimPrefix(l.URL, "mailto:"))))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// Run starts the program on the alternate screen with mouse tracking.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
