// Package tui renders the portfolio in a terminal: the intro splash, the
// typewriter headline and the overlay menu with its panels.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/elifdikmn/elif-dev/internal/content"
	"github.com/elifdikmn/elif-dev/internal/logging"
	"github.com/elifdikmn/elif-dev/internal/motion"
	"github.com/elifdikmn/elif-dev/internal/overlay"
)

const (
	headlineSpeed = 100 * time.Millisecond
	headlineDelay = 200 * time.Millisecond
)

type (
	introDoneMsg struct{}
	typeStartMsg struct{}
	typeTickMsg  struct{}
	frameMsg     struct{}
)

// Options tune the terminal rendition.
type Options struct {
	ReducedMotion bool
}

// Model is the bubbletea model. Overlay navigation lives in ctrl; every
// other field is cosmetic.
type Model struct {
	ctrl *overlay.Controller
	site *content.Site
	keys keyMap
	help help.Model

	width, height int
	cursor        int

	intro     bool
	reduced   bool
	headline  *motion.Typewriter
	hue       *motion.Hue
	mouseX    float64
	mouseY    float64
	animating bool

	logger *logrus.Entry
}

// New returns a model showing site.
func New(site *content.Site, opts Options) Model {
	logger := logging.NewLogger("tui")
	m := Model{
		ctrl:     overlay.NewController(),
		site:     site,
		keys:     defaultKeyMap(),
		help:     help.New(),
		intro:    !opts.ReducedMotion,
		reduced:  opts.ReducedMotion,
		headline: motion.NewTypewriter(site.Headline, headlineSpeed, headlineDelay, opts.ReducedMotion),
		hue:      motion.NewHue(),
		mouseX:   0.5,
		mouseY:   0.5,
		logger:   logger,
	}
	m.ctrl.OnChange(func(prev, next overlay.State) {
		logger.WithField("from", prev.String()).WithField("to", next.String()).Debug("overlay transition")
	})
	return m
}

// State exposes the overlay state, mainly for tests.
func (m Model) State() overlay.State { return m.ctrl.State() }

func (m Model) Init() tea.Cmd {
	if m.reduced {
		return nil
	}
	return tea.Tick(motion.IntroDuration, func(time.Time) tea.Msg { return introDoneMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case introDoneMsg:
		// The timer from Init still fires after a key skipped the splash.
		if !m.intro {
			return m, nil
		}
		m.intro = false
		return m, tea.Tick(m.headline.StartDelay, func(time.Time) tea.Msg { return typeStartMsg{} })

	case typeStartMsg:
		if m.headline.Started() {
			return m, nil
		}
		m.headline.Start()
		return m, m.typeTick()

	case typeTickMsg:
		if m.headline.Tick() {
			return m, m.typeTick()
		}
		return m, nil

	case frameMsg:
		if m.hue.Step() {
			m.animating = false
			return m, nil
		}
		return m, frame()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) typeTick() tea.Cmd {
	return tea.Tick(m.headline.Speed, func(time.Time) tea.Msg { return typeTickMsg{} })
}

func frame() tea.Cmd {
	return tea.Tick(motion.FrameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.intro {
		// Any key skips the splash.
		return m.Update(introDoneMsg{})
	}

	if m.ctrl.HandleKey(msg.String()) {
		return m, nil
	}

	st := m.ctrl.State()
	switch {
	case key.Matches(msg, m.keys.Menu):
		m.dispatch(overlay.ActionToggle)
	case !st.Open && key.Matches(msg, m.keys.Projects):
		m.dispatch(overlay.ActionOpenProjects)
	case !st.Open && key.Matches(msg, m.keys.About):
		m.dispatch(overlay.ActionOpenAbout)
	case st.Open && st.View == overlay.List:
		items := overlay.MenuItems()
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + len(items) - 1) % len(items)
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(items)
		case key.Matches(msg, m.keys.Select):
			m.dispatch(items[m.cursor].Action)
		case key.Matches(msg, m.keys.Item):
			m.cursor = int(msg.String()[0] - '1')
			m.dispatch(items[m.cursor].Action)
		}
	case st.Open && key.Matches(msg, m.keys.Back):
		m.dispatch(overlay.ActionBack)
	}
	return m, nil
}

func (m *Model) dispatch(a overlay.Action) {
	wasOpen := m.ctrl.IsOpen()
	m.ctrl.Dispatch(a)
	if !wasOpen && m.ctrl.IsOpen() {
		m.cursor = 0
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.width > 0 && m.height > 0 {
		m.mouseX = motion.Clamp01(float64(msg.X) / float64(m.width))
		m.mouseY = motion.Clamp01(float64(msg.Y) / float64(m.height))
	}

	var cmd tea.Cmd
	m.hue.Point(m.mouseX)
	switch {
	case m.reduced:
		m.hue.Value = m.hue.Target()
	case !m.animating:
		m.animating = true
		cmd = frame()
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		m.ctrl.IsOpen() && !m.intro && m.outsidePanel(msg.X, msg.Y) {
		m.dispatch(overlay.ActionClickOutside)
	}
	return m, cmd
}

// outsidePanel reports whether a cell lies outside the centred panel box.
func (m Model) outsidePanel(x, y int) bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	box := m.panelView()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	left, top := (m.width-w)/2, (m.bodyHeight()-h)/2
	return x < left || x >= left+w || y < top || y >= top+h
}
