package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elifdikmn/elif-dev/internal/content"
	"github.com/elifdikmn/elif-dev/internal/overlay"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(content.Default(), Options{ReducedMotion: true})
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = send(t, m, keyMsg(k))
	}
	return m
}

func TestModel_Scenario(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, overlay.State{Open: false, View: overlay.List}, m.State())
	assert.Contains(t, m.View(), "HEY, I'M ELIF DIKMEN")

	m = press(t, m, "m")
	require.Equal(t, overlay.State{Open: true, View: overlay.List}, m.State())
	assert.Contains(t, m.View(), "CONTACT")

	m = press(t, m, "2")
	require.Equal(t, overlay.State{Open: true, View: overlay.Projects}, m.State())
	assert.Contains(t, m.View(), "COMING SOON")

	m = press(t, m, "b")
	require.Equal(t, overlay.State{Open: true, View: overlay.List}, m.State())

	m = press(t, m, "esc")
	require.Equal(t, overlay.State{Open: false, View: overlay.List}, m.State())
}

func TestModel_HeroShortcuts(t *testing.T) {
	m := press(t, newTestModel(t), "a")
	assert.Equal(t, overlay.State{Open: true, View: overlay.About}, m.State())
	assert.Contains(t, m.View(), "ABOUT ME")

	m = press(t, newTestModel(t), "p")
	assert.Equal(t, overlay.State{Open: true, View: overlay.Projects}, m.State())
}

func TestModel_ShortcutsIgnoredInsideList(t *testing.T) {
	m := press(t, newTestModel(t), "m", "a")
	assert.Equal(t, overlay.State{Open: true, View: overlay.List}, m.State())
}

func TestModel_ListCursor(t *testing.T) {
	m := press(t, newTestModel(t), "m", "down", "down", "down", "enter")
	assert.Equal(t, overlay.State{Open: true, View: overlay.Contact}, m.State())
	assert.Contains(t, m.View(), "eelifddikmen@gmail.com")

	m = press(t, m, "b", "k", "enter")
	assert.Equal(t, overlay.State{Open: true, View: overlay.About}, m.State())
}

func TestModel_HomeCloses(t *testing.T) {
	m := press(t, newTestModel(t), "m", "1")
	assert.False(t, m.State().Open)
}

func TestModel_ToggleResetsToList(t *testing.T) {
	m := press(t, newTestModel(t), "p", "m")
	assert.Equal(t, overlay.State{Open: false, View: overlay.Projects}, m.State())

	m = press(t, m, "m")
	assert.Equal(t, overlay.State{Open: true, View: overlay.List}, m.State())
}

func TestModel_ClickOutsideCloses(t *testing.T) {
	m := press(t, newTestModel(t), "m")

	inside := tea.MouseMsg{X: 60, Y: 19, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	m = send(t, m, inside)
	assert.True(t, m.State().Open, "click on the panel keeps the overlay open")

	outside := tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	m = send(t, m, outside)
	assert.Equal(t, overlay.State{Open: false, View: overlay.List}, m.State())
}

func TestModel_MouseMovesHue(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.MouseMsg{X: 120, Y: 0, Action: tea.MouseActionMotion})
	assert.InDelta(t, 360, m.hue.Value, 0.001, "reduced motion snaps to the target")
}

func TestModel_IntroAndTypewriter(t *testing.T) {
	m := New(content.Default(), Options{})
	require.NotNil(t, m.Init())
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Contains(t, m.View(), "W E L C O M E")

	m = send(t, m, introDoneMsg{}, typeStartMsg{}, typeTickMsg{}, typeTickMsg{}, typeTickMsg{})
	assert.Equal(t, "HEY", m.headline.Shown())
	assert.NotContains(t, m.View(), "W E L C O M E")
}

func TestModel_KeySkipsIntro(t *testing.T) {
	m := New(content.Default(), Options{})
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = press(t, m, "m")
	assert.False(t, m.intro)
	assert.False(t, m.State().Open, "the skipping key is not also a command")
}

func TestModel_LateIntroTimerAfterSkip(t *testing.T) {
	m := New(content.Default(), Options{})
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = press(t, m, "m")
	require.False(t, m.intro)

	m = send(t, m, typeStartMsg{}, typeTickMsg{})
	require.Equal(t, "H", m.headline.Shown())

	next, cmd := m.Update(introDoneMsg{})
	assert.Nil(t, cmd, "the splash timer from Init must not restart the headline")
	m = next.(Model)

	next, cmd = m.Update(typeStartMsg{})
	assert.Nil(t, cmd, "a second start must not begin another tick chain")
	m = next.(Model)
	assert.Equal(t, "H", m.headline.Shown())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
