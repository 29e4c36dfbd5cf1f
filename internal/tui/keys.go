package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/elifdikmn/elif-dev/internal/overlay"
)

type keyMap struct {
	Menu     key.Binding
	Projects key.Binding
	About    key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Item     key.Binding
	Back     key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Projects: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "see my projects"),
		),
		About: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "more about me"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Item: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace", "left", "h"),
			key.WithHelp("b", "back"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// contextHelp is the subset of bindings that apply to one overlay state.
type contextHelp []key.Binding

func (h contextHelp) ShortHelp() []key.Binding  { return h }
func (h contextHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k keyMap) forState(st overlay.State) contextHelp {
	switch {
	case !st.Open:
		return contextHelp{k.Menu, k.Projects, k.About, k.Quit}
	case st.View == overlay.List:
		return contextHelp{k.Up, k.Down, k.Select, k.Item, k.Close, k.Quit}
	default:
		return contextHelp{k.Back, k.Close, k.Quit}
	}
}
