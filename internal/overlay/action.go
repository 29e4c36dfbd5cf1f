package overlay

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a user intent coming from a control on the page or a key.
type Action string

const (
	// ActionToggle is the menu button.
	ActionToggle Action = "toggle"
	// ActionOpenAbout and ActionOpenProjects are the hero shortcuts.
	ActionOpenAbout    Action = "open-about"
	ActionOpenProjects Action = "open-projects"

	// Controls inside the overlay.
	ActionHome           Action = "home"
	ActionSelectProjects Action = "select-projects"
	ActionSelectAbout    Action = "select-about"
	ActionSelectContact  Action = "select-contact"
	ActionBack           Action = "back"
	ActionClose          Action = "close"
	ActionClickOutside   Action = "click-outside"

	// ActionEscape is the Escape key.
	ActionEscape Action = "escape"
)

var actions = []Action{
	ActionToggle,
	ActionOpenAbout,
	ActionOpenProjects,
	ActionHome,
	ActionSelectProjects,
	ActionSelectAbout,
	ActionSelectContact,
	ActionBack,
	ActionClose,
	ActionClickOutside,
	ActionEscape,
}

// ErrUnknownAction is returned when an action name is not recognised.
var ErrUnknownAction = errors.New("unknown overlay action")

// ParseAction converts an action name into an Action.
func ParseAction(s string) (Action, error) {
	name := Action(strings.ToLower(strings.TrimSpace(s)))
	for _, a := range actions {
		if a == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

func (a Action) String() string { return string(a) }

// insideOverlay reports whether the action's control only exists while the
// overlay is rendered.
func (a Action) insideOverlay() bool {
	switch a {
	case ActionHome, ActionSelectProjects, ActionSelectAbout, ActionSelectContact,
		ActionBack, ActionClickOutside:
		return true
	}
	return false
}

// Apply returns the state that results from a in st. Actions whose control
// is not rendered in st leave it unchanged.
func Apply(st State, a Action) State {
	if !st.Open && a.insideOverlay() {
		return st
	}

	switch a {
	case ActionToggle:
		if st.Open {
			return State{Open: false, View: st.View}
		}
		return State{Open: true, View: List}
	case ActionOpenAbout:
		return State{Open: true, View: About}
	case ActionOpenProjects:
		return State{Open: true, View: Projects}
	case ActionSelectProjects:
		return State{Open: st.Open, View: Projects}
	case ActionSelectAbout:
		return State{Open: st.Open, View: About}
	case ActionSelectContact:
		return State{Open: st.Open, View: Contact}
	case ActionBack:
		return State{Open: st.Open, View: List}
	case ActionHome, ActionClose, ActionClickOutside, ActionEscape:
		return State{Open: false, View: st.View}
	}
	return st
}
