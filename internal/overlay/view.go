// Package overlay holds the navigation state of the full-screen menu overlay:
// which panel is showing and whether the overlay is rendered at all.
//
// Both the web and the terminal frontends drive the same State through
// Apply, so a click on the page and a key press in the terminal produce
// identical transitions.
package overlay

import (
	"errors"
	"fmt"
	"strings"
)

// View names one of the panels rendered inside the overlay.
type View string

const (
	List     View = "list"
	About    View = "about"
	Contact  View = "contact"
	Projects View = "projects"
)

// Views lists every panel in a stable order.
var Views = []View{List, About, Contact, Projects}

// ErrUnknownView is returned when a view name does not match any panel.
var ErrUnknownView = errors.New("unknown overlay view")

// ParseView converts a panel name into a View. Matching ignores case and
// surrounding whitespace.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return List, fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return v, nil
}

// Valid reports whether v is one of the four panels.
func (v View) Valid() bool {
	switch v {
	case List, About, Contact, Projects:
		return true
	}
	return false
}

func (v View) String() string { return string(v) }

// Title is the heading shown at the top of the panel.
func (v View) Title() string {
	switch v {
	case About:
		return "ABOUT ME"
	case Contact:
		return "CONTACT"
	case Projects:
		return "PROJECTS"
	default:
		return "MENU"
	}
}

// MenuItem is one numbered entry of the list panel.
type MenuItem struct {
	Number string
	Label  string
	Action Action
}

// MenuItems returns the list panel entries in display order.
func MenuItems() []MenuItem {
	return []MenuItem{
		{Number: "01", Label: "HOME", Action: ActionHome},
		{Number: "02", Label: "PROJECTS", Action: ActionSelectProjects},
		{Number: "03", Label: "ABOUT", Action: ActionSelectAbout},
		{Number: "04", Label: "CONTACT", Action: ActionSelectContact},
	}
}
