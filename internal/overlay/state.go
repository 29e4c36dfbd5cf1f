package overlay

import (
	"fmt"
	"strconv"
	"strings"
)

// State is the overlay's ephemeral UI state. View is only meaningful while
// Open is true; closing leaves it untouched.
type State struct {
	Open bool `json:"open"`
	View View `json:"view"`
}

// Initial is the state at page load.
func Initial() State {
	return State{Open: false, View: List}
}

// Showing reports whether the overlay is open on the named panel.
func (s State) Showing(view string) bool {
	return s.Open && string(s.View) == view
}

func (s State) String() string {
	if !s.Open {
		return "closed(" + string(s.View) + ")"
	}
	return "open(" + string(s.View) + ")"
}

// ParseState rebuilds a State from its form encoding. An empty open value
// means closed and an empty view means List.
func ParseState(open, view string) (State, error) {
	st := Initial()

	if o := strings.TrimSpace(open); o != "" {
		b, err := strconv.ParseBool(o)
		if err != nil {
			return Initial(), fmt.Errorf("parse open flag %q: %w", open, err)
		}
		st.Open = b
	}

	if strings.TrimSpace(view) != "" {
		v, err := ParseView(view)
		if err != nil {
			return Initial(), err
		}
		st.View = v
	}
	return st, nil
}
