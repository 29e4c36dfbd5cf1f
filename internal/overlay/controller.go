package overlay

// Controller owns one overlay State and exposes its transitions. It is not
// safe for concurrent use; each page instance or terminal program has its own.
type Controller struct {
	state    State
	onChange func(prev, next State)
}

// NewController returns a controller in the Initial state.
func NewController() *Controller {
	return &Controller{state: Initial()}
}

// NewControllerFrom returns a controller positioned at st.
func NewControllerFrom(st State) *Controller {
	if !st.View.Valid() {
		st.View = List
	}
	return &Controller{state: st}
}

// OnChange registers fn to be called after every transition that changes
// the state. Passing nil removes the observer.
func (c *Controller) OnChange(fn func(prev, next State)) {
	c.onChange = fn
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// IsOpen reports whether the overlay is rendered.
func (c *Controller) IsOpen() bool { return c.state.Open }

// ActiveView returns the selected panel.
func (c *Controller) ActiveView() View { return c.state.View }

// Open shows the overlay on view.
func (c *Controller) Open(view View) {
	c.set(State{Open: true, View: view})
}

// Close hides the overlay. The selected view is kept.
func (c *Controller) Close() {
	c.set(State{Open: false, View: c.state.View})
}

// SelectView switches panels without changing whether the overlay is open.
func (c *Controller) SelectView(view View) {
	c.set(State{Open: c.state.Open, View: view})
}

// Toggle is the menu button: a closed overlay opens on the list, an open
// one closes.
func (c *Controller) Toggle() {
	if c.state.Open {
		c.Close()
		return
	}
	c.Open(List)
}

// Back returns to the list panel.
func (c *Controller) Back() {
	c.SelectView(List)
}

// HandleKey closes the overlay on Escape and ignores every other key. It
// reports whether the key was consumed.
func (c *Controller) HandleKey(key string) bool {
	switch key {
	case "Escape", "esc":
		c.Close()
		return true
	}
	return false
}

// Dispatch applies a named action.
func (c *Controller) Dispatch(a Action) {
	c.set(Apply(c.state, a))
}

func (c *Controller) set(next State) {
	if !next.View.Valid() {
		next.View = List
	}
	prev := c.state
	c.state = next
	if prev != next && c.onChange != nil {
		c.onChange(prev, next)
	}
}
