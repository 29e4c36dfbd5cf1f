package motion

import "time"

// Typewriter reveals Text one rune per Speed after StartDelay.
type Typewriter struct {
	Text       string
	Speed      time.Duration
	StartDelay time.Duration

	runes   []rune
	shown   int
	started bool
}

// NewTypewriter returns a typewriter for text. With reduced motion the
// whole text is visible immediately.
func NewTypewriter(text string, speed, startDelay time.Duration, reducedMotion bool) *Typewriter {
	tw := &Typewriter{
		Text:       text,
		Speed:      speed,
		StartDelay: startDelay,
		runes:      []rune(text),
	}
	if reducedMotion {
		tw.shown = len(tw.runes)
		tw.started = true
	}
	return tw
}

// Start marks the start delay as elapsed.
func (t *Typewriter) Start() { t.started = true }

// Started reports whether the reveal has begun.
func (t *Typewriter) Started() bool { return t.started }

// Tick reveals one more rune and reports whether more remain.
func (t *Typewriter) Tick() bool {
	if !t.started {
		return true
	}
	if t.shown < len(t.runes) {
		t.shown++
	}
	return !t.Done()
}

// Shown is the revealed prefix.
func (t *Typewriter) Shown() string {
	return string(t.runes[:t.shown])
}

// Done reports whether the whole text is visible.
func (t *Typewriter) Done() bool {
	return t.shown >= len(t.runes)
}

// Cursor reports whether a blinking cursor should trail the text.
func (t *Typewriter) Cursor() bool {
	return t.started && !t.Done()
}
