// Package motion holds the cosmetic timing used by the landing page: the
// intro splash, the typewriter headline, and the mouse-driven colour
// palette. Nothing here affects navigation state.
package motion

import (
	"math"
	"time"
)

const (
	// IntroDuration is how long the "Welcome" splash stays up.
	IntroDuration = 2200 * time.Millisecond

	// HueFollow is the fraction of the remaining distance the hue covers per frame.
	HueFollow = 0.08

	// FrameInterval is the animation tick.
	FrameInterval = time.Second / 60
)

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Approach moves prev towards target by factor of the remaining distance.
func Approach(prev, target, factor float64) float64 {
	return prev + (target-prev)*factor
}

// Settled reports whether v is within eps of target.
func Settled(v, target, eps float64) bool {
	return math.Abs(target-v) <= eps
}

// Hue tracks a target hue derived from the horizontal pointer position.
type Hue struct {
	Value  float64
	target float64
}

// NewHue starts at 180 degrees, the page's resting colour.
func NewHue() *Hue {
	return &Hue{Value: 180, target: 180}
}

// Point sets the target from a normalised pointer x.
func (h *Hue) Point(x float64) {
	h.target = Clamp01(x) * 360
}

// Target returns the hue the value is converging on.
func (h *Hue) Target() float64 { return h.target }

// Step advances one frame and reports whether the value has settled.
func (h *Hue) Step() bool {
	h.Value = Approach(h.Value, h.target, HueFollow)
	return Settled(h.Value, h.target, 0.5)
}
