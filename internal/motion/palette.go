package motion

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the pair of background colours derived from the pointer.
type Palette struct {
	Primary   colorful.Color
	Secondary colorful.Color
	// Hue of Primary in degrees, kept for CSS variables.
	Hue float64
}

// PaletteAt computes the background colours for a normalised pointer
// position. Moving right cools the hue, moving up saturates and lightens.
func PaletteAt(x, y float64) Palette {
	x, y = Clamp01(x), Clamp01(y)

	hueCool := 200 + x*80
	s := 65 + (1-y)*25
	l1 := 52 + (1-y)*8
	l2 := 48 + (1-y)*6

	h1 := hueCool
	h2 := math.Mod(hueCool+30, 360)

	return Palette{
		Primary:   colorful.Hsl(h1, s/100, l1/100),
		Secondary: colorful.Hsl(h2, (s-8)/100, l2/100),
		Hue:       h1,
	}
}

// HueColor is a fully saturated mid-light colour at hue h, used for accents
// that follow Hue.
func HueColor(h float64) colorful.Color {
	return colorful.Hsl(math.Mod(h+360, 360), 0.7, 0.6)
}
