package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHue_SettlesNearTarget(t *testing.T) {
	h := NewHue()
	h.Point(1)
	require.Equal(t, 360.0, h.Target())

	settled := false
	for i := 0; i < 500 && !settled; i++ {
		settled = h.Step()
	}
	assert.True(t, settled)
	assert.InDelta(t, 360, h.Value, 0.5)
}

func TestHue_ClampsPointer(t *testing.T) {
	h := NewHue()
	h.Point(-3)
	assert.Equal(t, 0.0, h.Target())
	h.Point(7)
	assert.Equal(t, 360.0, h.Target())
}

func TestApproach(t *testing.T) {
	assert.InDelta(t, 18.0, Approach(0, 100, 0.18), 1e-9)
	assert.Equal(t, 50.0, Approach(50, 50, HueFollow))
}

func TestPaletteAt(t *testing.T) {
	p := PaletteAt(0, 1)
	assert.InDelta(t, 200, p.Hue, 1e-9)

	h, s, l := p.Primary.Hsl()
	assert.InDelta(t, 200, h, 0.5)
	assert.InDelta(t, 0.65, s, 0.01)
	assert.InDelta(t, 0.52, l, 0.01)

	p = PaletteAt(1, 0)
	assert.InDelta(t, 280, p.Hue, 1e-9)
	h2, _, _ := p.Secondary.Hsl()
	assert.InDelta(t, 310, h2, 0.5)
}

func TestPaletteAt_ClampsInput(t *testing.T) {
	assert.Equal(t, PaletteAt(1, 1), PaletteAt(4, 9))
}

func TestTypewriter(t *testing.T) {
	tw := NewTypewriter("HEY", 100*time.Millisecond, 200*time.Millisecond, false)
	assert.Equal(t, "", tw.Shown())
	assert.False(t, tw.Cursor())

	tw.Tick()
	assert.Equal(t, "", tw.Shown(), "ticks before start reveal nothing")

	tw.Start()
	assert.True(t, tw.Tick())
	assert.Equal(t, "H", tw.Shown())
	assert.True(t, tw.Cursor())

	tw.Tick()
	assert.False(t, tw.Tick())
	assert.Equal(t, "HEY", tw.Shown())
	assert.True(t, tw.Done())
	assert.False(t, tw.Cursor())
}

func TestTypewriter_Runes(t *testing.T) {
	tw := NewTypewriter("héy", time.Millisecond, 0, false)
	tw.Start()
	tw.Tick()
	tw.Tick()
	assert.Equal(t, "hé", tw.Shown())
}

func TestTypewriter_ReducedMotion(t *testing.T) {
	tw := NewTypewriter("HEY, I'M ELIF DIKMEN", 100*time.Millisecond, 0, true)
	assert.True(t, tw.Done())
	assert.Equal(t, "HEY, I'M ELIF DIKMEN", tw.Shown())
	assert.False(t, tw.Cursor())
}
