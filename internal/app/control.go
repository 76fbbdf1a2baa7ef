package app

import "mad-life/internal/core"

// Slider ranges exposed on the HUD.
const (
	MinScale   = 5
	MaxScale   = 100
	MinSpacing = 1
	MaxSpacing = 100
	MinTPS     = 1
	MaxTPS     = 120
)

// Control is the mutable per-run state shared by the input controller, the
// loop and the HUD: cell geometry, clear colour and transient pointer state.
// Playback state lives in the loop's scheduler.
type Control struct {
	Scale   float64
	Spacing float64

	// ClearColor holds red, green and blue in [0, 1].
	ClearColor [3]float64

	LeftPressed  bool
	RightPressed bool
	PointerX     float64
	PointerY     float64
	HasPointer   bool

	ViewportW int
	ViewportH int
}

// NewControl returns a Control with default geometry and a dark background.
func NewControl(scale, spacing float64) *Control {
	c := &Control{ClearColor: [3]float64{0.08, 0.08, 0.1}}
	c.Scale = clamp(scale, MinScale, MaxScale)
	c.Spacing = clamp(spacing, MinSpacing, MaxSpacing)
	return c
}

// Layout returns the current cell placement.
func (c *Control) Layout() core.Layout {
	return core.Layout{Scale: c.Scale, Spacing: c.Spacing}
}

// Pointer returns the last known pointer position.
func (c *Control) Pointer() (float64, float64, bool) {
	return c.PointerX, c.PointerY, c.HasPointer
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
