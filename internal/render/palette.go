package render

import (
	"image/color"
	"math"
)

// Palette holds the colours of live and dead cells.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
}

// DefaultPalette draws live cells in warm white on a slate background.
var DefaultPalette = Palette{
	Alive: color.RGBA{R: 240, G: 236, B: 220, A: 255},
	Dead:  color.RGBA{R: 40, G: 44, B: 52, A: 255},
}

// For returns the colour for a cell state.
func (p Palette) For(alive bool) color.RGBA {
	if alive {
		return p.Alive
	}
	return p.Dead
}

// ClearRGBA converts a red, green, blue triple in [0, 1] to an opaque colour.
// Components outside the range are clamped.
func ClearRGBA(rgb [3]float64) color.RGBA {
	return color.RGBA{R: unit8(rgb[0]), G: unit8(rgb[1]), B: unit8(rgb[2]), A: 255}
}

func unit8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
