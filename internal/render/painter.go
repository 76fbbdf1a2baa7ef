//go:build ebiten

package render

import (
	"image/color"

	"mad-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CellPainter draws snapshot records as filled squares.
type CellPainter struct {
	Palette Palette
	pixel   *ebiten.Image
}

// NewCellPainter allocates a painter using the given palette.
func NewCellPainter(p Palette) *CellPainter {
	cp := &CellPainter{Palette: p}
	cp.pixel = ebiten.NewImage(1, 1)
	cp.pixel.Fill(color.White)
	return cp
}

// Draw paints every record onto dst.
func (cp *CellPainter) Draw(dst *ebiten.Image, cells []life.Instance) {
	for _, in := range cells {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(in.Scale, in.Scale)
		op.GeoM.Translate(in.TX, in.TY)
		op.ColorScale.ScaleWithColor(cp.Palette.For(in.Alive))
		dst.DrawImage(cp.pixel, op)
	}
}

// Outline strokes a one-pixel frame just outside a cell.
func Outline(dst *ebiten.Image, in life.Instance, clr color.Color) {
	x := float32(in.TX) - 1
	y := float32(in.TY) - 1
	s := float32(in.Scale) + 2
	vector.StrokeRect(dst, x, y, s, s, 1, clr, false)
}
