package core

import "math"

// Layout places grid cells on screen. Each cell is a Scale-sized square and
// neighbouring squares are Spacing pixels apart.
type Layout struct {
	Scale   float64
	Spacing float64
}

// Pitch is the distance between the origins of adjacent cells.
func (l Layout) Pitch() float64 { return l.Scale + l.Spacing }

// Origin returns the top-left corner of cell (x, y) in screen pixels.
func (l Layout) Origin(x, y int) (float64, float64) {
	p := l.Pitch()
	off := l.Scale/2 + l.Spacing
	return p*float64(x) + off, p*float64(y) + off
}

// Center returns the centre of cell (x, y) in screen pixels.
func (l Layout) Center(x, y int) (float64, float64) {
	ox, oy := l.Origin(x, y)
	return ox + l.Scale/2, oy + l.Scale/2
}

// Extent returns the screen size needed to show a grid of the given size,
// including the trailing margin.
func (l Layout) Extent(size Size) (float64, float64) {
	ox, oy := l.Origin(size.W, size.H)
	return ox, oy
}

// CellAt maps a pointer position back to grid coordinates. It is the inverse
// of Origin: every point in [Origin, Origin+Pitch) maps to the same cell.
func (l Layout) CellAt(px, py float64, size Size) (int, int, bool) {
	p := l.Pitch()
	if p <= 0 {
		return 0, 0, false
	}
	off := l.Spacing + l.Scale/2
	fx := math.Floor((px - off) / p)
	fy := math.Floor((py - off) / p)
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return 0, 0, false
	}
	if fx < 0 || fy < 0 || fx >= float64(size.W) || fy >= float64(size.H) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// IndexAt is CellAt folded into a row-major index.
func (l Layout) IndexAt(px, py float64, size Size) (int, bool) {
	x, y, ok := l.CellAt(px, py, size)
	if !ok {
		return 0, false
	}
	return x + y*size.W, true
}
