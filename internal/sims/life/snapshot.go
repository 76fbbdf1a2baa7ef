package life

import "mad-life/internal/core"

// Transform places a unit square on screen: scale it uniformly by Scale, then
// translate its top-left corner to (TX, TY).
type Transform struct {
	Scale  float64
	TX, TY float64
}

// Instance is the render record for one cell.
type Instance struct {
	X, Y int
	Transform
	Alive bool
}

// Contains reports whether the screen point (px, py) falls inside the square.
func (in Instance) Contains(px, py float64) bool {
	return px >= in.TX && px < in.TX+in.Scale && py >= in.TY && py < in.TY+in.Scale
}

// Snapshot returns a fresh render record for every cell in row-major order.
func (l *Life) Snapshot(layout core.Layout) []Instance {
	return l.AppendSnapshot(make([]Instance, 0, l.cur.Len()), layout)
}

// AppendSnapshot appends the render records to dst and returns the result.
func (l *Life) AppendSnapshot(dst []Instance, layout core.Layout) []Instance {
	for _, c := range l.cur.Cells() {
		tx, ty := layout.Origin(c.X, c.Y)
		dst = append(dst, Instance{
			X:         c.X,
			Y:         c.Y,
			Transform: Transform{Scale: layout.Scale, TX: tx, TY: ty},
			Alive:     c.State == core.Alive,
		})
	}
	return dst
}
