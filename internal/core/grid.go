package core

import "fmt"

// Grid stores a fixed-size 2D grid of cells in row-major order.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a grid with the given dimensions. Every cell starts dead
// and carries the coordinates implied by its position.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	g := &Grid{W: w, H: h, cells: make([]Cell, w*h)}
	for i := range g.cells {
		g.cells[i] = Cell{X: i % w, Y: i / w, State: Dead}
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells exposes the backing slice. Callers may read states directly but must
// not change coordinates.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return x + y*g.W }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell stored at index.
func (g *Grid) At(index int) (Cell, error) {
	if index < 0 || index >= len(g.cells) {
		return Cell{}, g.outOfBounds(index)
	}
	return g.cells[index], nil
}

// StateAt returns the state at (x, y), treating off-grid positions as dead.
func (g *Grid) StateAt(x, y int) CellState {
	if !g.InBounds(x, y) {
		return Dead
	}
	return g.cells[g.Index(x, y)].State
}

// Set changes the state of the cell at index. Out-of-range indices are
// rejected and leave the grid untouched.
func (g *Grid) Set(index int, s CellState) error {
	if index < 0 || index >= len(g.cells) {
		return g.outOfBounds(index)
	}
	g.cells[index].State = s
	return nil
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].State = Dead
	}
}

// CopyFrom copies cell states from src, which must have the same size.
func (g *Grid) CopyFrom(src *Grid) {
	for i := range g.cells {
		g.cells[i].State = src.cells[i].State
	}
}

func (g *Grid) outOfBounds(index int) error {
	return fmt.Errorf("index %d on %dx%d grid: %w", index, g.W, g.H, ErrOutOfBounds)
}
