package core

import "errors"

var (
	// ErrOutOfBounds reports an index or coordinate outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInvalidSize reports a grid dimension that is zero or negative.
	ErrInvalidSize = errors.New("invalid grid size")
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// CellState is the binary state of a single cell.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// Opposite returns the other state.
func Opposite(s CellState) CellState {
	if s == Alive {
		return Dead
	}
	return Alive
}

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Cell is a grid position with its state. X and Y are assigned when the grid
// is created and never change.
type Cell struct {
	X, Y  int
	State CellState
}

// Alive reports whether the cell is alive.
func (c Cell) Alive() bool { return c.State == Alive }
