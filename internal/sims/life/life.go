package life

import (
	"fmt"

	"mad-life/internal/core"
)

// Life implements Conway's Game of Life on a bounded grid. Cells beyond the
// edge count as dead; there is no wrapping.
type Life struct {
	w, h int
	cur  *core.Grid
	nxt  *core.Grid
	gen  int
}

// New returns a Life simulation with the provided dimensions, all cells dead.
func New(w, h int) (*Life, error) {
	cur, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	return &Life{w: w, h: h, cur: cur, nxt: nxt}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Grid exposes the current generation. It is replaced on every Step, so
// callers must not hold on to it across ticks.
func (l *Life) Grid() *core.Grid { return l.cur }

// Index returns the linear index for (x, y).
func (l *Life) Index(x, y int) int { return x + y*l.w }

// Generation returns the number of steps since creation or the last Clear.
func (l *Life) Generation() int { return l.gen }

// Set changes the state of the cell at index.
func (l *Life) Set(index int, s core.CellState) error {
	return l.cur.Set(index, s)
}

// SetXY changes the state of the cell at (x, y).
func (l *Life) SetXY(x, y int, s core.CellState) error {
	if !l.cur.InBounds(x, y) {
		return fmt.Errorf("cell (%d,%d) on %dx%d grid: %w", x, y, l.w, l.h, core.ErrOutOfBounds)
	}
	return l.cur.Set(l.Index(x, y), s)
}

// State returns the state at (x, y); off-grid positions are dead.
func (l *Life) State(x, y int) core.CellState { return l.cur.StateAt(x, y) }

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	l.cur.Clear()
	l.gen = 0
}

// Randomize fills the board with live cells at the given density.
func (l *Life) Randomize(seed int64, density float64) {
	core.NewRNG(seed).FillStates(l.cur.Cells(), density)
	l.gen = 0
}

// Population counts the live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur.Cells() {
		if c.State == core.Alive {
			n++
		}
	}
	return n
}

// Neighbors counts the live cells among the up to eight neighbours of (x, y).
func (l *Life) Neighbors(x, y int) int {
	return neighbors(l.cur, x, y)
}

func neighbors(g *core.Grid, x, y int) int {
	cells := g.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			if cells[nx+ny*g.W].State == core.Alive {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation. Neighbour counts are read
// from the current buffer only; results go to the spare buffer, which is then
// swapped in.
func (l *Life) Step() {
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for i, c := range cur {
		n := neighbors(l.cur, c.X, c.Y)
		nxt[i].State = Next(c.State, n)
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Next applies the B3/S23 rule to one cell.
func Next(s core.CellState, neighbors int) core.CellState {
	if neighbors == 3 || (s == core.Alive && neighbors == 2) {
		return core.Alive
	}
	return core.Dead
}
