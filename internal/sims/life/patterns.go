package life

import (
	"fmt"
	"sort"

	"mad-life/internal/core"
)

// Point is a cell offset relative to a pattern's top-left corner.
type Point struct{ X, Y int }

// Pattern is a named, immutable set of live cell offsets.
type Pattern struct {
	Name  string
	cells []Point
}

// Cells returns a copy of the pattern's live offsets.
func (p Pattern) Cells() []Point { return append([]Point(nil), p.cells...) }

// Bounds returns the smallest size that holds the pattern.
func (p Pattern) Bounds() core.Size {
	var s core.Size
	for _, c := range p.cells {
		if c.X+1 > s.W {
			s.W = c.X + 1
		}
		if c.Y+1 > s.H {
			s.H = c.Y + 1
		}
	}
	return s
}

// Parse builds a pattern from rows of text where 'O' marks a live cell and
// any other rune a dead one.
func Parse(name string, rows ...string) Pattern {
	p := Pattern{Name: name}
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r == 'O' {
				p.cells = append(p.cells, Point{X: x, Y: y})
			}
		}
	}
	return p
}

var patterns = map[string]Pattern{}

// Register adds a pattern under its name, replacing any previous entry.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the registered pattern with the given name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for n := range patterns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Stamp sets the pattern's cells alive with its top-left corner at (x, y).
// If any cell would land off the grid nothing is changed.
func Stamp(l *Life, p Pattern, x, y int) error {
	g := l.Grid()
	for _, c := range p.cells {
		if !g.InBounds(x+c.X, y+c.Y) {
			return fmt.Errorf("pattern %q at (%d,%d): cell (%d,%d): %w", p.Name, x, y, x+c.X, y+c.Y, core.ErrOutOfBounds)
		}
	}
	for _, c := range p.cells {
		if err := l.Set(l.Index(x+c.X, y+c.Y), core.Alive); err != nil {
			return err
		}
	}
	return nil
}

// Placement positions a registered pattern on the grid.
type Placement struct {
	Pattern string
	X, Y    int
}

// Seed stamps each placement in order. It stops at the first unknown pattern
// or out-of-bounds placement; earlier placements stay applied.
func Seed(l *Life, placements ...Placement) error {
	for _, pl := range placements {
		p, ok := Lookup(pl.Pattern)
		if !ok {
			return fmt.Errorf("unknown pattern %q", pl.Pattern)
		}
		if err := Stamp(l, p, pl.X, pl.Y); err != nil {
			return err
		}
	}
	return nil
}

// DefaultScene is the startup arrangement for the default 64x40 grid: a
// glider gun firing toward the lower right, three blinkers and two pulsars.
var DefaultScene = []Placement{
	{Pattern: "gosper-gun", X: 1, Y: 1},
	{Pattern: "blinker", X: 44, Y: 3},
	{Pattern: "blinker", X: 50, Y: 3},
	{Pattern: "blinker", X: 56, Y: 3},
	{Pattern: "pulsar", X: 2, Y: 24},
	{Pattern: "pulsar", X: 18, Y: 24},
}

func init() {
	Register(Parse("block",
		"OO",
		"OO",
	))
	Register(Parse("beehive",
		".OO.",
		"O..O",
		".OO.",
	))
	Register(Parse("blinker",
		"OOO",
	))
	Register(Parse("toad",
		".OOO",
		"OOO.",
	))
	Register(Parse("beacon",
		"OO..",
		"O...",
		"...O",
		"..OO",
	))
	Register(Parse("pulsar",
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..",
	))
	Register(Parse("glider",
		".O.",
		"..O",
		"OOO",
	))
	Register(Parse("lwss",
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	))
	Register(Parse("gosper-gun",
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	))
}
