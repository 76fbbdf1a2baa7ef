package core

import (
	"errors"
	"testing"
)

func TestNewGridAssignsCoordinates(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Len() != 12 {
		t.Fatalf("expected 12 cells, got %d", g.Len())
	}
	for i, c := range g.Cells() {
		if c.X != i%4 || c.Y != i/4 {
			t.Fatalf("cell %d has coordinates (%d,%d)", i, c.X, c.Y)
		}
		if c.State != Dead {
			t.Fatalf("cell %d starts %v, expected dead", i, c.State)
		}
		if g.Index(c.X, c.Y) != i {
			t.Fatalf("Index(%d,%d) = %d, expected %d", c.X, c.Y, g.Index(c.X, c.Y), i)
		}
	}
}

func TestNewGridRejectsEmptyDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewGrid(%d,%d) error = %v, expected ErrInvalidSize", dims[0], dims[1], err)
		}
	}
}

func TestSetOutOfBoundsLeavesGridUnchanged(t *testing.T) {
	g, _ := NewGrid(3, 3)
	if err := g.Set(4, Alive); err != nil {
		t.Fatalf("Set(4): %v", err)
	}
	before := append([]Cell(nil), g.Cells()...)

	for _, idx := range []int{9, 10, -1} {
		err := g.Set(idx, Alive)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d) error = %v, expected ErrOutOfBounds", idx, err)
		}
	}
	if _, err := g.At(9); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("At(9) error = %v, expected ErrOutOfBounds", err)
	}
	for i, c := range g.Cells() {
		if c != before[i] {
			t.Fatalf("cell %d changed from %+v to %+v", i, before[i], c)
		}
	}
}

func TestClearKeepsCoordinates(t *testing.T) {
	g, _ := NewGrid(2, 2)
	for i := 0; i < g.Len(); i++ {
		_ = g.Set(i, Alive)
	}
	g.Clear()
	for i, c := range g.Cells() {
		if c.State != Dead {
			t.Fatalf("cell %d still alive after Clear", i)
		}
		if c.X != i%2 || c.Y != i/2 {
			t.Fatalf("cell %d coordinates changed to (%d,%d)", i, c.X, c.Y)
		}
	}
}

func TestStateAtOffGridIsDead(t *testing.T) {
	g, _ := NewGrid(2, 2)
	_ = g.Set(0, Alive)
	if g.StateAt(0, 0) != Alive {
		t.Fatal("expected (0,0) alive")
	}
	if g.StateAt(-1, 0) != Dead || g.StateAt(2, 0) != Dead || g.StateAt(0, 2) != Dead {
		t.Fatal("off-grid positions must read as dead")
	}
}

func TestOpposite(t *testing.T) {
	if Opposite(Alive) != Dead || Opposite(Dead) != Alive {
		t.Fatal("Opposite must swap the two states")
	}
	if Opposite(Opposite(Alive)) != Alive {
		t.Fatal("Opposite applied twice must be the identity")
	}
}
