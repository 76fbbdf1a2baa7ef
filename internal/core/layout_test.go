package core

import "testing"

func TestCellAtInvertsOrigin(t *testing.T) {
	size := Size{W: 17, H: 11}
	layouts := []Layout{
		{Scale: 12, Spacing: 2},
		{Scale: 5, Spacing: 1},
		{Scale: 5, Spacing: 100},
		{Scale: 100, Spacing: 1},
		{Scale: 43, Spacing: 10},
		{Scale: 7.5, Spacing: 3.25},
	}
	for _, l := range layouts {
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				cx, cy := l.Center(x, y)
				idx, ok := l.IndexAt(cx, cy, size)
				if !ok {
					t.Fatalf("layout %+v: centre of (%d,%d) mapped out of bounds", l, x, y)
				}
				if idx != x+y*size.W {
					t.Fatalf("layout %+v: centre of (%d,%d) mapped to %d", l, x, y, idx)
				}

				ox, oy := l.Origin(x, y)
				gx, gy, ok := l.CellAt(ox, oy, size)
				if !ok || gx != x || gy != y {
					t.Fatalf("layout %+v: origin of (%d,%d) mapped to (%d,%d,%v)", l, x, y, gx, gy, ok)
				}
			}
		}
	}
}

func TestCellAtRejectsOutside(t *testing.T) {
	l := Layout{Scale: 10, Spacing: 2}
	size := Size{W: 4, H: 3}

	if _, _, ok := l.CellAt(0, 0, size); ok {
		t.Fatal("point in the leading margin must not map to a cell")
	}
	ex, ey := l.Extent(size)
	if _, _, ok := l.CellAt(ex+1, 20, size); ok {
		t.Fatal("point right of the grid must not map to a cell")
	}
	if _, _, ok := l.CellAt(20, ey+1, size); ok {
		t.Fatal("point below the grid must not map to a cell")
	}
	if _, _, ok := l.CellAt(-50, -50, size); ok {
		t.Fatal("negative point must not map to a cell")
	}
}

func TestCellAtDegenerateLayout(t *testing.T) {
	if _, _, ok := (Layout{}).CellAt(5, 5, Size{W: 3, H: 3}); ok {
		t.Fatal("zero pitch layout must not map any point")
	}
}

func TestExtentCoversLastCell(t *testing.T) {
	l := Layout{Scale: 12, Spacing: 2}
	size := Size{W: 64, H: 40}
	ex, ey := l.Extent(size)
	ox, oy := l.Origin(size.W-1, size.H-1)
	if ex < ox+l.Scale || ey < oy+l.Scale {
		t.Fatalf("extent (%v,%v) does not cover last cell at (%v,%v)", ex, ey, ox, oy)
	}
}
