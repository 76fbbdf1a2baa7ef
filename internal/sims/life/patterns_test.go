package life

import (
	"errors"
	"slices"
	"testing"

	"mad-life/internal/core"
)

func stamped(t *testing.T, l *Life, name string, x, y int) Pattern {
	t.Helper()
	p, ok := Lookup(name)
	if !ok {
		t.Fatalf("pattern %q not registered", name)
	}
	if err := Stamp(l, p, x, y); err != nil {
		t.Fatalf("Stamp(%q): %v", name, err)
	}
	return p
}

func TestBuiltinPatternsRegistered(t *testing.T) {
	want := []string{"beacon", "beehive", "blinker", "block", "glider", "gosper-gun", "lwss", "pulsar", "toad"}
	if got := Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, expected %v", got, want)
	}
	sizes := map[string]core.Size{
		"blinker":    {W: 3, H: 1},
		"pulsar":     {W: 13, H: 13},
		"gosper-gun": {W: 36, H: 9},
		"lwss":       {W: 5, H: 4},
	}
	for name, size := range sizes {
		p, _ := Lookup(name)
		if p.Bounds() != size {
			t.Fatalf("%s bounds = %+v, expected %+v", name, p.Bounds(), size)
		}
	}
}

func TestStillLifes(t *testing.T) {
	for _, name := range []string{"block", "beehive"} {
		l := newLife(t, 8, 8)
		stamped(t, l, name, 2, 2)
		before := liveSet(l)
		l.Step()
		if !slices.Equal(before, liveSet(l)) {
			t.Fatalf("%s changed after one step: %v", name, liveSet(l))
		}
	}
}

func TestOscillatorPeriods(t *testing.T) {
	cases := []struct {
		name   string
		period int
		size   int
	}{
		{"blinker", 2, 7},
		{"toad", 2, 8},
		{"beacon", 2, 8},
		{"pulsar", 3, 17},
	}
	for _, tc := range cases {
		l := newLife(t, tc.size, tc.size)
		stamped(t, l, tc.name, 2, 2)
		start := liveSet(l)
		for i := 1; i <= tc.period; i++ {
			l.Step()
			same := slices.Equal(start, liveSet(l))
			if i < tc.period && same {
				t.Fatalf("%s repeated after %d steps, expected period %d", tc.name, i, tc.period)
			}
			if i == tc.period && !same {
				t.Fatalf("%s did not repeat after %d steps", tc.name, tc.period)
			}
		}
	}
}

func TestLWSSMovesLeft(t *testing.T) {
	l := newLife(t, 16, 10)
	p := stamped(t, l, "lwss", 8, 3)
	for i := 0; i < 4; i++ {
		l.Step()
	}
	var want [][2]int
	for _, c := range p.Cells() {
		want = append(want, [2]int{8 + c.X - 2, 3 + c.Y})
	}
	expectLive(t, l, "lwss after four steps", want...)
}

func TestGliderGunFires(t *testing.T) {
	l := newLife(t, 64, 40)
	stamped(t, l, "gosper-gun", 1, 1)
	gun := liveSet(l)
	if len(gun) != 36 {
		t.Fatalf("gun has %d cells, expected 36", len(gun))
	}
	for i := 0; i < 30; i++ {
		l.Step()
	}
	if l.Population() != 41 {
		t.Fatalf("population after 30 steps = %d, expected gun plus one glider (41)", l.Population())
	}
	for _, c := range gun {
		if l.State(c[0], c[1]) != core.Alive {
			t.Fatalf("gun cell (%d,%d) missing after one period", c[0], c[1])
		}
	}
}

func TestStampOutOfBoundsIsAtomic(t *testing.T) {
	l := newLife(t, 10, 10)
	seed(t, l, [2]int{0, 0})
	before := liveSet(l)

	p, _ := Lookup("pulsar")
	err := Stamp(l, p, 0, 0)
	if !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("Stamp error = %v, expected ErrOutOfBounds", err)
	}
	if !slices.Equal(before, liveSet(l)) {
		t.Fatalf("rejected stamp mutated the grid: %v", liveSet(l))
	}

	g, _ := Lookup("glider")
	if err := Stamp(l, g, -1, 4); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("negative offset error = %v, expected ErrOutOfBounds", err)
	}
}

func TestStampIsUnion(t *testing.T) {
	l := newLife(t, 10, 10)
	seed(t, l, [2]int{9, 9})
	stamped(t, l, "block", 1, 1)
	stamped(t, l, "block", 1, 1)
	if l.Population() != 5 {
		t.Fatalf("population = %d, expected block plus the existing cell", l.Population())
	}
	if l.State(9, 9) != core.Alive {
		t.Fatal("stamping must not clear unrelated cells")
	}
}

func TestSeedDefaultScene(t *testing.T) {
	l := newLife(t, 64, 40)
	if err := Seed(l, DefaultScene...); err != nil {
		t.Fatalf("Seed(DefaultScene): %v", err)
	}
	want := 36 + 3*3 + 2*48
	if l.Population() != want {
		t.Fatalf("scene population = %d, expected %d", l.Population(), want)
	}
}

func TestSeedUnknownPattern(t *testing.T) {
	l := newLife(t, 10, 10)
	if err := Seed(l, Placement{Pattern: "nope"}); err == nil {
		t.Fatal("expected error for unknown pattern")
	}
}

func TestPatternCellsAreCopies(t *testing.T) {
	p, _ := Lookup("block")
	cells := p.Cells()
	cells[0] = Point{X: 100, Y: 100}
	again, _ := Lookup("block")
	if again.Cells()[0] == (Point{X: 100, Y: 100}) {
		t.Fatal("Cells must not expose the registered slice")
	}
}
