package app

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/sims/life"
)

func newLoop(t *testing.T, tps int, logger *log.Logger) *Loop {
	t.Helper()
	l, err := life.New(5, 5)
	if err != nil {
		t.Fatalf("life.New: %v", err)
	}
	for _, c := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		_ = l.SetXY(c[0], c[1], core.Alive)
	}
	return NewLoop(l, core.NewScheduler(tps), NewControl(10, 2), EditAsymmetric, logger)
}

func TestFrameDoesNotStepWhilePaused(t *testing.T) {
	lp := newLoop(t, 10, nil)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		f := lp.Frame(base.Add(time.Duration(i) * time.Second))
		if f.Generation != 0 {
			t.Fatalf("frame %d advanced to generation %d while paused", i, f.Generation)
		}
		if f.State != core.Paused {
			t.Fatalf("frame %d state = %v", i, f.State)
		}
	}
}

func TestFramePacing(t *testing.T) {
	lp := newLoop(t, 10, nil)
	lp.Handle(KeyPressed{Key: KeyStart}, false)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	f := lp.Frame(base)
	if f.Generation != 1 {
		t.Fatalf("first running frame generation = %d, expected 1", f.Generation)
	}
	f = lp.Frame(base.Add(40 * time.Millisecond))
	if f.Generation != 1 {
		t.Fatalf("early frame stepped to generation %d", f.Generation)
	}
	f = lp.Frame(base.Add(100 * time.Millisecond))
	if f.Generation != 2 {
		t.Fatalf("due frame generation = %d, expected 2", f.Generation)
	}
}

func TestFrameSnapshotReflectsStep(t *testing.T) {
	lp := newLoop(t, 10, nil)
	lp.Handle(KeyPressed{Key: KeyStart}, false)
	f := lp.Frame(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	if len(f.Cells) != 25 {
		t.Fatalf("frame has %d cells", len(f.Cells))
	}
	want := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	for _, in := range f.Cells {
		if in.Alive != want[[2]int{in.X, in.Y}] {
			t.Fatalf("cell (%d,%d) alive=%v after one step", in.X, in.Y, in.Alive)
		}
	}
	if f.Population != 3 {
		t.Fatalf("population = %d", f.Population)
	}
	if f.Scale != 10 || f.Spacing != 2 {
		t.Fatalf("frame geometry = %v/%v", f.Scale, f.Spacing)
	}
}

func TestFramePaintsBeforeSnapshot(t *testing.T) {
	lp := newLoop(t, 10, nil)
	lp.Reset()
	cx, cy := lp.Control().Layout().Center(4, 4)
	lp.Handle(PointerMoved{X: cx, Y: cy}, false)
	lp.Handle(ButtonPressed{Button: ButtonLeft}, false)

	f := lp.Frame(time.Now())
	idx := lp.Life().Index(4, 4)
	if !f.Cells[idx].Alive {
		t.Fatal("painted cell missing from the frame")
	}
	if !f.HasHover || f.Hover != idx {
		t.Fatalf("hover = %d (%v), expected %d", f.Hover, f.HasHover, idx)
	}
}

func TestLoopLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	lp := newLoop(t, 10, log.New(&buf, "", 0))
	lp.Handle(KeyPressed{Key: KeyStart}, false)
	lp.Handle(KeyPressed{Key: KeyStart}, false)
	lp.Handle(KeyPressed{Key: KeyPause}, false)
	lp.Handle(KeyPressed{Key: KeyReset}, false)

	out := buf.String()
	if strings.Count(out, "simulation running") != 1 {
		t.Fatalf("expected one start line, got:\n%s", out)
	}
	if !strings.Contains(out, "simulation paused") || !strings.Contains(out, "grid reset") {
		t.Fatalf("missing log lines:\n%s", out)
	}
}

func TestParameters(t *testing.T) {
	lp := newLoop(t, 10, nil)

	if !lp.SetFloatParameter(ParamScale, 500) {
		t.Fatal("SetFloatParameter(scale) rejected")
	}
	if lp.Control().Scale != MaxScale {
		t.Fatalf("scale = %v, expected clamp to %d", lp.Control().Scale, MaxScale)
	}
	if !lp.SetFloatParameter(ParamSpacing, 0) || lp.Control().Spacing != MinSpacing {
		t.Fatalf("spacing = %v, expected clamp to %d", lp.Control().Spacing, MinSpacing)
	}
	if !lp.SetFloatParameter(ParamClearG, 0.25) || lp.Control().ClearColor[1] != 0.25 {
		t.Fatalf("clear colour = %v", lp.Control().ClearColor)
	}
	if lp.SetFloatParameter(ParamTPS, 5) {
		t.Fatal("tps is an int parameter")
	}
	if lp.SetFloatParameter("bogus", 1) {
		t.Fatal("unknown key accepted")
	}

	if !lp.SetIntParameter(ParamTPS, 30) || lp.Scheduler().TPS() != 30 {
		t.Fatalf("tps = %d, expected 30", lp.Scheduler().TPS())
	}

	snap := lp.Parameters()
	p, ok := snap.Lookup(ParamTPS)
	if !ok || p.Value != "30" {
		t.Fatalf("tps parameter = %+v (%v)", p, ok)
	}
	if p, ok := snap.Lookup(ParamScale); !ok || p.Value != "100" {
		t.Fatalf("scale parameter = %+v (%v)", p, ok)
	}
	if len(lp.ParameterControls()) != 6 {
		t.Fatalf("expected 6 controls, got %d", len(lp.ParameterControls()))
	}
}
