package app

import (
	"log"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/sims/life"
)

// Frame is everything a renderer needs for one redraw. Cells is freshly
// allocated per frame and owned by the receiver.
type Frame struct {
	Cells      []life.Instance
	ClearColor [3]float64
	Scale      float64
	Spacing    float64

	State      core.RunState
	Generation int
	Population int
	StepTime   time.Duration

	Hover    int
	HasHover bool
}

// Loop drives one simulation: it owns the grid, the scheduler and the
// control state, and produces a Frame each time a frontend asks for one.
type Loop struct {
	life  *life.Life
	sched *core.Scheduler
	ctrl  *Control
	input *Input
	log   *log.Logger

	stepTime time.Duration
}

// NewLoop wires a loop around an existing grid. logger may be nil.
func NewLoop(l *life.Life, sched *core.Scheduler, ctrl *Control, policy EditPolicy, logger *log.Logger) *Loop {
	lp := &Loop{life: l, sched: sched, ctrl: ctrl, log: logger}
	lp.input = NewInput(l, sched, ctrl, policy)
	lp.input.onReset = func() { lp.logf("grid reset") }
	lp.input.onRun = func(s core.RunState) { lp.logf("simulation %s at generation %d", s, l.Generation()) }
	return lp
}

// Life exposes the simulated grid.
func (lp *Loop) Life() *life.Life { return lp.life }

// Scheduler exposes the tick scheduler.
func (lp *Loop) Scheduler() *core.Scheduler { return lp.sched }

// Control exposes the shared control state.
func (lp *Loop) Control() *Control { return lp.ctrl }

// Input exposes the input controller.
func (lp *Loop) Input() *Input { return lp.input }

// Handle forwards an input event to the controller.
func (lp *Loop) Handle(ev Event, consumed bool) { lp.input.Handle(ev, consumed) }

// Frame runs one frame at time now: the paint pass, then a tick if the
// scheduler allows one, then the snapshot.
func (lp *Loop) Frame(now time.Time) Frame {
	lp.input.Paint()

	if lp.sched.ShouldStep(now) {
		start := time.Now()
		lp.life.Step()
		lp.stepTime = time.Since(start)
	}

	hover, ok := lp.input.Hover()
	return Frame{
		Cells:      lp.life.Snapshot(lp.ctrl.Layout()),
		ClearColor: lp.ctrl.ClearColor,
		Scale:      lp.ctrl.Scale,
		Spacing:    lp.ctrl.Spacing,
		State:      lp.sched.State(),
		Generation: lp.life.Generation(),
		Population: lp.life.Population(),
		StepTime:   lp.stepTime,
		Hover:      hover,
		HasHover:   ok,
	}
}

// Reset clears the grid without touching the run state.
func (lp *Loop) Reset() { lp.input.key(KeyReset) }

func (lp *Loop) logf(format string, args ...any) {
	if lp.log == nil {
		return
	}
	lp.log.Printf(format, args...)
}
