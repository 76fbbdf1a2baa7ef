package app

import (
	"fmt"

	"mad-life/internal/core"
	"mad-life/internal/sims/life"
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Key identifies a command key.
type Key uint8

const (
	KeyReset Key = iota
	KeyStart
	KeyPause
)

func (k Key) String() string {
	switch k {
	case KeyReset:
		return "reset"
	case KeyStart:
		return "start"
	case KeyPause:
		return "pause"
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// Event is an input notification from a frontend.
type Event interface{ event() }

// PointerMoved reports a new pointer position in screen pixels.
type PointerMoved struct{ X, Y float64 }

// ButtonPressed reports a button going down.
type ButtonPressed struct{ Button Button }

// ButtonReleased reports a button going up.
type ButtonReleased struct{ Button Button }

// KeyPressed reports a command key going down.
type KeyPressed struct{ Key Key }

// Resized reports new viewport dimensions. The grid size never changes.
type Resized struct{ Width, Height int }

func (PointerMoved) event()   {}
func (ButtonPressed) event()  {}
func (ButtonReleased) event() {}
func (KeyPressed) event()     {}
func (Resized) event()        {}

// EditPolicy decides when held buttons may paint.
type EditPolicy uint8

const (
	// EditAsymmetric lets the left button paint only while paused and the
	// right button erase at any time.
	EditAsymmetric EditPolicy = iota
	// EditWhilePaused gates both buttons on the paused state.
	EditWhilePaused
	// EditAlways lets both buttons edit regardless of playback.
	EditAlways
)

// ParseEditPolicy accepts "asymmetric", "paused" or "always".
func ParseEditPolicy(s string) (EditPolicy, error) {
	switch s {
	case "asymmetric", "":
		return EditAsymmetric, nil
	case "paused":
		return EditWhilePaused, nil
	case "always":
		return EditAlways, nil
	}
	return 0, fmt.Errorf("unknown edit policy %q", s)
}

func (p EditPolicy) String() string {
	switch p {
	case EditWhilePaused:
		return "paused"
	case EditAlways:
		return "always"
	}
	return "asymmetric"
}

func (p EditPolicy) allows(b Button, running bool) bool {
	switch p {
	case EditAlways:
		return true
	case EditWhilePaused:
		return !running
	}
	return b == ButtonRight || !running
}

// Input turns frontend events into grid edits and scheduler transitions.
type Input struct {
	life   *life.Life
	sched  *core.Scheduler
	ctrl   *Control
	policy EditPolicy

	// onReset runs after a reset key clears the grid.
	onReset func()
	onRun   func(core.RunState)
}

// NewInput wires an input controller to the grid, scheduler and control.
func NewInput(l *life.Life, sched *core.Scheduler, ctrl *Control, policy EditPolicy) *Input {
	return &Input{life: l, sched: sched, ctrl: ctrl, policy: policy}
}

// Policy returns the active edit policy.
func (in *Input) Policy() EditPolicy { return in.policy }

// Handle processes one event. Events the GUI consumed are dropped. Held
// buttons paint under the last known pointer position before the event
// itself is applied.
func (in *Input) Handle(ev Event, consumed bool) {
	if consumed {
		return
	}
	in.Paint()

	switch e := ev.(type) {
	case PointerMoved:
		in.ctrl.PointerX, in.ctrl.PointerY = e.X, e.Y
		in.ctrl.HasPointer = true
	case ButtonPressed:
		in.setButton(e.Button, true)
	case ButtonReleased:
		in.setButton(e.Button, false)
	case KeyPressed:
		in.key(e.Key)
	case Resized:
		in.ctrl.ViewportW, in.ctrl.ViewportH = e.Width, e.Height
	}
}

// Paint applies held buttons to the cell under the pointer.
func (in *Input) Paint() {
	if !in.ctrl.LeftPressed && !in.ctrl.RightPressed {
		return
	}
	idx, ok := in.Hover()
	if !ok {
		return
	}
	running := in.sched.Running()
	if in.ctrl.LeftPressed && in.policy.allows(ButtonLeft, running) {
		_ = in.life.Set(idx, core.Alive)
	}
	if in.ctrl.RightPressed && in.policy.allows(ButtonRight, running) {
		_ = in.life.Set(idx, core.Dead)
	}
}

// Hover returns the index of the cell under the pointer, if any.
func (in *Input) Hover() (int, bool) {
	px, py, ok := in.ctrl.Pointer()
	if !ok {
		return 0, false
	}
	return in.ctrl.Layout().IndexAt(px, py, in.life.Size())
}

func (in *Input) setButton(b Button, down bool) {
	switch b {
	case ButtonLeft:
		in.ctrl.LeftPressed = down
	case ButtonRight:
		in.ctrl.RightPressed = down
	}
}

func (in *Input) key(k Key) {
	switch k {
	case KeyReset:
		in.life.Clear()
		if in.onReset != nil {
			in.onReset()
		}
	case KeyStart:
		if in.sched.Start() && in.onRun != nil {
			in.onRun(core.Running)
		}
	case KeyPause:
		if in.sched.Pause() && in.onRun != nil {
			in.onRun(core.Paused)
		}
	}
}
