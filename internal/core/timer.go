package core

import "time"

// DefaultTPS is the tick rate used when none, or a non-positive one, is given.
const DefaultTPS = 10

// RunState is the playback state of a Scheduler.
type RunState uint8

const (
	Paused RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "paused"
}

// Scheduler gates simulation ticks: it tracks whether playback is running and
// caps the tick rate. It never blocks; a frame that arrives before the next
// tick is due simply does not step.
type Scheduler struct {
	step  time.Duration
	tps   int
	state RunState
	last  time.Time
}

// NewScheduler constructs a paused Scheduler targeting the given TPS.
func NewScheduler(tps int) *Scheduler {
	s := &Scheduler{}
	s.SetTPS(tps)
	return s
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (s *Scheduler) SetTPS(tps int) {
	if tps <= 0 {
		tps = DefaultTPS
	}
	s.tps = tps
	s.step = time.Second / time.Duration(tps)
}

// TPS returns the target ticks per second.
func (s *Scheduler) TPS() int { return s.tps }

// Interval returns the minimum time between two ticks.
func (s *Scheduler) Interval() time.Duration { return s.step }

// State returns the current playback state.
func (s *Scheduler) State() RunState { return s.state }

// Running reports whether playback is running.
func (s *Scheduler) Running() bool { return s.state == Running }

// Start moves from Paused to Running. It reports whether the state changed.
func (s *Scheduler) Start() bool {
	if s.state == Running {
		return false
	}
	s.state = Running
	return true
}

// Pause moves from Running to Paused. It reports whether the state changed.
func (s *Scheduler) Pause() bool {
	if s.state == Paused {
		return false
	}
	s.state = Paused
	return true
}

// ShouldStep reports whether the simulation should advance at time now.
// Ticks are at least one interval apart; missed ticks are not made up.
func (s *Scheduler) ShouldStep(now time.Time) bool {
	if s.state != Running {
		return false
	}
	if !s.last.IsZero() && now.Sub(s.last) < s.step {
		return false
	}
	s.last = now
	return true
}
