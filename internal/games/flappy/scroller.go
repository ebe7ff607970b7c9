package flappy

import (
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/skyflap/internal/observe"
)

// Phase is the state of the obstacle scroller.
type Phase int

const (
	PhaseIdle    Phase = iota // Run finished and snapped back; waits for Restart
	PhaseRunning              // Moving linearly towards the exit
	PhaseHeld                 // Cancelled; the value stays where it was
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseHeld:
		return "held"
	default:
		return "unknown"
	}
}

// Scroller drives a cell through snap -> linear run -> snap back. It never
// loops on its own: each run must be started with Restart.
type Scroller struct {
	x        *observe.Value[float64]
	from, to float64
	duration float64 // seconds
	elapsed  float64 // seconds
	phase    Phase
	run      uint64 // Incremented by every Restart
}

// NewScroller creates an idle scroller driving x.
func NewScroller(x *observe.Value[float64]) *Scroller {
	return &Scroller{x: x}
}

// Restart snaps the cell to from and starts a run towards to lasting
// duration seconds. An in-flight run is abandoned.
func (s *Scroller) Restart(from, to, duration float64) {
	s.run++
	s.from = from
	s.to = to
	s.duration = duration
	s.elapsed = 0
	s.phase = PhaseRunning
	s.x.Set(from)
}

// Cancel freezes an in-flight run. The cell is not written, so watchers see
// no extra change.
func (s *Scroller) Cancel() {
	if s.phase == PhaseRunning {
		s.phase = PhaseHeld
	}
}

// Advance moves a running scroller forward by dt seconds.
func (s *Scroller) Advance(dt float64) {
	if s.phase != PhaseRunning || dt <= 0 {
		return
	}

	run := s.run
	s.elapsed += dt
	if s.elapsed >= s.duration {
		s.x.Set(s.to)
		// A watcher may have restarted or cancelled the run on the final value.
		if s.run != run || s.phase != PhaseRunning {
			return
		}
		s.phase = PhaseIdle
		s.x.Set(s.from)
		return
	}

	x := ease.Linear(float32(s.elapsed), float32(s.from), float32(s.to-s.from), float32(s.duration))
	s.x.Set(float64(x))
}

// Phase returns the current phase.
func (s *Scroller) Phase() Phase {
	return s.phase
}

// Duration returns the length of the current run in seconds.
func (s *Scroller) Duration() float64 {
	return s.duration
}
