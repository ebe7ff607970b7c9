package flappy

import (
	"testing"

	"github.com/vovakirdan/skyflap/internal/observe"
)

func record(x *observe.Value[float64]) *[]float64 {
	var seen []float64
	x.Watch(func(cur, _ float64, hasPrev bool) {
		if hasPrev {
			seen = append(seen, cur)
		}
	})
	return &seen
}

func TestScrollerLinearRun(t *testing.T) {
	x := observe.NewValue(0.0)
	s := NewScroller(x)
	s.Restart(100, 0, 1)

	if x.Get() != 100 {
		t.Fatalf("Restart should snap to from: got %v", x.Get())
	}
	if s.Phase() != PhaseRunning {
		t.Fatalf("Expected running, got %s", s.Phase())
	}

	s.Advance(0.5)
	if x.Get() != 50 {
		t.Errorf("Halfway: expected 50, got %v", x.Get())
	}
	s.Advance(0.25)
	if x.Get() != 25 {
		t.Errorf("Three quarters: expected 25, got %v", x.Get())
	}
}

func TestScrollerSnapsBackAtEnd(t *testing.T) {
	x := observe.NewValue(100.0)
	s := NewScroller(x)
	s.Restart(100, 0, 1)
	seen := record(x)

	s.Advance(2)

	want := []float64{0, 100}
	if len(*seen) != len(want) {
		t.Fatalf("Expected observations %v, got %v", want, *seen)
	}
	for i := range want {
		if (*seen)[i] != want[i] {
			t.Errorf("Observation %d: expected %v, got %v", i, want[i], (*seen)[i])
		}
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Expected idle after run, got %s", s.Phase())
	}

	// An idle scroller does not loop on its own.
	s.Advance(0.5)
	if x.Get() != 100 {
		t.Errorf("Idle scroller moved to %v", x.Get())
	}
}

func TestScrollerCancelHolds(t *testing.T) {
	x := observe.NewValue(0.0)
	s := NewScroller(x)
	s.Restart(100, 0, 1)
	s.Advance(0.25)

	seen := record(x)
	s.Cancel()
	s.Advance(0.5)

	if x.Get() != 75 {
		t.Errorf("Cancelled scroller should hold at 75, got %v", x.Get())
	}
	if len(*seen) != 0 {
		t.Errorf("Cancel should not write the cell, saw %v", *seen)
	}
	if s.Phase() != PhaseHeld {
		t.Errorf("Expected held, got %s", s.Phase())
	}
}

func TestScrollerRestartOnFinalValue(t *testing.T) {
	x := observe.NewValue(0.0)
	s := NewScroller(x)
	s.Restart(100, 0, 1)

	restarted := false
	x.Watch(func(cur, _ float64, hasPrev bool) {
		if hasPrev && cur == 0 && !restarted {
			restarted = true
			s.Restart(200, 0, 2)
		}
	})

	s.Advance(1)

	if x.Get() != 200 {
		t.Errorf("Restart from a watcher should win over snap-back: got %v", x.Get())
	}
	if s.Duration() != 2 {
		t.Errorf("Expected new duration 2, got %v", s.Duration())
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("Expected running, got %s", s.Phase())
	}
}

func TestScrollerIgnoresEmptyFrames(t *testing.T) {
	x := observe.NewValue(0.0)
	s := NewScroller(x)
	s.Restart(100, 0, 1)

	s.Advance(0)
	s.Advance(-1)
	if x.Get() != 100 {
		t.Errorf("Empty frames should not move the cell, got %v", x.Get())
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "idle"},
		{PhaseRunning, "running"},
		{PhaseHeld, "held"},
		{Phase(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
