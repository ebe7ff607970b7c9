// Package flappy implements the Flappy Bird game screen: physics, the
// obstacle scroll cycle, scoring, collisions and restart. It depends on no
// front end; a platform delivers frames and taps and paints Scene().
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/core"
)

// Game is one mounted game screen.
type Game struct {
	cfg      config.FlappyConfig
	speed    *config.SpeedCurve
	runtime  core.RuntimeConfig
	layout   Layout
	state    *State
	scroller *Scroller
	rng      *rand.Rand
	paused   bool
	frames   uint64 // Frames that advanced the simulation
	respawns int    // Pipe respawns since mount
	restarts int    // Restarts since mount
}

// New creates a game screen with the given tunables. Reset must be called
// before the first frame.
func New(cfg config.FlappyConfig) *Game {
	return &Game{
		cfg:   cfg,
		speed: config.NewSpeedCurve(cfg.Speed),
	}
}

// Reset mounts the screen: fresh state, seeded RNG, reactors registered and
// the first scroll cycle started. A zero viewport falls back to the
// configured one.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.ViewportW <= 0 || rt.ViewportH <= 0 {
		rt.ViewportW = g.cfg.Viewport.Width
		rt.ViewportH = g.cfg.Viewport.Height
	}
	g.runtime = rt
	g.layout = NewLayout(g.cfg, rt.ViewportW, rt.ViewportH)
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.state = newState(g.layout)
	g.scroller = NewScroller(g.state.PipeX)
	g.paused = false
	g.frames = 0
	g.respawns = 0
	g.restarts = 0

	g.watch()
	g.startCycle()
}

// startCycle restarts the obstacle run from the right edge. The run length
// depends on the score at the moment it starts.
func (g *Game) startCycle() {
	g.scroller.Restart(g.layout.Width, g.cfg.Obstacles.ExitX, g.cycleDuration())
}

// cycleDuration returns the length of a full run in seconds.
func (g *Game) cycleDuration() float64 {
	return g.cfg.Obstacles.BaseCycleMs / g.speed.Speed(g.state.Score) / 1000
}

// Tick advances one frame of dt seconds: the scroller first, then physics.
// A frame without timing (dt <= 0) is a no-op.
func (g *Game) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	g.frames++
	g.scroller.Advance(dt)
	integrate(g.state, g.cfg.Physics.Gravity, dt)
}

// Step applies one frame of input, then advances by dt seconds.
// Pause toggles frame delivery while the run is alive.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) && !g.state.GameOver.Get() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionTap) {
		g.Tap()
	}
	g.Tick(dt)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.GameOver.Get(),
		Paused:   g.paused,
	}
}

// Viewport returns the mounted viewport size.
func (g *Game) Viewport() (width, height float64) {
	return g.layout.Width, g.layout.Height
}
