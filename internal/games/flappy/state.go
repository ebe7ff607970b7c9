package flappy

import (
	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/observe"
)

// State is the single mutable record of the game screen. The three
// observable cells drive the reactors; the plain fields are only read.
type State struct {
	BirdY         *observe.Value[float64] // Top of the bird sprite, px
	BirdYVelocity float64                 // px/s, positive = down
	PipeX         *observe.Value[float64] // Left edge of both pipes, px
	PipeOffset    float64                 // Vertical shift of the pipe pair, px
	Score         int
	GameOver      *observe.Value[bool]
}

// newState creates the state a freshly mounted screen starts with.
func newState(l Layout) *State {
	return &State{
		BirdY:    observe.NewValue(l.StartY()),
		PipeX:    observe.NewValue(l.Width),
		GameOver: observe.NewValue(false),
	}
}

// Layout derives sprite geometry from the configuration and the viewport.
// Every method is a pure function of its arguments.
type Layout struct {
	Width, Height float64
	cfg           config.FlappyConfig
}

// NewLayout creates a layout for a viewport.
func NewLayout(cfg config.FlappyConfig, width, height float64) Layout {
	return Layout{Width: width, Height: height, cfg: cfg}
}

// PlayerX is the fixed left edge of the bird.
func (l Layout) PlayerX() float64 {
	return l.Width / l.cfg.Player.XDivisor
}

// StartY is the bird position at mount and after a restart.
func (l Layout) StartY() float64 {
	return l.Height / l.cfg.Player.StartDivisor
}

// TopPipe returns the upper obstacle rectangle.
func (l Layout) TopPipe(pipeX, offset float64) core.Box {
	o := l.cfg.Obstacles
	return core.NewBox(pipeX, offset-o.Anchor, o.Width, o.Height)
}

// BottomPipe returns the lower obstacle rectangle.
func (l Layout) BottomPipe(pipeX, offset float64) core.Box {
	o := l.cfg.Obstacles
	return core.NewBox(pipeX, l.Height-o.Anchor+offset, o.Width, o.Height)
}

// BirdCenter returns the point tested against the pipes.
func (l Layout) BirdCenter(birdY float64) core.Point {
	p := l.cfg.Player
	return core.Point{X: l.PlayerX() + p.Width/2, Y: birdY + p.Height/2}
}

// OutOfBounds reports whether the bird hit the ground or left the top.
func (l Layout) OutOfBounds(birdY float64) bool {
	return birdY > l.Height-l.cfg.Ground.CollisionMargin || birdY < 0
}

// Rotation maps the vertical velocity to the bird tilt in radians.
func (l Layout) Rotation(velocity float64) float64 {
	p := l.cfg.Player
	return core.Lerp(velocity, -p.TiltVelocity, p.TiltVelocity, -p.MaxTilt, p.MaxTilt)
}
