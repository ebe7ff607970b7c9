package flappy

// Tap handles the single tap gesture: a restart after a crash, otherwise an
// upward impulse that replaces the current velocity.
func (g *Game) Tap() {
	if g.state.GameOver.Get() {
		g.restart()
		return
	}
	g.state.BirdYVelocity = g.cfg.Physics.JumpForce
}

// restart resets the run in place and restarts the scroll cycle.
func (g *Game) restart() {
	s := g.state
	s.BirdY.Set(g.layout.StartY())
	s.BirdYVelocity = 0
	s.GameOver.Set(false)
	s.PipeX.Set(g.layout.Width)
	s.Score = 0
	g.startCycle()
	g.restarts++
}
