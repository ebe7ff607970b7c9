package flappy

// Snapshot captures the complete game state for determinism testing and
// diagnostics.
type Snapshot struct {
	Frame         uint64
	BirdY         float64
	BirdYVelocity float64
	PipeX         float64
	PipeOffset    float64
	Score         int
	GameOver      bool
	Paused        bool
	Phase         Phase
	CycleSeconds  float64
	Respawns      int
	Restarts      int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:         g.frames,
		BirdY:         g.state.BirdY.Get(),
		BirdYVelocity: g.state.BirdYVelocity,
		PipeX:         g.state.PipeX.Get(),
		PipeOffset:    g.state.PipeOffset,
		Score:         g.state.Score,
		GameOver:      g.state.GameOver.Get(),
		Paused:        g.paused,
		Phase:         g.scroller.Phase(),
		CycleSeconds:  g.scroller.Duration(),
		Respawns:      g.respawns,
		Restarts:      g.restarts,
	}
}
