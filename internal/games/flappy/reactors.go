package flappy

import "github.com/vovakirdan/skyflap/internal/core"

// watch registers the three reactors on the state cells. Each runs
// synchronously whenever its cell changes.
func (g *Game) watch() {
	g.state.PipeX.Watch(g.onPipeX)
	g.state.BirdY.Watch(g.onBirdY)
	g.state.GameOver.Watch(g.onGameOver)
}

// onPipeX scores a pass and respawns the pipe pair. Both rules look at the
// same (current, previous) pair and may fire together.
func (g *Game) onPipeX(cur, prev float64, hasPrev bool) {
	if !hasPrev {
		return
	}

	respawnX := g.cfg.Obstacles.RespawnX
	if cur < respawnX && prev >= respawnX {
		g.state.PipeOffset = g.rollOffset()
		g.scroller.Cancel()
		g.startCycle()
		g.respawns++
	}

	playerX := g.layout.PlayerX()
	if cur != prev && cur <= playerX && prev > playerX {
		g.state.Score++
	}
}

// onBirdY ends the run on a ground, ceiling or pipe hit.
func (g *Game) onBirdY(birdY, _ float64, _ bool) {
	if g.state.GameOver.Get() {
		return
	}
	if g.layout.OutOfBounds(birdY) {
		g.state.GameOver.Set(true)
		return
	}

	center := g.layout.BirdCenter(birdY)
	pipeX, offset := g.state.PipeX.Get(), g.state.PipeOffset
	if core.PointInBox(center, g.layout.TopPipe(pipeX, offset)) ||
		core.PointInBox(center, g.layout.BottomPipe(pipeX, offset)) {
		g.state.GameOver.Set(true)
	}
}

// onGameOver freezes the pipes when the run ends.
func (g *Game) onGameOver(over, wasOver bool, hasPrev bool) {
	if hasPrev && over && !wasOver {
		g.scroller.Cancel()
	}
}

// rollOffset picks a gap offset uniformly in [-range, range).
func (g *Game) rollOffset() float64 {
	r := g.cfg.Obstacles.OffsetRange
	return g.rng.Float64()*2*r - r
}
