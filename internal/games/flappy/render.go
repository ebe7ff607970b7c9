package flappy

import (
	"fmt"

	"github.com/vovakirdan/skyflap/internal/scene"
)

// Scene composes the current frame, back to front. It only reads state.
func (g *Game) Scene() scene.Scene {
	s, l := g.state, g.layout
	o, p, gr := g.cfg.Obstacles, g.cfg.Player, g.cfg.Ground

	pipeX, birdY := s.PipeX.Get(), s.BirdY.Get()
	top := l.TopPipe(pipeX, s.PipeOffset)
	bottom := l.BottomPipe(pipeX, s.PipeOffset)
	playerX := l.PlayerX()

	sc := scene.Scene{
		Width:  l.Width,
		Height: l.Height,
		Sprites: []scene.Sprite{
			{Asset: scene.AssetBackground, W: l.Width, H: l.Height, Fit: scene.FitCover},
			{Asset: scene.AssetPipeTop, X: top.X, Y: top.Y, W: o.Width, H: o.Height},
			{Asset: scene.AssetPipeBottom, X: bottom.X, Y: bottom.Y, W: o.Width, H: o.Height},
			{Asset: scene.AssetBase, Y: l.Height - gr.StripOffset, W: l.Width, H: gr.StripHeight, Fit: scene.FitCover},
			{
				Asset:    scene.AssetBird,
				X:        playerX,
				Y:        birdY,
				W:        p.Width,
				H:        p.Height,
				Rotation: l.Rotation(s.BirdYVelocity),
				OriginX:  playerX + p.Width/2,
				OriginY:  birdY + p.Height/2,
			},
		},
		GameOver: s.GameOver.Get(),
	}

	if g.cfg.HUD.ShowScore {
		sc.Texts = append(sc.Texts, scene.Text{
			X:     playerX,
			Y:     g.cfg.HUD.ScoreY,
			Size:  g.cfg.HUD.FontSize,
			Value: fmt.Sprintf("SCORE: %d", s.Score),
		})
	}
	return sc
}
