// Package gfx provides the Ebitengine window front end for skyflap.
package gfx

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/games/flappy"
	"github.com/vovakirdan/skyflap/internal/scene"
)

// Options configures the window.
type Options struct {
	AssetsDir string
	Scale     float64 // Window size relative to the viewport
}

// Game adapts a flappy.Game to ebiten.Game.
type Game struct {
	game    *flappy.Game
	sprites scene.Provider[*ebiten.Image]
	font    *text.GoTextFaceSource
	logger  *log.Logger
	input   core.InputFrame
	touches []ebiten.TouchID
	state   core.GameState
	started time.Time
	viewW   int
	viewH   int
}

// NewGame mounts the game screen and prepares sprites and fonts.
func NewGame(game *flappy.Game, cfg core.RuntimeConfig, opts Options, logger *log.Logger) (*Game, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if opts.AssetsDir != "" && !assetsDirExists(opts.AssetsDir) {
		logger.Warn("assets directory not found, using placeholders", "dir", opts.AssetsDir)
		opts.AssetsDir = ""
	}
	sprites, loaded, err := LoadSprites(opts.AssetsDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("sprites ready", "loaded", loaded, "placeholders", len(scene.Assets)-loaded)

	font, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	game.Reset(cfg)
	w, h := game.Viewport()
	logger.Info("run started", "seed", cfg.Seed, "viewport", fmt.Sprintf("%.0fx%.0f", w, h))

	return &Game{
		game:    game,
		sprites: sprites,
		font:    font,
		logger:  logger,
		input:   core.NewInputFrame(),
		viewW:   int(math.Round(w)),
		viewH:   int(math.Round(h)),
		started: time.Now(),
	}, nil
}

// Update reads taps and advances the game by one fixed tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("quit", "score", g.state.Score)
		return ebiten.Termination
	}

	g.input.Clear()
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		len(g.touches) > 0 {
		g.input.Set(core.ActionTap)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.input.Set(core.ActionPause)
	}

	prev := g.state
	g.state = g.game.Step(g.input, 1/float64(ebiten.TPS())).State

	switch {
	case g.state.GameOver && !prev.GameOver:
		g.logger.Info("run ended", "score", g.state.Score, "duration", time.Since(g.started).Round(time.Millisecond))
	case prev.GameOver && !g.state.GameOver:
		g.started = time.Now()
		g.logger.Info("run restarted")
	}
	return nil
}

// Draw paints the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	sc := g.game.Scene()
	for _, sp := range sc.Sprites {
		img, ok := g.sprites.Sprite(sp.Asset)
		if !ok {
			continue
		}
		drawSprite(screen, img, sp)
	}

	for _, t := range sc.Texts {
		op := &text.DrawOptions{}
		op.GeoM.Translate(t.X, t.Y)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, t.Value, &text.GoTextFace{Source: g.font, Size: t.Size}, op)
	}

	switch {
	case sc.GameOver:
		g.drawBanner(screen, "GAME OVER", "Tap to restart")
	case g.state.Paused:
		g.drawBanner(screen, "PAUSED", "Press P to resume")
	}
}

// drawBanner draws a centred title with a hint below it.
func (g *Game) drawBanner(screen *ebiten.Image, title, hint string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(g.viewW)/2, float64(g.viewH)/2)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, title, &text.GoTextFace{Source: g.font, Size: 48}, op)

	op.GeoM.Translate(0, 60)
	text.Draw(screen, hint, &text.GoTextFace{Source: g.font, Size: 20}, op)
}

// drawSprite draws one sprite: fit into its box, then rotate about its
// origin.
func drawSprite(dst, img *ebiten.Image, sp scene.Sprite) {
	src := img
	b := img.Bounds()
	srcW, srcH := float64(b.Dx()), float64(b.Dy())
	if srcW == 0 || srcH == 0 || sp.W <= 0 || sp.H <= 0 {
		return
	}

	if sp.Fit == scene.FitCover {
		x, y, w, h := scene.CoverCrop(srcW, srcH, sp.W, sp.H)
		r := image.Rect(
			b.Min.X+int(math.Floor(x)), b.Min.Y+int(math.Floor(y)),
			b.Min.X+int(math.Ceil(x+w)), b.Min.Y+int(math.Ceil(y+h)),
		).Intersect(b)
		src = img.SubImage(r).(*ebiten.Image)
		srcW, srcH = float64(r.Dx()), float64(r.Dy())
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sp.W/srcW, sp.H/srcH)
	op.GeoM.Translate(sp.X, sp.Y)
	if sp.Rotation != 0 {
		op.GeoM.Translate(-sp.OriginX, -sp.OriginY)
		op.GeoM.Rotate(sp.Rotation)
		op.GeoM.Translate(sp.OriginX, sp.OriginY)
	}
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

// Layout keeps the logical screen at the viewport size; Ebitengine scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.viewW, g.viewH
}

// Run opens the window and blocks until it is closed.
func Run(game *flappy.Game, cfg core.RuntimeConfig, opts Options, logger *log.Logger) error {
	g, err := NewGame(game, cfg, opts, logger)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(g.viewW)*scale), int(float64(g.viewH)*scale))
	ebiten.SetWindowTitle("skyflap")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
