package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/scene"
)

const frameDt = 1.0 / 60

func newTestGame(t *testing.T, cfg config.FlappyConfig) *Game {
	t.Helper()
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ViewportW: 432, ViewportH: 768, Seed: 42})
	return g
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResetMountState(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	snap := g.Snapshot()

	if snap.BirdY != 256 {
		t.Errorf("BirdY: expected 256 (H/3), got %v", snap.BirdY)
	}
	if snap.BirdYVelocity != 0 {
		t.Errorf("Velocity: expected 0, got %v", snap.BirdYVelocity)
	}
	if snap.PipeX != 432 {
		t.Errorf("PipeX: expected 432 (W), got %v", snap.PipeX)
	}
	if snap.PipeOffset != 0 {
		t.Errorf("PipeOffset: expected 0, got %v", snap.PipeOffset)
	}
	if snap.Score != 0 || snap.GameOver {
		t.Errorf("Expected fresh run, got score=%d over=%v", snap.Score, snap.GameOver)
	}
	if snap.Phase != PhaseRunning {
		t.Errorf("Scroller should be running after mount, got %s", snap.Phase)
	}
	if !approx(snap.CycleSeconds, 3) {
		t.Errorf("Cycle at score 0: expected 3s, got %v", snap.CycleSeconds)
	}
}

func TestResetFallsBackToConfiguredViewport(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Viewport.Width = 500
	cfg.Viewport.Height = 900

	g := New(cfg)
	g.Reset(core.RuntimeConfig{})

	w, h := g.Viewport()
	if w != 500 || h != 900 {
		t.Errorf("Expected 500x900, got %vx%v", w, h)
	}
	if g.Snapshot().BirdY != 300 {
		t.Errorf("BirdY: expected 300, got %v", g.Snapshot().BirdY)
	}
}

func TestIntegrate(t *testing.T) {
	l := NewLayout(config.DefaultFlappyConfig(), 432, 768)

	tests := []struct {
		name   string
		y, vy  float64
		dt     float64
		over   bool
		wantY  float64
		wantVy float64
	}{
		{"falling", 100, 50, 0.1, false, 105, 150},
		{"rising", 100, -500, 0.1, false, 50, -400},
		{"no timing", 100, 50, 0, false, 100, 50},
		{"negative dt", 100, 50, -0.1, false, 100, 50},
		{"game over", 100, 50, 0.1, true, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState(l)
			s.BirdY.Set(tt.y)
			s.BirdYVelocity = tt.vy
			s.GameOver.Set(tt.over)

			integrate(s, 1000, tt.dt)

			if !approx(s.BirdY.Get(), tt.wantY) {
				t.Errorf("y: expected %v, got %v", tt.wantY, s.BirdY.Get())
			}
			if !approx(s.BirdYVelocity, tt.wantVy) {
				t.Errorf("vy: expected %v, got %v", tt.wantVy, s.BirdYVelocity)
			}
		})
	}
}

func TestTapReplacesVelocity(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())

	g.state.BirdYVelocity = 300
	g.Tap()
	if g.state.BirdYVelocity != -500 {
		t.Errorf("Expected -500 after tap, got %v", g.state.BirdYVelocity)
	}

	// Taps do not accumulate.
	g.Tap()
	if g.state.BirdYVelocity != -500 {
		t.Errorf("Expected -500 after second tap, got %v", g.state.BirdYVelocity)
	}
}

func TestTapRestartsAfterGameOver(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())

	g.state.GameOver.Set(true)
	g.state.BirdY.Set(600)
	g.state.PipeX.Set(-50)
	g.state.BirdYVelocity = 200
	g.state.Score = 5

	g.Tap()
	snap := g.Snapshot()

	if snap.GameOver {
		t.Error("Game should not be over after restart")
	}
	if snap.BirdY != 256 || snap.BirdYVelocity != 0 {
		t.Errorf("Bird not reset: y=%v vy=%v", snap.BirdY, snap.BirdYVelocity)
	}
	if snap.PipeX != 432 {
		t.Errorf("PipeX: expected 432, got %v", snap.PipeX)
	}
	if snap.Score != 0 {
		t.Errorf("Score: expected 0, got %d", snap.Score)
	}
	if snap.Phase != PhaseRunning {
		t.Errorf("Scroller should be running, got %s", snap.Phase)
	}
	if snap.Restarts != 1 {
		t.Errorf("Restarts: expected 1, got %d", snap.Restarts)
	}
}

func TestScoreCrossing(t *testing.T) {
	tests := []struct {
		name  string
		xs    []float64
		score int
	}{
		{"approach only", []float64{200, 110}, 0},
		{"cross", []float64{110, 107}, 1},
		{"land exactly on player x", []float64{110, 108}, 1},
		{"no double count", []float64{110, 107, 100, 50}, 1},
		{"moving right does not score", []float64{100, 108, 120}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, config.DefaultFlappyConfig())
			for _, x := range tt.xs {
				g.state.PipeX.Set(x)
			}
			if g.state.Score != tt.score {
				t.Errorf("Expected score %d, got %d", tt.score, g.state.Score)
			}
		})
	}
}

func TestRespawnThreshold(t *testing.T) {
	tests := []struct {
		name     string
		xs       []float64
		respawns int
	}{
		{"above threshold", []float64{0, -99}, 0},
		{"reach threshold", []float64{-99, -100}, 0},
		{"cross", []float64{-99, -101}, 1},
		{"cross from exactly threshold", []float64{-100, -100.5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, config.DefaultFlappyConfig())
			for _, x := range tt.xs {
				g.state.PipeX.Set(x)
			}
			if g.respawns != tt.respawns {
				t.Fatalf("Expected %d respawns, got %d", tt.respawns, g.respawns)
			}
			if tt.respawns == 0 {
				return
			}
			if g.state.PipeX.Get() != 432 {
				t.Errorf("Respawn should snap pipes to 432, got %v", g.state.PipeX.Get())
			}
			if off := g.state.PipeOffset; off < -200 || off >= 200 {
				t.Errorf("Offset %v out of [-200, 200)", off)
			}
			if g.scroller.Phase() != PhaseRunning {
				t.Errorf("Scroller should be running, got %s", g.scroller.Phase())
			}
		})
	}
}

func TestScoreAndRespawnOnSameObservation(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())

	g.state.PipeX.Set(200)
	g.state.PipeX.Set(-120)

	if g.state.Score != 1 {
		t.Errorf("Expected score 1, got %d", g.state.Score)
	}
	if g.respawns != 1 {
		t.Errorf("Expected 1 respawn, got %d", g.respawns)
	}
	if g.state.PipeX.Get() != 432 {
		t.Errorf("Expected pipes back at 432, got %v", g.state.PipeX.Get())
	}
}

func TestCollision(t *testing.T) {
	tests := []struct {
		name  string
		pipeX float64
		birdY float64
		over  bool
	}{
		{"ground", 432, 639, true},
		{"ground edge", 432, 638, false},
		{"ceiling", 432, -1, true},
		{"top pipe", 100, 100, true},
		{"bottom pipe", 100, 430, true},
		{"gap", 100, 300, false},
		{"pipe passed", -100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, config.DefaultFlappyConfig())
			g.state.PipeX.Set(tt.pipeX)
			g.state.BirdY.Set(tt.birdY)

			if g.state.GameOver.Get() != tt.over {
				t.Errorf("Expected game over %v, got %v", tt.over, g.state.GameOver.Get())
			}
		})
	}
}

func TestGameOverFreezes(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	g.Tick(0.5)
	g.state.BirdY.Set(700)

	if !g.state.GameOver.Get() {
		t.Fatal("Expected game over after ground hit")
	}
	if g.scroller.Phase() != PhaseHeld {
		t.Errorf("Scroller should be held, got %s", g.scroller.Phase())
	}

	before := g.Snapshot()
	g.Tick(0.5)
	g.state.BirdY.Set(710) // further hits change nothing
	g.state.BirdY.Set(700)
	after := g.Snapshot()

	if after.PipeX != before.PipeX {
		t.Errorf("Pipes moved after game over: %v -> %v", before.PipeX, after.PipeX)
	}
	if after.BirdYVelocity != before.BirdYVelocity {
		t.Errorf("Velocity changed after game over")
	}
	if !after.GameOver {
		t.Error("Game over should stick")
	}
}

func TestCycleDuration(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{0, 3},
		{10, 2},
		{20, 1.5},
		{50, 1.5},
	}

	for _, tt := range tests {
		g := newTestGame(t, config.DefaultFlappyConfig())
		g.state.Score = tt.score
		g.startCycle()
		if !approx(g.scroller.Duration(), tt.want) {
			t.Errorf("score %d: expected %vs, got %vs", tt.score, tt.want, g.scroller.Duration())
		}
	}
}

func TestPipesScrollLinearly(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())

	// 582px over 3s.
	g.Tick(0.5)
	want := 432 - 582.0/6
	if math.Abs(g.state.PipeX.Get()-want) > 1e-3 {
		t.Errorf("Expected pipes at %v, got %v", want, g.state.PipeX.Get())
	}
}

func TestFullLoopScoresAndRespawns(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Player.StartDivisor = 2
	cfg.Obstacles.OffsetRange = 0

	g := newTestGame(t, cfg)
	for i := 0; i < 600; i++ {
		g.Step(core.NewInputFrame(), frameDt)
	}

	snap := g.Snapshot()
	if snap.GameOver {
		t.Fatal("Bird centred in the gap should survive")
	}
	if snap.Score < 3 {
		t.Errorf("Expected at least 3 points in 10s, got %d", snap.Score)
	}
	if snap.Respawns < snap.Score-1 || snap.Respawns > snap.Score {
		t.Errorf("Respawns %d out of step with score %d", snap.Respawns, snap.Score)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(config.DefaultFlappyConfig())
		g.Reset(core.RuntimeConfig{Seed: 12345})
		for i := 0; i < 400; i++ {
			in := core.NewInputFrame()
			if i%18 == 0 {
				in.Set(core.ActionTap)
			}
			g.Step(in, frameDt)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("Determinism failed:\n%+v\n%+v", s1, s2)
	}
}

func TestStepPause(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := g.Step(pause, frameDt)
	if !res.State.Paused {
		t.Fatal("Expected paused")
	}
	before := g.Snapshot()
	g.Step(core.NewInputFrame(), 0.5)
	if after := g.Snapshot(); after.BirdY != before.BirdY || after.PipeX != before.PipeX {
		t.Error("Paused game should not advance")
	}

	res = g.Step(pause, frameDt)
	if res.State.Paused {
		t.Error("Second pause should resume")
	}
	if g.Snapshot().Frame != 1 {
		t.Errorf("Expected 1 simulated frame, got %d", g.Snapshot().Frame)
	}
}

func TestSceneComposition(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig())
	sc := g.Scene()

	wantAssets := []scene.AssetID{
		scene.AssetBackground,
		scene.AssetPipeTop,
		scene.AssetPipeBottom,
		scene.AssetBase,
		scene.AssetBird,
	}
	if len(sc.Sprites) != len(wantAssets) {
		t.Fatalf("Expected %d sprites, got %d", len(wantAssets), len(sc.Sprites))
	}
	for i, id := range wantAssets {
		if sc.Sprites[i].Asset != id {
			t.Errorf("Sprite %d: expected %s, got %s", i, id, sc.Sprites[i].Asset)
		}
	}

	top, bottom, base, bird := sc.Sprites[1], sc.Sprites[2], sc.Sprites[3], sc.Sprites[4]
	if top.X != 432 || top.Y != -320 || top.W != 104 || top.H != 640 {
		t.Errorf("Top pipe: got %+v", top)
	}
	if bottom.Y != 448 {
		t.Errorf("Bottom pipe y: expected 448, got %v", bottom.Y)
	}
	if base.Y != 693 || base.H != 150 || base.Fit != scene.FitCover {
		t.Errorf("Base: got %+v", base)
	}
	if bird.X != 108 || bird.Y != 256 || bird.OriginX != 140 || bird.OriginY != 280 {
		t.Errorf("Bird: got %+v", bird)
	}

	if len(sc.Texts) != 1 {
		t.Fatalf("Expected score text, got %d texts", len(sc.Texts))
	}
	if txt := sc.Texts[0]; txt.Value != "SCORE: 0" || txt.X != 108 || txt.Y != 100 || txt.Size != 40 {
		t.Errorf("Score text: got %+v", txt)
	}
}

func TestSceneBirdRotation(t *testing.T) {
	tests := []struct {
		velocity float64
		want     float64
	}{
		{0, 0},
		{250, 0.25},
		{-500, -0.5},
		{10000, 0.5},
		{-10000, -0.5},
	}

	g := newTestGame(t, config.DefaultFlappyConfig())
	for _, tt := range tests {
		g.state.BirdYVelocity = tt.velocity
		bird := g.Scene().Sprites[4]
		if !approx(bird.Rotation, tt.want) {
			t.Errorf("velocity %v: expected rotation %v, got %v", tt.velocity, tt.want, bird.Rotation)
		}
	}
}

func TestSceneWithoutScore(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.HUD.ShowScore = false

	g := newTestGame(t, cfg)
	if n := len(g.Scene().Texts); n != 0 {
		t.Errorf("Expected no texts, got %d", n)
	}
}
