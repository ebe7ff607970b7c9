package core

// RuntimeConfig contains configuration passed to the game at mount.
type RuntimeConfig struct {
	ViewportW float64 // Virtual viewport width in pixels
	ViewportH float64 // Virtual viewport height in pixels
	ScreenW   int     // Terminal width in characters (terminal front end only)
	ScreenH   int     // Terminal height in characters (terminal front end only)
	TickRate  int     // Frames per second requested from the frame clock
	Seed      int64   // RNG seed for the gap offset
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewportW: 432,
		ViewportH: 768,
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState is the status summary the game reports to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether frames are currently withheld
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
}
