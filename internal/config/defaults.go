package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:   1000,
			JumpForce: -500,
		},
		Player: FlappyPlayer{
			XDivisor:     4,
			StartDivisor: 3,
			Width:        64,
			Height:       48,
			MaxTilt:      0.5,
			TiltVelocity: 500,
		},
		Obstacles: FlappyObstacles{
			Width:       104,
			Height:      640,
			Anchor:      320,
			OffsetRange: 200,
			RespawnX:    -100,
			ExitX:       -150,
			BaseCycleMs: 3000,
		},
		Ground: FlappyGround{
			CollisionMargin: 130,
			StripHeight:     150,
			StripOffset:     75,
		},
		Speed: SpeedConfig{
			Base:       1,
			MaxAt:      20,
			Multiplier: 1,
		},
		Viewport: ViewportConfig{
			Width:  432,
			Height: 768,
		},
		HUD: HUDConfig{
			ShowScore: true,
			ScoreY:    100,
			FontSize:  40,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
