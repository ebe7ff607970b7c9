// Package config provides YAML-based game configuration loading, validation
// and the score-driven speed curve.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FlappyConfig contains all tunables of the game screen.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	Player    FlappyPlayer    `yaml:"player"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Ground    FlappyGround    `yaml:"ground"`
	Speed     SpeedConfig     `yaml:"speed"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	HUD       HUDConfig       `yaml:"hud"`
}

// FlappyPhysics defines the vertical motion of the bird, in px/s and px/s².
type FlappyPhysics struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"` // Negative = up
}

// FlappyPlayer defines the bird sprite and its placement.
type FlappyPlayer struct {
	XDivisor     float64 `yaml:"x_divisor"`     // playerX = viewport width / x_divisor
	StartDivisor float64 `yaml:"start_divisor"` // birdY at mount = viewport height / start_divisor
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MaxTilt      float64 `yaml:"max_tilt"`      // Radians at |velocity| >= tilt_velocity
	TiltVelocity float64 `yaml:"tilt_velocity"` // px/s
}

// FlappyObstacles defines the pipe pair and its scroll cycle.
type FlappyObstacles struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Anchor      float64 `yaml:"anchor"`       // Top pipe y = offset - anchor
	OffsetRange float64 `yaml:"offset_range"` // Gap offset rolled in [-range, range)
	RespawnX    float64 `yaml:"respawn_x"`    // Crossing below this restarts the cycle
	ExitX       float64 `yaml:"exit_x"`       // Where a full run ends
	BaseCycleMs float64 `yaml:"base_cycle_ms"`
}

// FlappyGround defines the ground strip and the collision bounds.
type FlappyGround struct {
	CollisionMargin float64 `yaml:"collision_margin"` // birdY > height - margin is a crash
	StripHeight     float64 `yaml:"strip_height"`
	StripOffset     float64 `yaml:"strip_offset"` // Strip drawn at height - offset
}

// SpeedConfig defines the single linear speed-up rule.
type SpeedConfig struct {
	Base       float64 `yaml:"base"`       // Speed at score 0
	MaxAt      int     `yaml:"max_at"`     // Score at which the multiplier is fully applied
	Multiplier float64 `yaml:"multiplier"` // Fraction of base added at max_at
}

// ViewportConfig is the virtual canvas size in pixels.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HUDConfig controls the optional score text.
type HUDConfig struct {
	ShowScore bool    `yaml:"show_score"`
	ScoreY    float64 `yaml:"score_y"`
	FontSize  float64 `yaml:"font_size"`
}

// Validate checks that the configuration can drive a playable screen.
func (c FlappyConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"player.x_divisor", c.Player.XDivisor},
		{"player.start_divisor", c.Player.StartDivisor},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.tilt_velocity", c.Player.TiltVelocity},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.height", c.Obstacles.Height},
		{"obstacles.base_cycle_ms", c.Obstacles.BaseCycleMs},
		{"speed.base", c.Speed.Base},
		{"viewport.width", c.Viewport.Width},
		{"viewport.height", c.Viewport.Height},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %g: %w", p.name, p.v, ErrInvalidConfig)
		}
	}

	if c.Obstacles.OffsetRange < 0 {
		return fmt.Errorf("config: obstacles.offset_range must not be negative: %w", ErrInvalidConfig)
	}
	// The run must cross respawn_x before it ends, or the cycle never restarts.
	if c.Obstacles.ExitX >= c.Obstacles.RespawnX {
		return fmt.Errorf("config: obstacles.exit_x (%g) must be left of respawn_x (%g): %w",
			c.Obstacles.ExitX, c.Obstacles.RespawnX, ErrInvalidConfig)
	}
	if c.Speed.MaxAt <= 0 {
		return fmt.Errorf("config: speed.max_at must be positive: %w", ErrInvalidConfig)
	}
	if c.Speed.Multiplier < 0 {
		return fmt.Errorf("config: speed.multiplier must not be negative: %w", ErrInvalidConfig)
	}
	return nil
}
