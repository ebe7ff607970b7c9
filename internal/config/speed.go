package config

import "math"

// SpeedCurve maps the score to the obstacle speed multiplier.
// Speed grows linearly from base at score 0 to base*(1+multiplier) at max_at
// and stays there.
type SpeedCurve struct {
	cfg SpeedConfig
}

// NewSpeedCurve creates a new speed curve.
func NewSpeedCurve(cfg SpeedConfig) *SpeedCurve {
	return &SpeedCurve{cfg: cfg}
}

// Level returns progress towards max speed in [0, 1].
func (c *SpeedCurve) Level(score int) float64 {
	maxAt := float64(c.cfg.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	return clampF(float64(score)/maxAt, 0.0, 1.0)
}

// Speed returns the obstacle speed for the given score.
func (c *SpeedCurve) Speed(score int) float64 {
	return c.cfg.Base * (1.0 + c.Level(score)*c.cfg.Multiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
