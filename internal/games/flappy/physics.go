package flappy

// integrate advances the bird by dt seconds. Position uses the velocity from
// before this step. Frames without timing and frames after a crash are
// skipped.
func integrate(s *State, gravity, dt float64) {
	if dt <= 0 || s.GameOver.Get() {
		return
	}
	vy := s.BirdYVelocity
	s.BirdY.Set(s.BirdY.Get() + vy*dt)
	s.BirdYVelocity = vy + gravity*dt
}
