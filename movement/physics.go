package movement

// Velocity is the body velocity for one physics tick in world units per
// second. The vertical component is always overridden to zero.
func Velocity(s State, in Input) (x, y float64) {
	return in.Axis * s.Speed, 0
}

// VerticalForce is the force for one physics tick: the jump force inside the
// jump window, otherwise the downward compensation force (skipped on the
// ground when the config says so).
func VerticalForce(s State, now float64, grounded bool, cfg Config) float64 {
	if s.JumpActive(now, cfg) {
		return cfg.JumpForce
	}
	if cfg.AirborneFallForce && grounded {
		return 0
	}
	return -cfg.FallForce
}
