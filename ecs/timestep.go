package ecs

// FixedStep turns variable frame deltas into a whole number of fixed
// simulation steps.
type FixedStep struct {
	Step     float64
	MaxSteps int

	acc float64
}

func NewFixedStep(step float64, maxSteps int) *FixedStep {
	return &FixedStep{Step: step, MaxSteps: maxSteps}
}

// Advance adds dt seconds and returns how many fixed steps are due. When more
// than MaxSteps are due the surplus time is discarded.
func (f *FixedStep) Advance(dt float64) int {
	if f == nil || f.Step <= 0 || dt <= 0 {
		return 0
	}
	f.acc += dt
	// tolerate float error so 0.02 accumulated from 1/60 frames does not lag a tick
	const epsilon = 1e-9
	n := 0
	for f.acc+epsilon >= f.Step {
		f.acc -= f.Step
		n++
		if f.MaxSteps > 0 && n >= f.MaxSteps {
			if f.acc > f.Step {
				f.acc = 0
			}
			break
		}
	}
	if f.acc < 0 {
		f.acc = 0
	}
	return n
}
