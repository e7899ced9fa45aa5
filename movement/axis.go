package movement

import (
	"math"

	"github.com/milk9111/smb/common"
)

// Axis smooths a digital horizontal target into a continuous value the way a
// virtual "Horizontal" input axis does.
type Axis struct {
	// Sensitivity is how fast the value moves toward a non-zero target, in
	// units per second.
	Sensitivity float64
	// Gravity is how fast the value falls back to zero with no input.
	Gravity float64
	// Snap jumps to zero when the target reverses direction.
	Snap bool

	value float64
}

func NewAxis() *Axis {
	return &Axis{Sensitivity: 3, Gravity: 3, Snap: true}
}

func (a *Axis) Value() float64 {
	if a == nil {
		return 0
	}
	return a.value
}

func (a *Axis) Reset() {
	if a != nil {
		a.value = 0
	}
}

// Update moves the value toward target over dt seconds and returns it.
func (a *Axis) Update(target, dt float64) float64 {
	if a == nil {
		return 0
	}
	target = common.Clamp(target, -1, 1)
	if dt <= 0 {
		return a.value
	}
	if a.Snap && target != 0 && a.value != 0 && math.Signbit(target) != math.Signbit(a.value) {
		a.value = 0
	}

	rate := a.Sensitivity
	if target == 0 {
		rate = a.Gravity
	}
	if rate <= 0 {
		a.value = target
		return a.value
	}

	step := rate * dt
	switch {
	case a.value < target:
		a.value = math.Min(a.value+step, target)
	case a.value > target:
		a.value = math.Max(a.value-step, target)
	}
	return a.value
}
