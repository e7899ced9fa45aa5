package system

import (
	"github.com/milk9111/smb/common"
	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/ecs/component"
)

// ClockSystem advances the world clock once per engine frame.
type ClockSystem struct {
	dt float64
}

// NewClockSystem uses dt seconds per frame, or 1/TPS when dt is not positive.
func NewClockSystem(dt float64) *ClockSystem {
	if dt <= 0 {
		dt = 1.0 / common.TPS
	}
	return &ClockSystem{dt: dt}
}

func (c *ClockSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	clk := Clock(w)
	clk.Delta = c.dt
	clk.Frame++
	clk.Now = float64(clk.Frame) * c.dt
}

// Clock returns the world clock, creating its entity on first use.
func Clock(w *ecs.World) *component.Clock {
	if e, ok := ecs.First(w, component.ClockComponent.Kind()); ok {
		if clk, ok := ecs.Get(w, e, component.ClockComponent.Kind()); ok {
			return clk
		}
	}
	clk := &component.Clock{FixedDelta: common.FixedStep}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ClockComponent.Kind(), clk); err != nil {
		panic("clock system: add clock: " + err.Error())
	}
	return clk
}
