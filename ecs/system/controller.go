package system

import (
	"log"

	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/ecs/component"
	"github.com/milk9111/smb/movement"
)

// JumpClip is the audio clip name requested while a jump is thrusting.
const JumpClip = "jump"

// ControllerSystem runs the movement transition once per frame.
type ControllerSystem struct {
	debug bool
}

func NewControllerSystem(debug bool) *ControllerSystem {
	return &ControllerSystem{debug: debug}
}

func (c *ControllerSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	now := Clock(w).Now

	ecs.ForEach2(w, component.ControllerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, ctrl *component.Controller, input *component.Input) {
		grounded := false
		if gc, ok := ecs.Get(w, e, component.GroundContactComponent.Kind()); ok {
			grounded = gc.Grounded
		}

		prev := ctrl.State
		ctrl.State = movement.Step(prev, input.Snapshot, now, grounded, ctrl.Config)

		if ctrl.Config.JumpSound && ctrl.State.Thrusting {
			if audioComp, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
				audioComp.Request(JumpClip)
			}
		}

		if c.debug && ctrl.State.Clip != prev.Clip {
			log.Printf("controller: %v %s -> %s (%s, grounded=%t)", e, prev.Clip, ctrl.State.Clip, ctrl.State.Mode, grounded)
		}
	})
}
