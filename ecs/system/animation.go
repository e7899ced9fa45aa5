package system

import (
	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/ecs/component"
	"github.com/milk9111/smb/ecs/render"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := Clock(w).Delta

	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if ctrl, ok := ecs.Get(w, e, component.ControllerComponent.Kind()); ok {
			Play(anim, string(ctrl.State.Clip))
		}
		Advance(anim, dt)

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}
		sprite.Image = anim.Sheet
		sprite.Source = render.FrameRect(def.ColStart+anim.Frame, def.Row, def.FrameW, def.FrameH)
		sprite.UseSource = true
	})
}

// Play switches to the named clip. Switching restarts it; asking for the
// clip already showing does not.
func Play(anim *component.Animation, name string) {
	if anim == nil || name == "" {
		return
	}
	if _, ok := anim.Defs[name]; !ok {
		return
	}
	if anim.Current == name {
		anim.Playing = anim.Playing || anim.Defs[name].Loop
		return
	}
	anim.Current = name
	anim.Frame = 0
	anim.FrameTimer = 0
	anim.Playing = true
}

// Advance moves the current clip forward by dt seconds.
func Advance(anim *component.Animation, dt float64) {
	if anim == nil || !anim.Playing || dt <= 0 {
		return
	}
	def, ok := anim.Defs[anim.Current]
	if !ok || def.FrameCount <= 0 || def.FPS <= 0 {
		return
	}

	frameTime := 1 / def.FPS
	anim.FrameTimer += dt
	for anim.FrameTimer >= frameTime {
		anim.FrameTimer -= frameTime
		anim.Frame++
		if anim.Frame >= def.FrameCount {
			if def.Loop {
				anim.Frame = 0
				continue
			}
			anim.Frame = def.FrameCount - 1
			anim.Playing = false
			anim.FrameTimer = 0
			return
		}
	}
}
