package system

import (
	"github.com/milk9111/smb/common"
	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update publishes the camera's visible half extents and, when the camera
// follows, eases it toward the player.
func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camComp.HalfWidth, camComp.HalfHeight = HalfExtents(camComp.OrthoSize)

	if !camComp.Follow {
		return
	}
	if !cs.targetEntity.Valid() || !w.IsAlive(cs.targetEntity) {
		target, ok := ecs.First(w, component.PlayerTagComponent.Kind())
		if !ok {
			return
		}
		cs.targetEntity = target
	}

	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	t := camComp.Smoothness
	if t <= 0 || t > 1 {
		t = 1
	}
	camTransform.X = common.Lerp(camTransform.X, targetTransform.X, t)
	camTransform.Y = common.Lerp(camTransform.Y, targetTransform.Y, t)
}

// HalfExtents is the visible half width and half height in world units for
// a vertical half size, at the fixed 16:9 layout.
func HalfExtents(orthoSize float64) (halfW, halfH float64) {
	if orthoSize <= 0 {
		orthoSize = common.PixelsToUnits(common.BaseHeight / 2)
	}
	return orthoSize * common.BaseWidth / common.BaseHeight, orthoSize
}

// Zoom maps world pixels to screen pixels for a camera.
func Zoom(cam *component.Camera) float64 {
	if cam == nil || cam.OrthoSize <= 0 {
		return 1
	}
	return (common.BaseHeight / 2) / common.UnitsToPixels(cam.OrthoSize)
}
