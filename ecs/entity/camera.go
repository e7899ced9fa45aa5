package entity

import (
	"github.com/milk9111/smb/ecs"
)

const CameraPrefab = "camera.yaml"

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, CameraPrefab)
}
