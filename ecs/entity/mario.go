package entity

import (
	"fmt"

	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/ecs/component"
	"github.com/milk9111/smb/movement"
	"github.com/milk9111/smb/prefabs"
)

const MarioPrefab = "mario.yaml"

// NewMario builds the player at (x, y) in world units.
func NewMario(w *ecs.World, x, y float64, revision string) (ecs.Entity, error) {
	return SpawnAt(w, MarioPrefab, x, y, revision)
}

// SpawnAt builds a prefab and moves it to (x, y) in world units.
func SpawnAt(w *ecs.World, prefabPath string, x, y float64, revision string) (ecs.Entity, error) {
	e, err := Build(w, prefabPath, BuildOptions{Revision: revision})
	if err != nil {
		return 0, err
	}
	if err := SetEntityPosition(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("spawn %q: override transform: %w", prefabPath, err)
	}
	return e, nil
}

// ControllerConfig re-reads a prefab's controller tuning, resolved against
// revision when it is set.
func ControllerConfig(prefabPath, revision string) (movement.Config, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return movement.Config{}, err
	}
	raw, ok := spec.Components["controller"]
	if !ok {
		return movement.Config{}, fmt.Errorf("controller config: prefab %q has no controller", prefabPath)
	}
	ctrl, err := prefabs.DecodeComponentSpec[controllerSpec](raw)
	if err != nil {
		return movement.Config{}, fmt.Errorf("controller config: decode %q: %w", prefabPath, err)
	}
	return ctrl.WithRevision(revision).ToConfig()
}

// ApplyControllerConfig swaps the tuning of every controller in the world.
// Runtime state is kept, so a change mid-jump takes effect on the next
// frame.
func ApplyControllerConfig(w *ecs.World, cfg movement.Config) int {
	n := 0
	ecs.ForEach(w, component.ControllerComponent.Kind(), func(_ ecs.Entity, ctrl *component.Controller) {
		ctrl.Config = cfg
		n++
	})
	return n
}
