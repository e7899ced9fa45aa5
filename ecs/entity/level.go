package entity

import (
	"fmt"

	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/ecs/component"
	"github.com/milk9111/smb/ecs/system"
	"github.com/milk9111/smb/levels"
)

// LevelHost lets a level script populate a world.
type LevelHost struct {
	World    *ecs.World
	Revision string

	Tiles   []ecs.Entity
	Spawned []ecs.Entity
}

var _ levels.Host = (*LevelHost)(nil)

// Bounds is the camera's visible half extents in world units.
func (h *LevelHost) Bounds() (float64, float64) {
	if e, ok := ecs.First(h.World, component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(h.World, e, component.CameraComponent.Kind()); ok {
			return system.HalfExtents(cam.OrthoSize)
		}
	}
	return system.HalfExtents(0)
}

func (h *LevelHost) Floor(prefab string, lines int) (int, error) {
	halfW, halfH := h.Bounds()
	tiles, err := SpawnFloor(h.World, prefab, halfW, halfH, lines)
	if err != nil {
		return 0, err
	}
	h.Tiles = append(h.Tiles, tiles...)
	return len(tiles), nil
}

func (h *LevelHost) Spawn(prefab string, x, y float64) error {
	e, err := SpawnAt(h.World, prefab, x, y, h.Revision)
	if err != nil {
		return fmt.Errorf("spawn %q: %w", prefab, err)
	}
	h.Spawned = append(h.Spawned, e)
	return nil
}

// LoadLevel builds the camera if the world has none, then runs the named
// level script against the world.
func LoadLevel(w *ecs.World, name, revision string) (*LevelHost, error) {
	if _, ok := ecs.First(w, component.CameraComponent.Kind()); !ok {
		if _, err := NewCamera(w); err != nil {
			return nil, fmt.Errorf("level %q: %w", name, err)
		}
	}
	host := &LevelHost{World: w, Revision: revision}
	if err := levels.RunScript(name, host); err != nil {
		return nil, err
	}
	return host, nil
}
