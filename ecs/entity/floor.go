package entity

import (
	"fmt"

	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/levels"
)

const FloorPrefab = "floor_stone.yaml"

// SpawnFloor tiles prefabPath along the bottom of a view with the given half
// extents in world units, lines rows deep. It returns the tiles created.
func SpawnFloor(w *ecs.World, prefabPath string, halfW, halfH float64, lines int) ([]ecs.Entity, error) {
	positions := levels.FloorPositions(halfW, halfH, levels.TilePitch, lines)
	tiles := make([]ecs.Entity, 0, len(positions))
	for _, p := range positions {
		// SpawnAt destroys the tile itself when building or placing fails
		e, err := SpawnAt(w, prefabPath, p.X, p.Y, "")
		if err != nil {
			for _, t := range tiles {
				ecs.DestroyEntity(w, t)
			}
			return nil, fmt.Errorf("floor: %w", err)
		}
		tiles = append(tiles, e)
	}
	return tiles, nil
}
