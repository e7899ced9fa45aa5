package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named sound players. Play is a per-frame request consumed by
// the audio system.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
}

// Request asks for the named clip to start this frame. It reports false if
// the entity has no such clip.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return true
		}
	}
	return false
}

var AudioComponent = NewComponent[Audio]()
