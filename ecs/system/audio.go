package system

import (
	"log"

	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/ecs/component"
)

// AudioSystem starts requested clips that are not already playing.
type AudioSystem struct {
	volume  float64
	enabled bool
}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{volume: 1, enabled: true}
}

// SetVolume scales every clip's volume; disabled drops requests.
func (a *AudioSystem) SetVolume(volume float64, enabled bool) {
	if a == nil {
		return
	}
	a.volume = volume
	a.enabled = enabled
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		for i := range audioComp.Play {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false
			if !a.enabled || i >= len(audioComp.Players) {
				continue
			}

			player := audioComp.Players[i]
			if player == nil {
				continue
			}
			volume := a.volume
			if i < len(audioComp.Volume) {
				volume *= audioComp.Volume[i]
			}
			name := ""
			if i < len(audioComp.Names) {
				name = audioComp.Names[i]
			}
			playClip(player, name, volume)
		}
	})
}

// clipPlayer is the part of *audio.Player the system drives.
type clipPlayer interface {
	IsPlaying() bool
	SetVolume(volume float64)
	Rewind() error
	Play()
}

// playClip restarts p from the beginning unless it is still playing.
func playClip(p clipPlayer, name string, volume float64) bool {
	if p.IsPlaying() {
		return false
	}
	p.SetVolume(volume)
	if err := p.Rewind(); err != nil {
		log.Printf("audio: rewind clip %q: %v", name, err)
		return false
	}
	p.Play()
	return true
}
