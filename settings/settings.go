// Package settings persists player preferences between runs.
package settings

import (
	"fmt"
	"log"

	"github.com/milk9111/smb/common"
	"github.com/milk9111/smb/movement"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const AppName = "smb"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

type Settings struct {
	// Revision is the controller preset, see movement.Preset.
	Revision     string  `yaml:"revision"`
	SoundVolume  float64 `yaml:"soundVolume"`
	SoundEnabled bool    `yaml:"soundEnabled"`
}

func Default() Settings {
	return Settings{
		Revision:     movement.RevisionClassic,
		SoundVolume:  0.8,
		SoundEnabled: true,
	}
}

// Manager loads and saves Settings through gdata. A nil gdata manager keeps
// everything in memory.
type Manager struct {
	store    *gdata.Manager
	settings Settings
}

// Open opens the per-user data directory for AppName. When the directory
// cannot be opened the manager still works, in memory only.
func Open() *Manager {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("settings: open storage: %v (settings will not persist)", err)
		store = nil
	}
	return NewManager(store)
}

func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, settings: Default()}
	if err := m.Load(); err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}
	return m
}

func (m *Manager) Load() error {
	m.settings = Default()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if _, err := movement.Preset(loaded.Revision); err != nil {
		return fmt.Errorf("stored revision: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	m.settings = loaded
	return nil
}

func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

func (m *Manager) Settings() Settings {
	return m.settings
}

// SetRevision rejects names movement.Preset does not know.
func (m *Manager) SetRevision(revision string) error {
	if _, err := movement.Preset(revision); err != nil {
		return err
	}
	m.settings.Revision = revision
	return nil
}

func (m *Manager) SetSoundVolume(volume float64) {
	m.settings.SoundVolume = clampVolume(volume)
}

func (m *Manager) SetSoundEnabled(enabled bool) {
	m.settings.SoundEnabled = enabled
}

func clampVolume(volume float64) float64 {
	return common.Clamp(volume, 0, 1)
}
