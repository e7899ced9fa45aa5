package prefabs

import (
	"fmt"

	"github.com/milk9111/smb/movement"
	"gopkg.in/yaml.v3"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image   string  `yaml:"image"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	// CenterOrigin places the origin at the middle of the image.
	CenterOrigin bool `yaml:"center_origin"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type AnimationDefComponentSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type AnimationComponentSpec struct {
	Sheet   string                               `yaml:"sheet"`
	Defs    map[string]AnimationDefComponentSpec `yaml:"defs"`
	Current string                               `yaml:"current"`
	Playing bool                                 `yaml:"playing"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips []AudioClipSpec `yaml:"clips"`
}

// PhysicsBodyComponentSpec sizes are in world units.
type PhysicsBodyComponentSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
	Static   bool    `yaml:"static"`
	// FixedRotation keeps the body upright.
	FixedRotation bool `yaml:"fixed_rotation"`
}

type CameraComponentSpec struct {
	OrthoSize  float64    `yaml:"ortho_size"`
	Smoothness float64    `yaml:"smoothness"`
	ClearColor *YAMLColor `yaml:"clear_color"`
}

// ControllerComponentSpec picks a revision preset and overrides any of its
// fields. Unset fields keep the preset value.
type ControllerComponentSpec struct {
	Revision          string   `yaml:"revision"`
	MoveSpeed         *float64 `yaml:"move_speed"`
	JumpForce         *float64 `yaml:"jump_force"`
	FallForce         *float64 `yaml:"fall_force"`
	MaxJumpTime       *float64 `yaml:"max_jump_time"`
	GroundedJump      *bool    `yaml:"grounded_jump"`
	AirborneFallForce *bool    `yaml:"airborne_fall_force"`
	GroundedWalk      *bool    `yaml:"grounded_walk"`
	JumpSound         *bool    `yaml:"jump_sound"`
}

func (s ControllerComponentSpec) ToConfig() (movement.Config, error) {
	cfg, err := movement.Preset(s.Revision)
	if err != nil {
		return movement.Config{}, fmt.Errorf("prefabs: controller: %w", err)
	}

	setFloat(&cfg.MoveSpeed, s.MoveSpeed)
	setFloat(&cfg.JumpForce, s.JumpForce)
	setFloat(&cfg.FallForce, s.FallForce)
	setFloat(&cfg.MaxJumpTime, s.MaxJumpTime)
	setBool(&cfg.GroundedJump, s.GroundedJump)
	setBool(&cfg.AirborneFallForce, s.AirborneFallForce)
	setBool(&cfg.GroundedWalk, s.GroundedWalk)
	setBool(&cfg.JumpSound, s.JumpSound)

	if err := cfg.Validate(); err != nil {
		return movement.Config{}, fmt.Errorf("prefabs: controller: %w", err)
	}
	return cfg, nil
}

// WithRevision returns a copy that resolves against another preset.
func (s ControllerComponentSpec) WithRevision(revision string) ControllerComponentSpec {
	if revision != "" {
		s.Revision = revision
	}
	return s
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
