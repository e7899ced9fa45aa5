package entity

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/smb/assets"
	"github.com/milk9111/smb/common"
	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/ecs/component"
	"github.com/milk9111/smb/ecs/render"
	"github.com/milk9111/smb/ecs/system"
	"github.com/milk9111/smb/movement"
	"github.com/milk9111/smb/prefabs"
)

// Asset loaders. Tests swap these to build prefabs without a GPU or an
// audio device.
var (
	loadImage       = render.LoadImage
	loadAudioPlayer = assets.LoadAudioPlayer
)

type BuildOptions struct {
	// Revision replaces the controller revision named in the prefab.
	Revision string
}

type buildContext struct {
	PrefabPath string
	BuildOptions
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":     addPlayerTag,
	"camera_tag":     addCameraTag,
	"floor_tag":      addFloorTag,
	"static_tile":    addStaticTile,
	"transform":      addTransform,
	"animation":      addAnimation,
	"sprite":         addSprite,
	"render_layer":   addRenderLayer,
	"physics_body":   addPhysicsBody,
	"ground_contact": addGroundContact,
	"input":          addInput,
	"controller":     addController,
	"audio":          addAudio,
	"camera":         addCamera,
}

// sprite follows animation so a centered origin can use the frame size
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"floor_tag",
	"static_tile",
	"transform",
	"animation",
	"sprite",
	"render_layer",
	"physics_body",
	"ground_contact",
	"input",
	"controller",
	"audio",
	"camera",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	return Build(w, prefabPath, BuildOptions{})
}

func Build(w *ecs.World, prefabPath string, opts BuildOptions) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath, BuildOptions: opts}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
			delete(remaining, name)
		}
	}
	extra := make([]string, 0, len(remaining))
	for name := range remaining {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	if len(extra) > 0 {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, extra[0])
	}

	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// SetEntityPosition moves a freshly built entity to a point in world units.
func SetEntityPosition(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = common.UnitsToPixels(x)
	t.Y = common.UnitsToPixels(y)
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addFloorTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.FloorTagComponent.Kind(), &component.FloorTag{})
}

func addStaticTile(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.StaticTileComponent.Kind(), &component.StaticTile{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        common.UnitsToPixels(spec.X),
		Y:        common.UnitsToPixels(spec.Y),
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	sheet, err := loadImage(spec.Sheet)
	if err != nil {
		return fmt.Errorf("load animation sheet %q: %w", spec.Sheet, err)
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			Row:        def.Row,
			ColStart:   def.ColStart,
			FrameCount: def.FrameCount,
			FrameW:     def.FrameW,
			FrameH:     def.FrameH,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	if _, ok := defs[spec.Current]; spec.Current != "" && !ok {
		return fmt.Errorf("animation %q is not defined", spec.Current)
	}

	playing := spec.Playing
	if m, ok := raw.(map[string]any); ok {
		if _, has := m["playing"]; !has {
			playing = true
		}
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Sheet:   sheet,
		Defs:    defs,
		Current: spec.Current,
		Playing: playing,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	if spec.Image != "" {
		img, err := loadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}

	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	if spec.CenterOrigin {
		fw, fh := frameSize(w, e, sprite.Image)
		sprite.OriginX = fw / 2
		sprite.OriginY = fh / 2
	}

	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		if def, ok := anim.Defs[anim.Current]; ok {
			sprite.Source = render.FrameRect(def.ColStart, def.Row, def.FrameW, def.FrameH)
			sprite.UseSource = true
		}
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

// frameSize is the size of one animation frame, or of the whole image for
// a still sprite.
func frameSize(w *ecs.World, e ecs.Entity, img *ebiten.Image) (float64, float64) {
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		if def, ok := anim.Defs[anim.Current]; ok && def.FrameW > 0 && def.FrameH > 0 {
			return float64(def.FrameW), float64(def.FrameH)
		}
	}
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("physics body needs a positive size, got %vx%v", spec.Width, spec.Height)
	}

	width := common.UnitsToPixels(spec.Width)
	height := common.UnitsToPixels(spec.Height)
	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		width *= tr.ScaleX
		height *= tr.ScaleY
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:         width,
		Height:        height,
		Mass:          spec.Mass,
		Friction:      spec.Friction,
		Static:        spec.Static,
		FixedRotation: spec.FixedRotation,
	})
}

func addGroundContact(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.GroundContactComponent.Kind(), &component.GroundContact{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Axis: *movement.NewAxis()})
}

type controllerSpec = prefabs.ControllerComponentSpec

func addController(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[controllerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode controller spec: %w", err)
	}
	cfg, err := spec.WithRevision(ctx.Revision).ToConfig()
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.ControllerComponent.Kind(), &component.Controller{
		Config: cfg,
		State:  movement.NewState(),
	})
}

type audioClipSpec = prefabs.AudioClipSpec

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return nil
	}
	comp, err := buildAudioComponentFromSpec(spec.Clips)
	if err != nil {
		return fmt.Errorf("build audio component from spec: %w", err)
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

func buildAudioComponentFromSpec(audioSpecs []audioClipSpec) (*component.Audio, error) {
	n := len(audioSpecs)
	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)

	for i, clip := range audioSpecs {
		player, err := loadAudioPlayer(clip.File)
		if err != nil {
			return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
		}
		v := clip.Volume
		if v <= 0 {
			v = 1
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, v)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    make([]bool, n),
	}, nil
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	cam := &component.Camera{
		OrthoSize:  spec.OrthoSize,
		Smoothness: spec.Smoothness,
		Follow:     spec.Smoothness > 0,
		ClearColor: spec.ClearColor.RGBA8(color.NRGBA{}),
	}
	cam.HalfWidth, cam.HalfHeight = system.HalfExtents(cam.OrthoSize)
	cam.OrthoSize = cam.HalfHeight
	return ecs.Add(w, e, component.CameraComponent.Kind(), cam)
}
