package entity

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/ecs/component"
	"github.com/milk9111/smb/movement"
)

// stubAssets keeps prefab builds off the GPU and the audio device.
func stubAssets(t *testing.T) {
	t.Helper()
	prevImage, prevAudio := loadImage, loadAudioPlayer
	loadImage = func(string) (*ebiten.Image, error) { return nil, nil }
	loadAudioPlayer = func(string) (*audio.Player, error) { return nil, nil }
	t.Cleanup(func() {
		loadImage, loadAudioPlayer = prevImage, prevAudio
	})
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNewMario(t *testing.T) {
	stubAssets(t)
	w := ecs.NewWorld()

	e, err := NewMario(w, 1, -2.8, "")
	if err != nil {
		t.Fatal(err)
	}

	for name, has := range map[string]bool{
		"player_tag":     ecs.Has(w, e, component.PlayerTagComponent.Kind()),
		"animation":      ecs.Has(w, e, component.AnimationComponent.Kind()),
		"render_layer":   ecs.Has(w, e, component.RenderLayerComponent.Kind()),
		"ground_contact": ecs.Has(w, e, component.GroundContactComponent.Kind()),
		"input":          ecs.Has(w, e, component.InputComponent.Kind()),
	} {
		if !has {
			t.Errorf("missing %s", name)
		}
	}

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if !near(tr.X, 100) || !near(tr.Y, -280) {
		t.Errorf("transform = %+v", tr)
	}

	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !near(body.Width, 28) || !near(body.Height, 32) || body.Static || !body.FixedRotation {
		t.Errorf("body = %+v", body)
	}

	ctrl, _ := ecs.Get(w, e, component.ControllerComponent.Kind())
	if ctrl.Config != movement.Classic() {
		t.Errorf("config = %+v", ctrl.Config)
	}
	if ctrl.State != movement.NewState() {
		t.Errorf("state = %+v", ctrl.State)
	}

	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if sprite.OriginX != 16 || sprite.OriginY != 16 || !sprite.UseSource || sprite.Source.Dx() != 32 {
		t.Errorf("sprite = %+v", sprite)
	}

	audioComp, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	if len(audioComp.Names) != 1 || audioComp.Names[0] != "jump" || len(audioComp.Play) != 1 {
		t.Errorf("audio = %+v", audioComp)
	}

	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	if input.Axis.Sensitivity != 3 || input.Axis.Gravity != 3 || !input.Axis.Snap {
		t.Errorf("axis = %+v", input.Axis)
	}
}

func TestNewMarioRevision(t *testing.T) {
	stubAssets(t)
	w := ecs.NewWorld()

	e, err := NewMario(w, 0, 0, movement.RevisionSimplified)
	if err != nil {
		t.Fatal(err)
	}
	ctrl, _ := ecs.Get(w, e, component.ControllerComponent.Kind())
	if ctrl.Config != movement.Simplified() {
		t.Fatalf("config = %+v", ctrl.Config)
	}

	if _, err := NewMario(w, 0, 0, "lost_levels"); err == nil {
		t.Fatal("expected error for unknown revision")
	}
}

func TestNewCamera(t *testing.T) {
	stubAssets(t)
	w := ecs.NewWorld()
	e, err := NewCamera(w)
	if err != nil {
		t.Fatal(err)
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		t.Fatal("no camera component")
	}
	if !near(cam.HalfWidth, 6.4) || !near(cam.HalfHeight, 3.6) || cam.Follow {
		t.Fatalf("camera = %+v", cam)
	}
	if cam.ClearColor.A != 0xff {
		t.Fatalf("clear color = %v", cam.ClearColor)
	}
}

func TestSpawnFloor(t *testing.T) {
	stubAssets(t)
	w := ecs.NewWorld()

	tiles, err := SpawnFloor(w, FloorPrefab, 6.4, 3.6, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tiles) != 80 {
		t.Fatalf("%d tiles, want 80", len(tiles))
	}
	for _, e := range tiles {
		if !ecs.Has(w, e, component.FloorTagComponent.Kind()) || !ecs.Has(w, e, component.StaticTileComponent.Kind()) {
			t.Fatalf("tile %v missing tags", e)
		}
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !body.Static {
			t.Fatalf("tile %v is not static", e)
		}
	}
	first, _ := ecs.Get(w, tiles[0], component.TransformComponent.Kind())
	if !near(first.X, -624) || !near(first.Y, -360) {
		t.Fatalf("first tile at %v,%v", first.X, first.Y)
	}

	none, err := SpawnFloor(w, FloorPrefab, 6.4, 3.6, 0)
	if err != nil || len(none) != 0 {
		t.Fatalf("zero lines: %v, %v", none, err)
	}
}

func TestLoadLevel(t *testing.T) {
	stubAssets(t)
	w := ecs.NewWorld()

	host, err := LoadLevel(w, "first_level", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(host.Tiles) != 80 || len(host.Spawned) != 1 {
		t.Fatalf("tiles=%d spawned=%d", len(host.Tiles), len(host.Spawned))
	}
	mario := host.Spawned[0]
	if !ecs.Has(w, mario, component.PlayerTagComponent.Kind()) {
		t.Fatal("spawned entity is not the player")
	}
	tr, _ := ecs.Get(w, mario, component.TransformComponent.Kind())
	if !near(tr.X, 0) || !near(tr.Y, -280) {
		t.Fatalf("mario at %v,%v", tr.X, tr.Y)
	}
	if n := len(w.Query(component.CameraComponent.Kind().ID())); n != 1 {
		t.Fatalf("%d cameras", n)
	}
}

func TestBuildEntityErrors(t *testing.T) {
	stubAssets(t)

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "prefabs"), 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, "prefabs", name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("goomba.yaml", "name: goomba\ncomponents:\n  transform: {}\n  walker: {}\n")
	write("empty.yaml", "name: empty\n")
	write("brick.yaml", "name: brick\ncomponents:\n  physics_body: {width: 0, height: 0}\n")
	t.Chdir(dir)

	tests := []struct {
		prefab string
		want   string
	}{
		{prefab: "missing.yaml", want: "load"},
		{prefab: "empty.yaml", want: "does not define components"},
		{prefab: "goomba.yaml", want: `no builder for component "walker"`},
		{prefab: "brick.yaml", want: "positive size"},
	}
	for _, tt := range tests {
		t.Run(tt.prefab, func(t *testing.T) {
			w := ecs.NewWorld()
			_, err := BuildEntity(w, tt.prefab)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
			if n := len(ecs.Entities(w)); n != 0 {
				t.Fatalf("%d entities left behind", n)
			}
		})
	}
}

func TestSpawnFloorRollsBack(t *testing.T) {
	stubAssets(t)

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "prefabs"), 0o755); err != nil {
		t.Fatal(err)
	}
	body := "name: cracked\ncomponents:\n  floor_tag: {}\n  physics_body: {width: -1, height: 0.32}\n"
	if err := os.WriteFile(filepath.Join(dir, "prefabs", "cracked.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	w := ecs.NewWorld()
	keep := ecs.CreateEntity(w)

	tiles, err := SpawnFloor(w, "cracked.yaml", 6.4, 3.6, 2)
	if err == nil || !strings.HasPrefix(err.Error(), "floor:") {
		t.Fatalf("err = %v, want a floor error", err)
	}
	if tiles != nil {
		t.Fatalf("got %d tiles on error", len(tiles))
	}
	if got := ecs.Entities(w); len(got) != 1 || got[0] != keep {
		t.Fatalf("entities after rollback = %v, want only %v", got, keep)
	}
}

func TestControllerConfigReload(t *testing.T) {
	stubAssets(t)
	w := ecs.NewWorld()
	e, err := NewMario(w, 0, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	ctrl, _ := ecs.Get(w, e, component.ControllerComponent.Kind())
	ctrl.State.Mode = movement.ModeMoving

	cfg, err := ControllerConfig(MarioPrefab, movement.RevisionSimplified)
	if err != nil {
		t.Fatal(err)
	}
	if n := ApplyControllerConfig(w, cfg); n != 1 {
		t.Fatalf("applied to %d controllers", n)
	}
	if ctrl.Config != movement.Simplified() || ctrl.State.Mode != movement.ModeMoving {
		t.Fatalf("controller = %+v", ctrl)
	}

	if _, err := ControllerConfig(CameraPrefab, ""); err == nil {
		t.Fatal("camera prefab has no controller")
	}
}
