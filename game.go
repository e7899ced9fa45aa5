package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/smb/common"
	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/ecs/component"
	"github.com/milk9111/smb/ecs/entity"
	"github.com/milk9111/smb/ecs/system"
	"github.com/milk9111/smb/movement"
	"github.com/milk9111/smb/prefabs"
	"github.com/milk9111/smb/settings"
)

// revisions is the order the pause menu cycles through.
var revisions = []string{movement.RevisionClassic, movement.RevisionSimplified}

type GameOptions struct {
	Level    string
	Revision string
	Debug    bool
	Settings *settings.Manager
}

type Game struct {
	world *ecs.World

	inputPhase *ecs.Scheduler
	framePhase *ecs.Scheduler
	physics    *system.PhysicsSystem
	fixed      *ecs.FixedStep
	render     *system.RenderSystem
	audio      *system.AudioSystem

	settings *settings.Manager
	watcher  *prefabs.Watcher
	pauseUI  *pauseMenu

	level    string
	revision string
	debug    bool
	paused   bool
	quit     bool
}

func NewGame(opts GameOptions) (*Game, error) {
	if opts.Settings == nil {
		opts.Settings = settings.NewManager(nil)
	}
	if opts.Level == "" {
		opts.Level = "first_level"
	}
	revision := opts.Revision
	if revision == "" {
		revision = opts.Settings.Settings().Revision
	}
	if _, err := movement.Preset(revision); err != nil {
		return nil, err
	}

	g := &Game{
		render:   system.NewRenderSystem(),
		audio:    system.NewAudioSystem(),
		settings: opts.Settings,
		level:    opts.Level,
		revision: revision,
		debug:    opts.Debug,
	}
	g.applySound()

	if err := g.loadWorld(); err != nil {
		return nil, err
	}

	if opts.Debug {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("levels", "scripts"))
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = newPauseMenu(g)
	return g, nil
}

// loadWorld builds a fresh world and systems for the current level. The old
// world is kept when the level fails to load.
func (g *Game) loadWorld() error {
	w := ecs.NewWorld()
	if _, err := entity.LoadLevel(w, g.level, g.revision); err != nil {
		return fmt.Errorf("load level %q: %w", g.level, err)
	}

	g.world = w
	g.inputPhase = ecs.NewScheduler(
		system.NewClockSystem(1.0/common.TPS),
		system.NewInputSystem(nil),
	)
	g.framePhase = ecs.NewScheduler(
		system.NewControllerSystem(g.debug),
		system.NewAnimationSystem(),
		g.audio,
		system.NewCameraSystem(),
	)
	g.physics = system.NewPhysicsSystem(common.FixedStep)
	g.fixed = ecs.NewFixedStep(common.FixedStep, common.MaxFixedSteps)
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		g.close()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		system.ResetInput(g.world)
		g.pauseUI.Refresh(g)
	}
	if g.paused {
		g.pauseUI.ui.Update()
		return nil
	}

	g.hotReload()

	g.inputPhase.Update(g.world)
	steps := g.fixed.Advance(system.Clock(g.world).Delta)
	for i := 0; i < steps; i++ {
		g.physics.Update(g.world)
	}
	g.framePhase.Update(g.world)
	return nil
}

func (g *Game) hotReload() {
	if g.watcher == nil {
		return
	}
	for _, change := range g.watcher.Drain() {
		switch {
		case change.Script && strings.TrimSuffix(change.Name, filepath.Ext(change.Name)) == g.level:
			if err := g.loadWorld(); err != nil {
				log.Printf("reload %s: %v", change.Name, err)
				continue
			}
			log.Printf("reloaded level %s", g.level)
		case !change.Script && change.Name == entity.MarioPrefab:
			if err := g.reloadController(); err != nil {
				log.Printf("reload %s: %v", change.Name, err)
				continue
			}
			log.Printf("reloaded controller tuning from %s", change.Name)
		}
	}
	for drained := false; !drained; {
		select {
		case err := <-g.watcher.Errors:
			log.Printf("watcher: %v", err)
		default:
			drained = true
		}
	}
}

func (g *Game) reloadController() error {
	cfg, err := entity.ControllerConfig(entity.MarioPrefab, g.revision)
	if err != nil {
		return err
	}
	entity.ApplyControllerConfig(g.world, cfg)
	return nil
}

// SetRevision switches every controller to another preset and persists the
// choice.
func (g *Game) SetRevision(revision string) error {
	if err := g.settings.SetRevision(revision); err != nil {
		return err
	}
	prev := g.revision
	g.revision = revision
	if err := g.reloadController(); err != nil {
		g.revision = prev
		return err
	}
	if err := g.settings.Save(); err != nil {
		log.Printf("save settings: %v", err)
	}
	return nil
}

func (g *Game) cycleRevision() {
	next := revisions[0]
	for i, r := range revisions {
		if r == g.revision {
			next = revisions[(i+1)%len(revisions)]
			break
		}
	}
	if err := g.SetRevision(next); err != nil {
		log.Printf("set revision %q: %v", next, err)
	}
}

func (g *Game) toggleSound() {
	g.settings.SetSoundEnabled(!g.settings.Settings().SoundEnabled)
	g.applySound()
	if err := g.settings.Save(); err != nil {
		log.Printf("save settings: %v", err)
	}
}

func (g *Game) applySound() {
	s := g.settings.Settings()
	g.audio.SetVolume(s.SoundVolume, s.SoundEnabled)
}

func (g *Game) close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		log.Printf("close watcher: %v", err)
	}
	g.watcher = nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugLine())
	}

	if g.paused {
		g.pauseUI.ui.Draw(screen)
	}
}

func (g *Game) debugLine() string {
	line := fmt.Sprintf("FPS: %.2f  revision: %s", ebiten.ActualFPS(), g.revision)
	e, ok := ecs.First(g.world, component.PlayerTagComponent.Kind())
	if !ok {
		return line
	}
	if ctrl, ok := ecs.Get(g.world, e, component.ControllerComponent.Kind()); ok {
		line += fmt.Sprintf("\nmode: %s  facing: %s  speed: %.1f  clip: %s",
			ctrl.State.Mode, ctrl.State.Facing, ctrl.State.Speed, ctrl.State.Clip)
	}
	if gc, ok := ecs.Get(g.world, e, component.GroundContactComponent.Kind()); ok {
		line += fmt.Sprintf("  grounded: %t", gc.Grounded)
	}
	return line
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
