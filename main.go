package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/smb/settings"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and hot reload of prefabs and level scripts")
	revision := flag.String("revision", "", "controller revision (classic or simplified); overrides the saved setting")
	levelName := flag.String("level", "first_level", "level script name in levels/scripts (basename, .tengo optional)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("smb")

	game, err := NewGame(GameOptions{
		Level:    *levelName,
		Revision: *revision,
		Debug:    *debug,
		Settings: settings.Open(),
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
