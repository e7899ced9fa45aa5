package main

import (
	"image/color"

	"github.com/milk9111/smb/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// pauseMenu is the Escape overlay: resume, controller revision, sound, quit.
type pauseMenu struct {
	ui          *ebitenui.UI
	revisionBtn *widget.Button
	soundBtn    *widget.Button
}

func revisionLabel(revision string) string {
	return "Revision: " + revision
}

func soundLabel(enabled bool) string {
	if enabled {
		return "Sound: On"
	}
	return "Sound: Off"
}

func setButtonLabel(btn *widget.Button, label string) {
	if btn == nil {
		return
	}
	if text := btn.Text(); text != nil {
		text.Label = label
	}
}

// Refresh updates the toggle labels after the game state changed.
func (p *pauseMenu) Refresh(g *Game) {
	if p == nil || g == nil {
		return
	}
	setButtonLabel(p.revisionBtn, revisionLabel(g.revision))
	setButtonLabel(p.soundBtn, soundLabel(g.settings.Settings().SoundEnabled))
}

func newPauseMenu(g *Game) *pauseMenu {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(220, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	menu := &pauseMenu{}

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	resumeBtn := button("Resume", func() {
		g.paused = false
	})
	menu.revisionBtn = button(revisionLabel(g.revision), func() {
		g.cycleRevision()
		menu.Refresh(g)
	})
	menu.soundBtn = button(soundLabel(g.settings.Settings().SoundEnabled), func() {
		g.toggleSound()
		menu.Refresh(g)
	})
	quitBtn := button("Quit", func() {
		g.quit = true
	})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resumeBtn)
	panel.AddChild(menu.revisionBtn)
	panel.AddChild(menu.soundBtn)
	panel.AddChild(quitBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	menu.ui = &ebitenui.UI{Container: root}
	return menu
}
