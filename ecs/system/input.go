package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/ecs/component"
	"github.com/milk9111/smb/movement"
)

const stickDeadzone = 0.2

// KeySource samples the held buttons for one frame.
type KeySource interface {
	Buttons() movement.Buttons
}

// KeySourceFunc adapts a function to KeySource.
type KeySourceFunc func() movement.Buttons

func (f KeySourceFunc) Buttons() movement.Buttons { return f() }

// EbitenKeys reads the arrow keys, X and Up for jump, and the first gamepad.
type EbitenKeys struct{}

func (EbitenKeys) Buttons() movement.Buttons {
	b := movement.Buttons{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:    ebiten.IsKeyPressed(ebiten.KeyX),
		JumpAlt: ebiten.IsKeyPressed(ebiten.KeyArrowUp),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			b.Stick = leftX
			b.Left = b.Left || leftX < 0
			b.Right = b.Right || leftX > 0
		}
		b.Left = b.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		b.Right = b.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		b.Jump = b.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return b
}

type InputSystem struct {
	source KeySource
}

// NewInputSystem polls source each frame; nil polls ebiten.
func NewInputSystem(source KeySource) *InputSystem {
	if source == nil {
		source = EbitenKeys{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	cur := i.source.Buttons()
	dt := Clock(w).Delta
	target := cur.Target()

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		axis := input.Axis.Update(target, dt)
		input.Snapshot = movement.NextInput(input.Buttons, cur, axis)
		input.Buttons = cur
	})
}

// ResetInput drops every held key and the axis value, so keys released
// while the game was not polling do not stay held.
func ResetInput(w *ecs.World) {
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Axis.Reset()
		input.Buttons = movement.Buttons{}
		input.Snapshot = movement.Input{}
	})
}
