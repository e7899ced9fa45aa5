package component

import "github.com/milk9111/smb/movement"

// Input stores the per-frame input snapshot for an entity along with what it
// needs to derive the next one.
type Input struct {
	Snapshot movement.Input
	Buttons  movement.Buttons
	Axis     movement.Axis
}

var InputComponent = NewComponent[Input]()
