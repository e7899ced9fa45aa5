package component

import "github.com/milk9111/smb/movement"

type Controller struct {
	Config movement.Config
	State  movement.State
}

var ControllerComponent = NewComponent[Controller]()
