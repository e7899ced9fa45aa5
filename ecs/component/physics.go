package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Sizes are in pixels.
type PhysicsBody struct {
	Body          *cp.Body
	Shape         *cp.Shape
	Width         float64
	Height        float64
	Mass          float64
	Friction      float64
	Static        bool
	FixedRotation bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// GroundContact is written by the physics step: Contacts counts solid shapes
// touched during the last step and Grounded is whether any were.
type GroundContact struct {
	Grounded bool
	Contacts int
}

var GroundContactComponent = NewComponent[GroundContact]()
