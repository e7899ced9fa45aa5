package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/smb/common"
	"github.com/milk9111/smb/ecs"
	"github.com/milk9111/smb/ecs/component"
	"github.com/milk9111/smb/movement"
)

const (
	collisionTypeController cp.CollisionType = iota + 1
	collisionTypeSolid
)

// PhysicsSystem runs one fixed step of the Chipmunk space per Update.
type PhysicsSystem struct {
	space         *cp.Space
	step          float64
	handlersReady bool

	entities         map[ecs.Entity]*bodyInfo
	controllerShapes map[*cp.Shape]ecs.Entity
	contacts         map[ecs.Entity]int
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(step float64) *PhysicsSystem {
	if step <= 0 {
		step = common.FixedStep
	}
	return &PhysicsSystem{
		space:            newSpace(),
		step:             step,
		entities:         make(map[ecs.Entity]*bodyInfo),
		controllerShapes: make(map[*cp.Shape]ecs.Entity),
		contacts:         make(map[ecs.Entity]int),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.UnitsToPixels(common.Gravity)})
	return space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	clk := Clock(w)

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.applyControllers(w, clk.FixedNow)
	ps.resetContacts()

	ps.space.Step(ps.step)

	ps.flushContacts(w)
	ps.syncTransforms(w)

	clk.FixedFrame++
	clk.FixedNow = float64(clk.FixedFrame) * ps.step
	clk.FixedDelta = ps.step
}

// ensureHandlers registers the contact callback that stands in for
// collision stay: any solid touched during a step grounds the controller.
func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeController, collisionTypeSolid)
	handler.UserData = ps
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		e, ok := sys.controllerShapes[shapeA]
		if !ok {
			if e, ok = sys.controllerShapes[shapeB]; !ok {
				return true
			}
		}
		sys.contacts[e]++
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
			return
		}

		isController := ecs.Has(w, e, component.ControllerComponent.Kind())
		info := ps.createBodyInfo(*transform, *bodyComp, isController)
		if info == nil {
			return
		}
		ps.entities[e] = info
		if isController && !info.static {
			ps.controllerShapes[info.shape] = e
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody, isController bool) *bodyInfo {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = 32, 32
	}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForBox(mass, width, height)
	if bodyComp.FixedRotation {
		moment = math.Inf(1)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	body.SetAngularVelocity(0)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetCollisionType(collisionTypeSolid)
	if isController {
		shape.SetCollisionType(collisionTypeController)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

// applyControllers overrides the velocity and sets the vertical force of
// every controlled body for the coming step. Forces reset after each step.
func (ps *PhysicsSystem) applyControllers(w *ecs.World, now float64) {
	ecs.ForEach3(w, component.ControllerComponent.Kind(), component.InputComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, ctrl *component.Controller, input *component.Input, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		grounded := false
		if gc, ok := ecs.Get(w, e, component.GroundContactComponent.Kind()); ok {
			grounded = gc.Grounded
		}

		vx, vy := movement.Velocity(ctrl.State, input.Snapshot)
		bodyComp.Body.SetVelocity(common.UnitsToPixels(vx), common.UnitsToPixels(vy))

		fy := movement.VerticalForce(ctrl.State, now, grounded, ctrl.Config)
		bodyComp.Body.SetForce(cp.Vector{X: 0, Y: common.UnitsToPixels(fy) * bodyComp.Body.Mass()})
	})
}

func (ps *PhysicsSystem) resetContacts() {
	for e := range ps.contacts {
		ps.contacts[e] = 0
	}
}

// flushContacts publishes the step's contacts: a controller that touched
// nothing has left the ground.
func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	for _, e := range ps.controllerShapes {
		gc, ok := ecs.Get(w, e, component.GroundContactComponent.Kind())
		if !ok {
			continue
		}
		gc.Contacts = ps.contacts[e]
		gc.Grounded = gc.Contacts > 0
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeInfo(info)
		delete(ps.entities, e)
		delete(ps.contacts, e)
	}
}

func (ps *PhysicsSystem) removeInfo(info *bodyInfo) {
	if info.shape != nil && ps.space != nil {
		ps.space.RemoveShape(info.shape)
		delete(ps.controllerShapes, info.shape)
	}
	if info.body != nil && !info.static && ps.space != nil {
		ps.space.RemoveBody(info.body)
	}
}
