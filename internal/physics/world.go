// Package physics detects overlaps between the game's colliders using the
// Chipmunk2D port. It does not resolve contacts: every collider is either a
// position-driven body or a sensor, and the only output is the list of
// overlaps that began during a step.
package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/mystal/flappy-bevy/internal/core"
)

// Part is one collider of a compound body, positioned relative to the body.
type Part struct {
	ID    core.BodyID
	Role  core.Role
	Local core.Box
}

// World wraps a cp.Space and maps shapes back to body IDs.
type World struct {
	space  *cp.Space
	bodies map[core.BodyID]*cp.Body
	shapes map[*cp.Shape]core.BodyID
	roles  core.RoleTable
	events []core.CollisionEvent
}

// NewWorld creates an empty world without gravity.
func NewWorld() *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &World{
		space:  space,
		bodies: make(map[core.BodyID]*cp.Body),
		shapes: make(map[*cp.Shape]core.BodyID),
		roles:  make(core.RoleTable),
	}
}

// Watch reports every overlap that begins between a collider with role r and
// any other collider. Watch one side of each pair only, or events are doubled.
func (w *World) Watch(r core.Role) {
	handler := w.space.NewWildcardCollisionHandler(cp.CollisionType(r))
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		a, b := arb.Shapes()
		idA, okA := w.shapes[a]
		idB, okB := w.shapes[b]
		if okA && okB {
			w.events = append(w.events, core.CollisionEvent{A: idA, B: idB})
		}
		return true
	}
}

// AddCircle adds a solid moving circle. Its position is set by the caller.
func (w *World) AddCircle(id core.BodyID, role core.Role, pos core.Vec2, radius float64) error {
	if _, ok := w.bodies[id]; ok {
		return fmt.Errorf("physics: body %d already exists", id)
	}
	const mass = 1.0
	body := w.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{})))
	body.SetPosition(vec(pos))

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetCollisionType(cp.CollisionType(role))
	w.space.AddShape(shape)

	w.bodies[id] = body
	w.shapes[shape] = id
	w.roles[id] = role
	return nil
}

// AddCompound adds a kinematic body made of sensor boxes.
func (w *World) AddCompound(id core.BodyID, pos core.Vec2, parts ...Part) error {
	if _, ok := w.bodies[id]; ok {
		return fmt.Errorf("physics: body %d already exists", id)
	}
	for _, p := range parts {
		if _, ok := w.roles[p.ID]; ok {
			return fmt.Errorf("physics: collider %d already exists", p.ID)
		}
	}
	body := w.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(vec(pos))

	for _, p := range parts {
		bb := cp.BB{L: p.Local.Left(), B: p.Local.Bottom(), R: p.Local.Right(), T: p.Local.Top()}
		shape := cp.NewBox2(body, bb, 0)
		shape.SetSensor(true)
		shape.SetCollisionType(cp.CollisionType(p.Role))
		w.space.AddShape(shape)

		w.shapes[shape] = p.ID
		w.roles[p.ID] = p.Role
	}
	w.bodies[id] = body
	return nil
}

// Move teleports a body. Unknown IDs are ignored.
func (w *World) Move(id core.BodyID, pos core.Vec2) {
	body, ok := w.bodies[id]
	if !ok {
		return
	}
	body.SetPosition(vec(pos))
	body.SetVelocity(0, 0)
}

// Step advances the space and returns the overlaps that began during it.
// The returned slice is only valid until the next Step.
func (w *World) Step(dt float64) []core.CollisionEvent {
	w.events = w.events[:0]
	w.space.Step(dt)
	return w.events
}

// HasRole implements core.RoleLookup.
func (w *World) HasRole(id core.BodyID, r core.Role) bool {
	return w.roles.HasRole(id, r)
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

func vec(v core.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}
