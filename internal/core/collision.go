package core

// BodyID is an opaque identifier for one collider known to the physics engine.
type BodyID uint32

// Role tags what a collider stands for in the game.
type Role uint8

const (
	RoleNone Role = iota
	RoleBird
	RoleScoreZone
	RolePipeBody
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleBird:
		return "bird"
	case RoleScoreZone:
		return "score_zone"
	case RolePipeBody:
		return "pipe_body"
	default:
		return "none"
	}
}

// CollisionEvent reports that two colliders started overlapping during a step.
// A and B are unordered.
type CollisionEvent struct {
	A, B BodyID
}

// RoleLookup answers whether a collider carries a role.
type RoleLookup interface {
	HasRole(id BodyID, r Role) bool
}

// RoleTable is a map-backed RoleLookup.
type RoleTable map[BodyID]Role

// HasRole implements RoleLookup.
func (t RoleTable) HasRole(id BodyID, r Role) bool {
	role, ok := t[id]
	return ok && role == r
}

// Pairs reports whether the event joins a collider tagged a with one tagged b,
// in either order.
func (e CollisionEvent) Pairs(roles RoleLookup, a, b Role) bool {
	return (roles.HasRole(e.A, a) && roles.HasRole(e.B, b)) ||
		(roles.HasRole(e.B, a) && roles.HasRole(e.A, b))
}
