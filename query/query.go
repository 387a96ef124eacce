// Package query defines the boundary between the motion solver and the
// physics world it resolves against. The solver treats the world as an opaque
// geometry oracle: it only ever asks for swept capsule casts and thin ray
// casts, and never mutates or owns the world.
package query

import "github.com/go-gl/mathgl/mgl32"

// Ref is a stable, opaque handle identifying a body registered with a
// provider. Passing the moving actor's own Ref to a query excludes its
// collider from the results, so the actor never blocks itself. Handle
// comparison is used instead of live object references on purpose: broad
// phases that hand back the actor's own collider are a classic source of
// self-collision bugs.
type Ref uint64

// NoRef excludes nothing.
const NoRef Ref = 0

// Capsule is a vertical-axis capsule: a cylinder capped by two hemispheres.
// Height is the total height, pole to pole.
type Capsule struct {
	Height float32
	Radius float32
}

// HalfHeight returns half the total height, the distance from the capsule
// center to either pole.
func (c Capsule) HalfHeight() float32 {
	return c.Height * 0.5
}

// Hit describes the nearest contact found by a sweep or ray cast.
type Hit struct {
	// Distance is the time-of-impact distance along the query direction.
	Distance float32
	// Normal is the unit surface normal at the contact.
	Normal mgl32.Vec3
	// Point is the contact point in world space.
	Point mgl32.Vec3
}

// Provider exposes the two geometry primitives the solver needs. Both report
// the nearest contact only; "nothing hit" is the ok=false return, not an
// error. A non-nil error means the world itself faulted and the current
// resolve should be abandoned.
type Provider interface {
	// SweepCapsule casts the capsule, centered at origin, along the unit
	// direction dir for at most maxDist.
	SweepCapsule(origin mgl32.Vec3, shape Capsule, dir mgl32.Vec3, maxDist float32, exclude Ref) (Hit, bool, error)
	// CastRay casts a thin ray from origin along the unit direction dir for
	// at most maxDist.
	CastRay(origin, dir mgl32.Vec3, maxDist float32, exclude Ref) (Hit, bool, error)
}
