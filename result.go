package capsim

import "github.com/go-gl/mathgl/mgl32"

// Result captures the outcome of a single resolve call. It is plain data:
// the caller owns it and feeds Position and Velocity back as the next tick's
// actor state.
type Result struct {
	// Position is the collision-corrected position for this tick.
	Position mgl32.Vec3
	// Velocity is the collision-corrected velocity, recomputed from the
	// displacement actually achieved so blocked movement reads as reduced
	// speed next tick.
	Velocity mgl32.Vec3

	// OnGround reports whether the actor stands on a walkable surface, as
	// decided by the footprint probes after both movement phases.
	OnGround bool
	// GroundNormal is the walkable surface normal when OnGround is true.
	GroundNormal mgl32.Vec3

	// HitWall reports that the horizontal phase was blocked and the block
	// was not bypassed by a step climb.
	HitWall bool
	// WallNormal is the last blocking surface normal when HitWall is true.
	WallNormal mgl32.Vec3

	// HitCeiling reports that the vertical phase bumped into geometry while
	// ascending.
	HitCeiling bool
	// Stepped reports that a blocked horizontal move was converted into a
	// hop onto an obstacle within the configured step height.
	Stepped bool

	// Err is set when the shape-query provider faulted mid-call. Position
	// and Velocity then hold the best state computed before the fault, at
	// minimum the unmodified input.
	Err error
}
