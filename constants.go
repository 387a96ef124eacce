package capsim

import "github.com/go-gl/mathgl/mgl32"

// Defaults for a humanoid-sized actor.
const (
	DefaultHeight     = 1.8
	DefaultRadius     = 0.4
	DefaultStepHeight = 0.6
	DefaultSlopeLimit = 45.0
	DefaultSkinWidth  = 0.02
	DefaultMaxBounces = 5
)

const (
	// footprintSampleFactor scales the capsule radius to place the four
	// offset ground probes inside the footprint.
	footprintSampleFactor = 0.7
	// groundProbeEpsilon extends ground probes past the skin width so a
	// capsule hovering within its rest clearance still counts as standing.
	groundProbeEpsilon = 0.1
	// slideDamping shrinks each slide iteration so the bounce loop converges
	// even in concave corners where slide vectors re-trigger the same pair
	// of surfaces at floating-point precision.
	slideDamping = 0.98
	// minMoveEpsilon is the displacement length below which a phase treats
	// the remaining movement as resolved.
	minMoveEpsilon = 1e-4
	// velocitySnapEpsilon zeroes out denormal-scale velocity components
	// before simulation.
	velocitySnapEpsilon = 1e-6
)

var worldUp = mgl32.Vec3{0, 1, 0}

var worldDown = mgl32.Vec3{0, -1, 0}
