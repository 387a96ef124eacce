package capsim

import (
	"github.com/capsim-dev/capsim/cerror"
	"github.com/capsim-dev/capsim/cmath"
	"github.com/capsim-dev/capsim/query"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// resolveContext is the pooled per-call scratch state. It must never be
// retained past the Resolve call that borrowed it.
type resolveContext struct {
	solver *Solver

	startPos   mgl32.Vec3
	pos        mgl32.Vec3
	desiredVel mgl32.Vec3
	dt         float32
	exclude    query.Ref

	// horizontalIntent is the pre-slide horizontal displacement for this
	// step; the step climber probes along it rather than along whatever
	// direction the slide loop ended up in.
	horizontalIntent mgl32.Vec3

	onGround     bool
	groundNormal mgl32.Vec3
	hitWall      bool
	wallNormal   mgl32.Vec3
	hitCeiling   bool
	landed       bool
	stepped      bool

	err error
}

func (ctx *resolveContext) fail(op string, err error) {
	ctx.err = cerror.NewQueryError(op, err)
	ctx.solver.warnf("aborting resolve: %v", ctx.err)
}

// result assembles the immutable output record. Horizontal velocity is
// recomputed from the displacement actually achieved over dt; a surviving
// wall hit additionally projects it onto the wall plane so a head-on block
// reads as zero speed, not as the partial advance made this tick.
func (ctx *resolveContext) result() Result {
	vel := mgl32.Vec3{
		(ctx.pos.X() - ctx.startPos.X()) / ctx.dt,
		ctx.desiredVel.Y(),
		(ctx.pos.Z() - ctx.startPos.Z()) / ctx.dt,
	}
	if ctx.hitCeiling {
		vel[1] = math32.Min(vel[1], 0)
	}
	if ctx.landed {
		vel[1] = math32.Max(vel[1], 0)
	}
	if ctx.hitWall {
		vel = cmath.Reject(vel, ctx.wallNormal)
	}

	return Result{
		Position:     ctx.pos,
		Velocity:     vel,
		OnGround:     ctx.onGround,
		GroundNormal: ctx.groundNormal,
		HitWall:      ctx.hitWall,
		WallNormal:   ctx.wallNormal,
		HitCeiling:   ctx.hitCeiling,
		Stepped:      ctx.stepped,
		Err:          ctx.err,
	}
}
