package capsim

import (
	"github.com/capsim-dev/capsim/cmath"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// tryStepUp attempts to convert the wall hit left by the horizontal phase
// into a vertical hop: probe up for headroom, sweep forward over the
// obstacle, sweep back down for a landing within the step height. Any failed
// probe leaves the blocked result untouched; a successful climb commits the
// landing, clears the wall hit and re-runs the ground probes there.
func (ctx *resolveContext) tryStepUp() {
	s := ctx.solver
	conf := s.conf

	if conf.StepHeight <= 0 {
		return
	}
	intentLen := cmath.Vec3HzDist(ctx.horizontalIntent)
	if intentLen < minMoveEpsilon {
		return
	}

	// Headroom first: if the capsule cannot rise a full step, nothing
	// shorter than the obstacle fits above it either.
	if hit, ok, err := s.src.SweepCapsule(ctx.pos, s.shape, worldUp, conf.StepHeight, ctx.exclude); err != nil {
		ctx.fail("sweep capsule", err)
		return
	} else if ok {
		s.debugf("step: no headroom (blocked at %v)", hit.Distance)
		return
	}
	raised := ctx.pos
	raised[1] += conf.StepHeight

	// Forward along the pre-slide intent, for the portion the horizontal
	// phase could not consume.
	dir := ctx.horizontalIntent.Mul(1 / intentLen)
	consumed := ctx.pos.Sub(ctx.startPos).Dot(dir)
	forward := math32.Max(0, intentLen-consumed)
	if forward < minMoveEpsilon {
		return
	}
	if hit, ok, err := s.src.SweepCapsule(raised, s.shape, dir, forward, ctx.exclude); err != nil {
		ctx.fail("sweep capsule", err)
		return
	} else if ok {
		s.debugf("step: obstacle taller than a step (blocked at %v)", hit.Distance)
		return
	}
	forwarded := raised.Add(dir.Mul(forward))

	hit, ok, err := s.src.SweepCapsule(forwarded, s.shape, worldDown, conf.StepHeight+conf.SkinWidth, ctx.exclude)
	if err != nil {
		ctx.fail("sweep capsule", err)
		return
	}
	if !ok || hit.Distance > conf.StepHeight {
		s.debugf("step: no landing within step height (ok=%v)", ok)
		return
	}

	ctx.pos = forwarded
	ctx.pos[1] -= math32.Max(0, hit.Distance-conf.SkinWidth)
	ctx.stepped = true
	// The obstacle was bypassed, so it must not be reported as a hard block
	// to callers that gate on wall hits.
	ctx.hitWall = false
	ctx.wallNormal = mgl32.Vec3{}
	s.debugf("step: committed landing at %v", ctx.pos)

	ctx.onGround = false
	ctx.groundNormal = mgl32.Vec3{}
	ctx.classifyGround()
}
