package capsim

import (
	"github.com/capsim-dev/capsim/cmath"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// moveHorizontal runs the slide-and-bounce loop over the world X/Z plane.
// Each blocked sweep advances up to the contact minus the skin width, records
// the wall, and redirects the unconsumed displacement tangent to the surface.
// The loop is bounded by MaxBounces; exhausting the cap stops with whatever
// has been accumulated, without a zero-penetration guarantee.
func (ctx *resolveContext) moveHorizontal() {
	s := ctx.solver
	conf := s.conf

	remaining := mgl32.Vec3{ctx.desiredVel.X() * ctx.dt, 0, ctx.desiredVel.Z() * ctx.dt}
	ctx.horizontalIntent = remaining

	for bounce := 0; bounce < conf.MaxBounces; bounce++ {
		dist := remaining.Len()
		if dist < minMoveEpsilon {
			return
		}
		dir := remaining.Mul(1 / dist)

		hit, ok, err := s.src.SweepCapsule(ctx.pos, s.shape, dir, dist, ctx.exclude)
		if err != nil {
			ctx.fail("sweep capsule", err)
			return
		}
		if !ok {
			ctx.pos = ctx.pos.Add(remaining)
			s.debugf("hz bounce %d: free move %v", bounce, remaining)
			return
		}

		// A hit closer than the skin width must not push the actor backward.
		advance := math32.Max(0, hit.Distance-conf.SkinWidth)
		ctx.pos = ctx.pos.Add(dir.Mul(advance))
		ctx.hitWall = true
		ctx.wallNormal = hit.Normal

		slide := cmath.Reject(remaining, hit.Normal)
		if hit.Normal.Y() > 0 && cmath.AngleToUp(hit.Normal) > conf.SlopeLimit && slide.Y() > 0 {
			// Sliding must not climb a surface that is too steep to walk.
			slide[1] = 0
		}

		slideLen := slide.Len()
		s.debugf("hz bounce %d: hit at %v (advance=%v normal=%v), slide=%v",
			bounce, hit.Distance, advance, hit.Normal, slide)
		if slideLen < minMoveEpsilon {
			return
		}
		unconsumed := dist - advance
		remaining = slide.Mul(unconsumed / slideLen * slideDamping)
	}
	s.debugf("hz phase: bounce cap %d reached", conf.MaxBounces)
}

// moveVertical runs a single sweep along the vertical intent. An ascending
// hit bumps the ceiling, a descending hit clamps to the landing; the grounded
// decision itself belongs to classifyGround.
func (ctx *resolveContext) moveVertical() {
	s := ctx.solver
	conf := s.conf

	vertical := ctx.desiredVel.Y() * ctx.dt
	if math32.Abs(vertical) < minMoveEpsilon {
		return
	}
	dir := worldUp
	if vertical < 0 {
		dir = worldDown
	}
	dist := math32.Abs(vertical)

	hit, ok, err := s.src.SweepCapsule(ctx.pos, s.shape, dir, dist, ctx.exclude)
	if err != nil {
		ctx.fail("sweep capsule", err)
		return
	}
	if !ok {
		ctx.pos[1] += vertical
		s.debugf("vt phase: free move %v", vertical)
		return
	}

	advance := math32.Max(0, hit.Distance-conf.SkinWidth)
	ctx.pos = ctx.pos.Add(dir.Mul(advance))
	if vertical > 0 {
		ctx.hitCeiling = true
	} else {
		ctx.landed = true
	}
	s.debugf("vt phase: hit at %v (advance=%v ascending=%v)", hit.Distance, advance, vertical > 0)
}
