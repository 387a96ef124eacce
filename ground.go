package capsim

import (
	"github.com/capsim-dev/capsim/cmath"
	"github.com/go-gl/mathgl/mgl32"
)

// footprintOffsets are the ground probe origins in units of
// footprintSampleFactor*radius: the capsule center plus four points toward
// +X, -X, +Z and -Z. A single center ray misses edges and ledges under the
// capsule rim, reporting airborne at platform boundaries.
var footprintOffsets = [5]mgl32.Vec2{
	{0, 0},
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}

// classifyGround samples short downward rays under the capsule footprint and
// grounds the actor on the first walkable hit. Steep hits never ground: a
// surface past the slope limit must not halt a fall.
func (ctx *resolveContext) classifyGround() {
	s := ctx.solver
	conf := s.conf

	bottom := ctx.pos.Y() - s.shape.HalfHeight()
	reach := conf.SkinWidth + groundProbeEpsilon
	spread := conf.Radius * footprintSampleFactor

	for i, off := range footprintOffsets {
		origin := mgl32.Vec3{
			ctx.pos.X() + off.X()*spread,
			bottom,
			ctx.pos.Z() + off.Y()*spread,
		}
		hit, ok, err := s.src.CastRay(origin, worldDown, reach, ctx.exclude)
		if err != nil {
			ctx.fail("cast ray", err)
			return
		}
		if !ok {
			continue
		}
		if angle := cmath.AngleToUp(hit.Normal); angle <= conf.SlopeLimit {
			ctx.onGround = true
			ctx.groundNormal = hit.Normal
			s.debugf("ground probe %d: walkable (normal=%v angle=%v)", i, hit.Normal, angle)
			return
		} else {
			s.debugf("ground probe %d: too steep (normal=%v angle=%v)", i, hit.Normal, angle)
		}
	}
}
