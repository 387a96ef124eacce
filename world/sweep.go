package world

import (
	"github.com/capsim-dev/capsim/internal"
	"github.com/capsim-dev/capsim/query"
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
)

const planeParallelEpsilon = 1e-7

// SweepCapsule casts the capsule centered at origin along dir for at most
// maxDist and reports the nearest contact. Box contacts come from a segment
// intercept against the box expanded by the capsule's half extents, which is
// exact on faces and slightly conservative at corners.
func (s *Scene) SweepCapsule(origin mgl32.Vec3, shape query.Capsule, dir mgl32.Vec3, maxDist float32, exclude query.Ref) (query.Hit, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	end := origin.Add(dir.Mul(maxDist))
	region := sweptRegion(origin, end, shape)

	best := query.Hit{Distance: math32.MaxFloat32}
	found := false

	// Minkowski-expand each candidate so the capsule sweep reduces to a
	// segment intercept from the capsule center.
	expandedList := internal.GetBoxList()
	defer internal.PutBoxList(expandedList)
	candidates := s.nearbyBoxes(region, exclude)
	for _, c := range candidates {
		*expandedList = append(*expandedList, cube.Box(
			c.box.Min().X()-shape.Radius, c.box.Min().Y()-shape.HalfHeight(), c.box.Min().Z()-shape.Radius,
			c.box.Max().X()+shape.Radius, c.box.Max().Y()+shape.HalfHeight(), c.box.Max().Z()+shape.Radius,
		))
	}

	for _, expanded := range *expandedList {
		res, ok := trace.BBoxIntercept(expanded, origin, end)
		if !ok {
			continue
		}
		dist := res.Position().Sub(origin).Len()
		if dist >= best.Distance {
			continue
		}
		normal := faceNormal(res.Face())
		best = query.Hit{
			Distance: dist,
			Normal:   normal,
			Point:    res.Position().Sub(normal.Mul(expansionAlong(normal, shape))),
		}
		found = true
	}

	for el := s.bodies.Front(); el != nil; el = el.Next() {
		b := el.Value
		if b.kind != kindPlane || b.ref == exclude {
			continue
		}
		denom := b.normal.Dot(dir)
		if denom >= -planeParallelEpsilon {
			// Parallel to or moving away from the plane's front face.
			continue
		}
		support := capsuleSupport(shape, b.normal)
		signedDist := b.normal.Dot(origin) - b.offset - support
		if signedDist < 0 {
			continue
		}
		t := signedDist / -denom
		if t > maxDist || t >= best.Distance {
			continue
		}
		best = query.Hit{
			Distance: t,
			Normal:   b.normal,
			Point:    origin.Add(dir.Mul(t)).Sub(b.normal.Mul(support)),
		}
		found = true
	}

	return clearHit(best, found), found, nil
}

// CastRay casts a thin ray from origin along dir for at most maxDist and
// reports the nearest front-face contact.
func (s *Scene) CastRay(origin, dir mgl32.Vec3, maxDist float32, exclude query.Ref) (query.Hit, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	end := origin.Add(dir.Mul(maxDist))

	best := query.Hit{Distance: math32.MaxFloat32}
	found := false

	for el := s.bodies.Front(); el != nil; el = el.Next() {
		b := el.Value
		if b.ref == exclude {
			continue
		}
		switch b.kind {
		case kindBox:
			res, ok := trace.BBoxIntercept(b.box, origin, end)
			if !ok {
				continue
			}
			dist := res.Position().Sub(origin).Len()
			if dist >= best.Distance {
				continue
			}
			best = query.Hit{Distance: dist, Normal: faceNormal(res.Face()), Point: res.Position()}
			found = true
		case kindPlane:
			denom := b.normal.Dot(dir)
			if denom >= -planeParallelEpsilon {
				continue
			}
			t := (b.offset - b.normal.Dot(origin)) / denom
			if t < 0 || t > maxDist || t >= best.Distance {
				continue
			}
			best = query.Hit{Distance: t, Normal: b.normal, Point: origin.Add(dir.Mul(t))}
			found = true
		}
	}

	return clearHit(best, found), found, nil
}

// capsuleSupport returns the distance from the capsule center to its surface
// along the negated unit normal, i.e. how far the capsule extends toward the
// surface the normal belongs to.
func capsuleSupport(shape query.Capsule, n mgl32.Vec3) float32 {
	segment := shape.HalfHeight() - shape.Radius
	return segment*math32.Abs(n.Y()) + shape.Radius
}

func expansionAlong(n mgl32.Vec3, shape query.Capsule) float32 {
	if n.Y() != 0 {
		return shape.HalfHeight()
	}
	return shape.Radius
}

func faceNormal(f cube.Face) mgl32.Vec3 {
	switch f {
	case cube.FaceDown:
		return mgl32.Vec3{0, -1, 0}
	case cube.FaceUp:
		return mgl32.Vec3{0, 1, 0}
	case cube.FaceNorth:
		return mgl32.Vec3{0, 0, -1}
	case cube.FaceSouth:
		return mgl32.Vec3{0, 0, 1}
	case cube.FaceWest:
		return mgl32.Vec3{-1, 0, 0}
	default:
		return mgl32.Vec3{1, 0, 0}
	}
}

// sweptRegion bounds the volume the capsule covers over the sweep, grown by
// a small margin so boundary contacts are not culled.
func sweptRegion(origin, end mgl32.Vec3, shape query.Capsule) cube.BBox {
	min := mgl32.Vec3{
		math32.Min(origin.X(), end.X()) - shape.Radius,
		math32.Min(origin.Y(), end.Y()) - shape.HalfHeight(),
		math32.Min(origin.Z(), end.Z()) - shape.Radius,
	}
	max := mgl32.Vec3{
		math32.Max(origin.X(), end.X()) + shape.Radius,
		math32.Max(origin.Y(), end.Y()) + shape.HalfHeight(),
		math32.Max(origin.Z(), end.Z()) + shape.Radius,
	}
	return cube.Box(min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z()).Grow(0.05)
}

func clearHit(h query.Hit, found bool) query.Hit {
	if !found {
		return query.Hit{}
	}
	return h
}
