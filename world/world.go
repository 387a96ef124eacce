// Package world provides a static-scene implementation of query.Provider:
// a registry of axis-aligned boxes and infinite planes that answers capsule
// sweeps and ray casts. It exists for tests, examples and callers without a
// full physics engine; any engine binding satisfying query.Provider can stand
// in for it.
package world

import (
	"sync"

	"github.com/capsim-dev/capsim/cerror"
	"github.com/capsim-dev/capsim/query"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

type bodyKind uint8

const (
	kindBox bodyKind = iota
	kindPlane
)

// body is one registered scene shape, addressed by its query.Ref. Bodies are
// kept in a slot-map keyed by handle rather than aliased directly, so removal
// and iteration stay safe without dangling references.
type body struct {
	ref  query.Ref
	kind bodyKind

	box       cube.BBox
	shapeHash uint64

	// Plane in n·x = offset form, normal unit length.
	normal mgl32.Vec3
	offset float32
}

// Scene is a mutable set of static geometry implementing query.Provider.
// Queries are safe to run concurrently with each other; mutations take the
// write lock and invalidate the broad-phase cache.
type Scene struct {
	mu      sync.RWMutex
	bodies  *orderedmap.OrderedMap[query.Ref, *body]
	nextRef query.Ref

	// shapes refcounts identical box geometry by content hash, so scenes
	// built from repeated tiles can be inspected for sharing.
	shapes map[uint64]int

	gen   uint64
	cache regionCache
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{
		bodies: orderedmap.NewOrderedMap[query.Ref, *body](),
		shapes: make(map[uint64]int),
	}
}

// AddBox registers an axis-aligned box and returns its handle.
func (s *Scene) AddBox(bb cube.BBox) query.Ref {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRef++
	h := boxShapeHash(bb)
	s.shapes[h]++
	s.bodies.Set(s.nextRef, &body{ref: s.nextRef, kind: kindBox, box: bb, shapeHash: h})
	s.gen++
	return s.nextRef
}

// AddPlane registers an infinite plane with the given unit normal and offset
// (n·x = offset) and returns its handle. The normal is normalized here; a
// zero normal is rejected.
func (s *Scene) AddPlane(normal mgl32.Vec3, offset float32) (query.Ref, error) {
	length := normal.Len()
	if length < 1e-6 {
		return query.NoRef, cerror.NewConfigError("plane normal", "must not be zero")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRef++
	s.bodies.Set(s.nextRef, &body{
		ref:    s.nextRef,
		kind:   kindPlane,
		normal: normal.Mul(1 / length),
		offset: offset / length,
	})
	s.gen++
	return s.nextRef, nil
}

// Remove deletes the body with the given handle, reporting whether it
// existed. Handles are never reused within a scene.
func (s *Scene) Remove(ref query.Ref) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bodies.Get(ref)
	if !ok {
		return false
	}
	if b.kind == kindBox {
		if s.shapes[b.shapeHash]--; s.shapes[b.shapeHash] <= 0 {
			delete(s.shapes, b.shapeHash)
		}
	}
	s.bodies.Delete(ref)
	s.gen++
	return true
}

// Len returns the number of registered bodies.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bodies.Len()
}

// SharedShapes returns how many distinct box geometries the scene holds,
// versus how many box bodies reference them.
func (s *Scene) SharedShapes() (distinct, total int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.shapes {
		distinct++
		total += n
	}
	return distinct, total
}
