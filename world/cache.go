package world

import (
	"encoding/binary"
	"sync"

	"github.com/capsim-dev/capsim/query"
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/zeebo/xxh3"
)

// cacheQuantum snaps cached region bounds to a coarse grid so consecutive
// sweeps from nearly the same spot share an entry.
const cacheQuantum = 0.5

type candidate struct {
	ref query.Ref
	box cube.BBox
}

// regionCache memoizes the box candidates of the most recent broad-phase
// region, keyed by a hash of the quantized region bounds. Any scene mutation
// bumps the generation and the entry dies with it.
type regionCache struct {
	mu    sync.Mutex
	valid bool
	key   uint64
	gen   uint64
	boxes []candidate
}

// nearbyBoxes returns the box bodies overlapping region, minus the excluded
// handle. Callers must hold the scene read lock.
func (s *Scene) nearbyBoxes(region cube.BBox, exclude query.Ref) []candidate {
	key := regionKey(region)

	s.cache.mu.Lock()
	if s.cache.valid && s.cache.key == key && s.cache.gen == s.gen {
		out := filterCandidates(s.cache.boxes, exclude)
		s.cache.mu.Unlock()
		return out
	}
	s.cache.mu.Unlock()

	grown := grownRegion(region)
	var boxes []candidate
	for el := s.bodies.Front(); el != nil; el = el.Next() {
		b := el.Value
		if b.kind != kindBox {
			continue
		}
		if !b.box.IntersectsWith(grown) {
			continue
		}
		boxes = append(boxes, candidate{ref: b.ref, box: b.box})
	}

	s.cache.mu.Lock()
	s.cache.valid = true
	s.cache.key = key
	s.cache.gen = s.gen
	s.cache.boxes = boxes
	s.cache.mu.Unlock()

	return filterCandidates(boxes, exclude)
}

func filterCandidates(in []candidate, exclude query.Ref) []candidate {
	if exclude == query.NoRef {
		return in
	}
	out := make([]candidate, 0, len(in))
	for _, c := range in {
		if c.ref != exclude {
			out = append(out, c)
		}
	}
	return out
}

// grownRegion expands the lookup region to the quantization grid, so a cached
// entry is valid for every exact region that quantizes to the same key.
func grownRegion(region cube.BBox) cube.BBox {
	return cube.Box(
		quantizeDown(region.Min().X()), quantizeDown(region.Min().Y()), quantizeDown(region.Min().Z()),
		quantizeUp(region.Max().X()), quantizeUp(region.Max().Y()), quantizeUp(region.Max().Z()),
	)
}

func regionKey(region cube.BBox) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint32(buf[0:], math32.Float32bits(quantizeDown(region.Min().X())))
	binary.LittleEndian.PutUint32(buf[4:], math32.Float32bits(quantizeDown(region.Min().Y())))
	binary.LittleEndian.PutUint32(buf[8:], math32.Float32bits(quantizeDown(region.Min().Z())))
	binary.LittleEndian.PutUint32(buf[12:], math32.Float32bits(quantizeUp(region.Max().X())))
	binary.LittleEndian.PutUint32(buf[16:], math32.Float32bits(quantizeUp(region.Max().Y())))
	binary.LittleEndian.PutUint32(buf[20:], math32.Float32bits(quantizeUp(region.Max().Z())))
	return xxh3.Hash(buf[:])
}

// boxShapeHash hashes box geometry by content for the shared-shape table.
func boxShapeHash(bb cube.BBox) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint32(buf[0:], math32.Float32bits(bb.Min().X()))
	binary.LittleEndian.PutUint32(buf[4:], math32.Float32bits(bb.Min().Y()))
	binary.LittleEndian.PutUint32(buf[8:], math32.Float32bits(bb.Min().Z()))
	binary.LittleEndian.PutUint32(buf[12:], math32.Float32bits(bb.Max().X()))
	binary.LittleEndian.PutUint32(buf[16:], math32.Float32bits(bb.Max().Y()))
	binary.LittleEndian.PutUint32(buf[20:], math32.Float32bits(bb.Max().Z()))
	return xxh3.Hash(buf[:])
}

func quantizeDown(v float32) float32 {
	return math32.Floor(v/cacheQuantum) * cacheQuantum
}

func quantizeUp(v float32) float32 {
	return math32.Ceil(v/cacheQuantum) * cacheQuantum
}
