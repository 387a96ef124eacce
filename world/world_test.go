package world_test

import (
	"testing"

	"github.com/capsim-dev/capsim/query"
	"github.com/capsim-dev/capsim/world"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShape = query.Capsule{Height: 1.8, Radius: 0.4}

func TestSweepCapsulePlane(t *testing.T) {
	sc := world.NewScene()
	_, err := sc.AddPlane(mgl32.Vec3{-1, 0, 0}, -1)
	require.NoError(t, err)

	hit, ok, err := sc.SweepCapsule(mgl32.Vec3{0, 0.9, 0}, testShape, mgl32.Vec3{1, 0, 0}, 2, query.NoRef)
	require.NoError(t, err)
	require.True(t, ok)

	// Surface one radius from the center: contact at 1 - 0.4.
	assert.InDelta(t, 0.6, hit.Distance, 1e-5)
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, hit.Normal)
	assert.InDelta(t, 1.0, hit.Point.X(), 1e-5)
}

func TestSweepCapsulePlaneVerticalSupport(t *testing.T) {
	sc := world.NewScene()
	_, err := sc.AddPlane(mgl32.Vec3{0, 1, 0}, 0)
	require.NoError(t, err)

	// Dropping onto a floor the support is the half height, not the radius.
	hit, ok, err := sc.SweepCapsule(mgl32.Vec3{0, 2, 0}, testShape, mgl32.Vec3{0, -1, 0}, 5, query.NoRef)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 1.1, hit.Distance, 1e-5)
	assert.InDelta(t, 0.0, hit.Point.Y(), 1e-5)
}

func TestSweepCapsuleBoxFace(t *testing.T) {
	sc := world.NewScene()
	sc.AddBox(cube.Box(2, 0, -1, 3, 2, 1))

	hit, ok, err := sc.SweepCapsule(mgl32.Vec3{0, 1, 0}, testShape, mgl32.Vec3{1, 0, 0}, 4, query.NoRef)
	require.NoError(t, err)
	require.True(t, ok)

	// The expanded face sits one radius before the box.
	assert.InDelta(t, 1.6, hit.Distance, 1e-5)
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, hit.Normal)
	assert.InDelta(t, 2.0, hit.Point.X(), 1e-5)
}

func TestSweepNearestContactWins(t *testing.T) {
	sc := world.NewScene()
	sc.AddBox(cube.Box(2, 0, -1, 3, 2, 1))
	_, err := sc.AddPlane(mgl32.Vec3{-1, 0, 0}, -5)
	require.NoError(t, err)

	hit, ok, err := sc.SweepCapsule(mgl32.Vec3{0, 1, 0}, testShape, mgl32.Vec3{1, 0, 0}, 10, query.NoRef)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 1.6, hit.Distance, 1e-5)
}

func TestSweepMisses(t *testing.T) {
	sc := world.NewScene()
	sc.AddBox(cube.Box(2, 0, -1, 3, 2, 1))

	_, ok, err := sc.SweepCapsule(mgl32.Vec3{0, 1, 0}, testShape, mgl32.Vec3{1, 0, 0}, 1, query.NoRef)
	require.NoError(t, err)
	assert.False(t, ok, "short sweep must not reach the box")

	_, ok, err = sc.SweepCapsule(mgl32.Vec3{0, 1, 0}, testShape, mgl32.Vec3{-1, 0, 0}, 4, query.NoRef)
	require.NoError(t, err)
	assert.False(t, ok, "sweep away from the box must miss")
}

func TestSweepExcludesHandle(t *testing.T) {
	sc := world.NewScene()
	ref := sc.AddBox(cube.Box(2, 0, -1, 3, 2, 1))

	_, ok, err := sc.SweepCapsule(mgl32.Vec3{0, 1, 0}, testShape, mgl32.Vec3{1, 0, 0}, 4, ref)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSweepIgnoresPlaneBackFace(t *testing.T) {
	sc := world.NewScene()
	_, err := sc.AddPlane(mgl32.Vec3{-1, 0, 0}, -1)
	require.NoError(t, err)

	// Moving away from the plane's front face.
	_, ok, err := sc.SweepCapsule(mgl32.Vec3{0, 0.9, 0}, testShape, mgl32.Vec3{-1, 0, 0}, 4, query.NoRef)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSweepSkipsPenetratedPlane(t *testing.T) {
	sc := world.NewScene()
	_, err := sc.AddPlane(mgl32.Vec3{-1, 0, 0}, -1)
	require.NoError(t, err)

	// Capsule surface already past the plane: no contact to report.
	_, ok, err := sc.SweepCapsule(mgl32.Vec3{0.9, 0.9, 0}, testShape, mgl32.Vec3{1, 0, 0}, 4, query.NoRef)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCastRayNearestOfBoxAndPlane(t *testing.T) {
	sc := world.NewScene()
	_, err := sc.AddPlane(mgl32.Vec3{0, 1, 0}, 0)
	require.NoError(t, err)
	sc.AddBox(cube.Box(-1, 0, -1, 1, 2, 1))

	hit, ok, err := sc.CastRay(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, 10, query.NoRef)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3.0, hit.Distance, 1e-5)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, hit.Normal)
}

func TestCastRayRespectsRangeAndExclusion(t *testing.T) {
	sc := world.NewScene()
	floor, err := sc.AddPlane(mgl32.Vec3{0, 1, 0}, 0)
	require.NoError(t, err)

	_, ok, err := sc.CastRay(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, 2, query.NoRef)
	require.NoError(t, err)
	assert.False(t, ok, "ray must stop at its range")

	_, ok, err = sc.CastRay(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, 10, floor)
	require.NoError(t, err)
	assert.False(t, ok, "excluded handle must not report")
}

func TestCastRayIgnoresPlaneBackFace(t *testing.T) {
	sc := world.NewScene()
	_, err := sc.AddPlane(mgl32.Vec3{0, 1, 0}, 0)
	require.NoError(t, err)

	_, ok, err := sc.CastRay(mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 1, 0}, 10, query.NoRef)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddPlaneNormalizes(t *testing.T) {
	sc := world.NewScene()
	// Same plane as n=(0,1,0), offset 2.
	_, err := sc.AddPlane(mgl32.Vec3{0, 4, 0}, 8)
	require.NoError(t, err)

	hit, ok, err := sc.CastRay(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, 10, query.NoRef)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3.0, hit.Distance, 1e-5)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, hit.Normal)
}

func TestAddPlaneRejectsZeroNormal(t *testing.T) {
	sc := world.NewScene()
	ref, err := sc.AddPlane(mgl32.Vec3{}, 1)
	assert.Error(t, err)
	assert.Equal(t, query.NoRef, ref)
}

func TestRemove(t *testing.T) {
	sc := world.NewScene()
	ref := sc.AddBox(cube.Box(2, 0, -1, 3, 2, 1))
	require.Equal(t, 1, sc.Len())

	assert.True(t, sc.Remove(ref))
	assert.Equal(t, 0, sc.Len())
	assert.False(t, sc.Remove(ref), "a handle must not remove twice")

	_, ok, err := sc.SweepCapsule(mgl32.Vec3{0, 1, 0}, testShape, mgl32.Vec3{1, 0, 0}, 4, query.NoRef)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSharedShapes(t *testing.T) {
	sc := world.NewScene()
	tile := cube.Box(0, 0, 0, 1, 1, 1)
	a := sc.AddBox(tile)
	sc.AddBox(tile)
	sc.AddBox(cube.Box(5, 0, 0, 6, 2, 1))

	distinct, total := sc.SharedShapes()
	assert.Equal(t, 2, distinct)
	assert.Equal(t, 3, total)

	require.True(t, sc.Remove(a))
	distinct, total = sc.SharedShapes()
	assert.Equal(t, 2, distinct)
	assert.Equal(t, 2, total)
}

func TestMutationInvalidatesCachedSweep(t *testing.T) {
	sc := world.NewScene()

	origin := mgl32.Vec3{0, 1, 0}
	dir := mgl32.Vec3{1, 0, 0}
	_, ok, err := sc.SweepCapsule(origin, testShape, dir, 4, query.NoRef)
	require.NoError(t, err)
	require.False(t, ok)

	// The identical sweep must see geometry added after the cached miss.
	sc.AddBox(cube.Box(2, 0, -1, 3, 2, 1))
	hit, ok, err := sc.SweepCapsule(origin, testShape, dir, 4, query.NoRef)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 1.6, hit.Distance, 1e-5)
}
