package cmath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Vec3HzDist returns the horizontal distance in a vector.
func Vec3HzDist(vec3 mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(vec3))
}

// Reject removes the component of v that lies along the unit vector n,
// leaving the part of v tangent to the surface n belongs to.
func Reject(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

// AngleToUp returns the angle in degrees between a unit surface normal and
// the world up axis.
func AngleToUp(n mgl32.Vec3) float32 {
	return mgl32.RadToDeg(math32.Acos(ClampFloat(n.Y(), -1, 1)))
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Float32ApproxEq determines whether two floating point numbers are close
// enough to each other by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// ZeroSnapVec3 zeroes any vector component whose magnitude falls below eps.
func ZeroSnapVec3(vec3 mgl32.Vec3, eps float32) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		if math32.Abs(vec3[i]) < eps {
			vec3[i] = 0
		}
	}
	return vec3
}

// AbsVec3 will return the given vector, but all the values of it are switched
// to their absolute values.
func AbsVec3(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(vec.X()), math32.Abs(vec.Y()), math32.Abs(vec.Z())}
}
