package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 represents a 3D point or direction
type Vector3 struct {
	X, Y, Z float64
}

// Common axis vectors
var (
	Zero    = Vector3{}
	UnitX   = Vector3{X: 1}
	UnitY   = Vector3{Y: 1}
	UnitZ   = Vector3{Z: 1}
	WorldUp = UnitY
)

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func fromVec3(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Vec3 converts to a mathgl vector
func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction, or the zero vector
// when v has no length.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return v.Mul(1.0 / length)
}

// RotateAxisAngle rotates v about axis by angle radians (right-handed).
// The axis does not need to be normalized; a zero axis leaves v unchanged.
func (v Vector3) RotateAxisAngle(axis Vector3, angle float64) Vector3 {
	axis = axis.Normalize()
	if axis == Zero || angle == 0 {
		return v
	}
	q := mgl64.QuatRotate(angle, axis.Vec3())
	return fromVec3(q.Rotate(v.Vec3()))
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
		Z: math.Min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
		Z: math.Max(v.Z, other.Z),
	}
}

// ApproxEqual reports whether every component differs by at most eps
func (v Vector3) ApproxEqual(other Vector3, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps &&
		math.Abs(v.Y-other.Y) <= eps &&
		math.Abs(v.Z-other.Z) <= eps
}
