package core

import (
	"fmt"
	"math"
)

// Vec2 represents a 2D vector, used for texture coordinates and 2D samples
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// At returns the i-th component (0=X, 1=Y)
func (v Vec2) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, fmt.Errorf("vec2 component %d: %w", i, ErrIndexOutOfRange)
}

func (v Vec2) Add(other Vec2) Vec2      { return Vec2{v.X + other.X, v.Y + other.Y} }
func (v Vec2) Subtract(other Vec2) Vec2 { return Vec2{v.X - other.X, v.Y - other.Y} }
func (v Vec2) Negate() Vec2             { return Vec2{-v.X, -v.Y} }
func (v Vec2) Multiply(s float64) Vec2  { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Divide(s float64) Vec2    { return v.Multiply(1 / s) }
func (v Vec2) Dot(other Vec2) float64   { return v.X*other.X + v.Y*other.Y }
func (v Vec2) LengthSquared() float64   { return v.Dot(v) }
func (v Vec2) Length() float64          { return math.Sqrt(v.LengthSquared()) }

// Normalize returns a unit vector in the same direction
func (v Vec2) Normalize() (Vec2, error) {
	length := v.Length()
	if length == 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return Vec2{}, fmt.Errorf("normalize %v: %w", v, ErrDegenerateVector)
	}
	return v.Divide(length), nil
}

// Vec3 expands the vector with a third component
func (v Vec2) Vec3(z float64) Vec3 {
	return Vec3{v.X, v.Y, z}
}

// Vec4 represents a 4 component vector (homogeneous coordinates)
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// At returns the i-th component (0=X .. 3=W)
func (v Vec4) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}
	return 0, fmt.Errorf("vec4 component %d: %w", i, ErrIndexOutOfRange)
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4) Subtract(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4) Multiply(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vec4) Divide(s float64) Vec4 {
	return v.Multiply(1 / s)
}

func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

func (v Vec4) LengthSquared() float64 { return v.Dot(v) }
func (v Vec4) Length() float64        { return math.Sqrt(v.LengthSquared()) }

// Normalize returns a unit vector in the same direction
func (v Vec4) Normalize() (Vec4, error) {
	length := v.Length()
	if length == 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return Vec4{}, fmt.Errorf("normalize %v: %w", v, ErrDegenerateVector)
	}
	return v.Divide(length), nil
}

// Vec3 drops the W component
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// array and vec4FromArray let the matrix code loop over components
// without going through the bounds-checked At.
func (v Vec4) array() [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, v.W}
}

func vec4FromArray(a [4]float64) Vec4 {
	return Vec4{a[0], a[1], a[2], a[3]}
}

func (v Vec3) array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func vec3FromArray(a [3]float64) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}
