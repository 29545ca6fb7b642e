package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewBox returns the six quad faces of the axis-aligned box with opposite
// corners a and b
func NewBox(a, b core.Point3, mat material.Material) *HittableList {
	return NewRotatedBox(a, b, 0, mat)
}

// NewRotatedBox builds the box spanned by a and b, then rotates it by
// angleDeg degrees around the vertical axis through its own center
func NewRotatedBox(a, b core.Point3, angleDeg float64, mat material.Material) *HittableList {
	lo := core.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z))
	hi := core.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z))

	center := lo.Add(hi).Multiply(0.5)
	rotation := mgl64.Rotate3DY(mgl64.DegToRad(angleDeg))
	// rotate maps a box-local offset from center into world space
	rotate := func(offset core.Vec3) core.Vec3 {
		r := rotation.Mul3x1(mgl64.Vec3{offset.X, offset.Y, offset.Z})
		return core.NewVec3(r[0], r[1], r[2])
	}

	half := hi.Subtract(lo).Multiply(0.5)
	corner := func(sx, sy, sz float64) core.Point3 {
		return center.Add(rotate(core.NewVec3(sx*half.X, sy*half.Y, sz*half.Z)))
	}

	dx := rotate(core.NewVec3(hi.X-lo.X, 0, 0))
	dy := rotate(core.NewVec3(0, hi.Y-lo.Y, 0))
	dz := rotate(core.NewVec3(0, 0, hi.Z-lo.Z))

	return NewHittableList(
		NewQuad(corner(-1, -1, 1), dx, dy, mat),          // front
		NewQuad(corner(1, -1, 1), dz.Negate(), dy, mat),  // right
		NewQuad(corner(1, -1, -1), dx.Negate(), dy, mat), // back
		NewQuad(corner(-1, -1, -1), dz, dy, mat),         // left
		NewQuad(corner(-1, 1, 1), dx, dz.Negate(), mat),  // top
		NewQuad(corner(-1, -1, -1), dx, dz, mat),         // bottom
	)
}
