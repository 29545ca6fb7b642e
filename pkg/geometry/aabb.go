package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// minAxisExtent keeps flat boxes (e.g. around a quad) from having zero width
const minAxisExtent = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z core.Interval
}

// EmptyAABB bounds nothing; it is the identity for Union
var EmptyAABB = AABB{X: core.EmptyInterval, Y: core.EmptyInterval, Z: core.EmptyInterval}

// NewAABB creates a padded AABB from per-axis intervals
func NewAABB(x, y, z core.Interval) AABB {
	box := AABB{X: x, Y: y, Z: z}
	box.padToMinimums()
	return box
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...core.Point3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	box := EmptyAABB
	for _, p := range points {
		box.X = core.NewIntervalUnion(box.X, core.NewInterval(p.X, p.X))
		box.Y = core.NewIntervalUnion(box.Y, core.NewInterval(p.Y, p.Y))
		box.Z = core.NewIntervalUnion(box.Z, core.NewInterval(p.Z, p.Z))
	}
	box.padToMinimums()
	return box
}

// Union returns an AABB that bounds both this AABB and another
func (b AABB) Union(other AABB) AABB {
	return AABB{
		X: core.NewIntervalUnion(b.X, other.X),
		Y: core.NewIntervalUnion(b.Y, other.Y),
		Z: core.NewIntervalUnion(b.Z, other.Z),
	}
}

// Axis returns the interval for axis n (0=X, 1=Y, 2=Z)
func (b AABB) Axis(n int) core.Interval {
	switch n {
	case 1:
		return b.Y
	case 2:
		return b.Z
	default:
		return b.X
	}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (b AABB) Hit(ray core.Ray, rayT core.Interval) bool {
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	direction := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		ax := b.Axis(axis)
		// 1/0 gives ±Inf, which the slab test handles for parallel rays
		invDirection := 1.0 / direction[axis]

		t0 := (ax.Min - origin[axis]) * invDirection
		t1 := (ax.Max - origin[axis]) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (b AABB) LongestAxis() int {
	x, y, z := b.X.Size(), b.Y.Size(), b.Z.Size()
	if x > y && x > z {
		return 0
	}
	if y > z {
		return 1
	}
	return 2
}

// Center returns the center point of the AABB
func (b AABB) Center() core.Point3 {
	return core.NewVec3(
		(b.X.Min+b.X.Max)*0.5,
		(b.Y.Min+b.Y.Max)*0.5,
		(b.Z.Min+b.Z.Max)*0.5,
	)
}

// Translate shifts the box by offset
func (b AABB) Translate(offset core.Vec3) AABB {
	return AABB{
		X: b.X.Translate(offset.X),
		Y: b.Y.Translate(offset.Y),
		Z: b.Z.Translate(offset.Z),
	}
}

func (b *AABB) padToMinimums() {
	if b.X.Size() < minAxisExtent {
		b.X = b.X.Expand(minAxisExtent)
	}
	if b.Y.Size() < minAxisExtent {
		b.Y = b.Y.Expand(minAxisExtent)
	}
	if b.Z.Size() < minAxisExtent {
		b.Z = b.Z.Expand(minAxisExtent)
	}
}
