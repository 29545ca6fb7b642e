package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Point3 // One corner of the quad
	U        core.Vec3   // First edge vector
	V        core.Vec3   // Second edge vector
	Normal   core.Vec3   // Unit normal (U × V)
	Material material.Material
	D        float64   // Plane equation constant: normal · p = D
	W        core.Vec3 // Cached n / (n · n) for planar coordinates
	bbox     AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors.
// Parallel edges produce a degenerate quad that no ray can hit.
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	q := &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: mat,
	}

	normal, err := n.Normalize()
	if err == nil {
		q.Normal = normal
		q.D = normal.Dot(corner)
		q.W = n.Divide(n.Dot(n))
	}

	q.bbox = NewAABBFromPoints(corner, corner.Add(u), corner.Add(v), corner.Add(u).Add(v))
	return q
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Parallel to the plane, or a degenerate quad
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
		U:        alpha,
		V:        beta,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// BoundingBox returns the padded bounds of the four corners
func (q *Quad) BoundingBox() AABB {
	return q.bbox
}
