package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// leafThreshold is the largest object count stored directly in a leaf
const leafThreshold = 4

// BVHNode is a node in a bounding volume hierarchy. Leaves hold objects,
// interior nodes hold two children.
type BVHNode struct {
	bbox    AABB
	Left    *BVHNode
	Right   *BVHNode
	Objects []Hittable
}

// NewBVH builds a hierarchy over the given objects. The input slice is not
// modified.
func NewBVH(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{bbox: EmptyAABB}
	}

	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)
	return buildBVH(objectsCopy)
}

// NewBVHFromList builds a hierarchy over the contents of list
func NewBVHFromList(list *HittableList) *BVHNode {
	return NewBVH(list.Objects)
}

// buildBVH recursively splits at the spatial midpoint of the longest axis
func buildBVH(objects []Hittable) *BVHNode {
	bbox := EmptyAABB
	for _, o := range objects {
		bbox = bbox.Union(o.BoundingBox())
	}

	if len(objects) <= leafThreshold {
		return &BVHNode{bbox: bbox, Objects: objects}
	}

	axis := bbox.LongestAxis()
	extent := bbox.Axis(axis)
	if extent.Size() <= 0 {
		return &BVHNode{bbox: bbox, Objects: objects}
	}
	split := (extent.Min + extent.Max) * 0.5

	var left, right []Hittable
	for _, o := range objects {
		c := o.BoundingBox().Center()
		centerVal := [3]float64{c.X, c.Y, c.Z}[axis]
		if centerVal < split {
			left = append(left, o)
		} else {
			right = append(right, o)
		}
	}

	// All centroids on one side; splitting further would not terminate
	if len(left) == 0 || len(right) == 0 {
		return &BVHNode{bbox: bbox, Objects: objects}
	}

	return &BVHNode{
		bbox:  bbox,
		Left:  buildBVH(left),
		Right: buildBVH(right),
	}
}

// Hit returns the closest hit below this node
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	if n.Left == nil && n.Right == nil {
		var closest *material.HitRecord
		closestSoFar := rayT.Max
		for _, o := range n.Objects {
			if hit, ok := o.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
				closest = hit
				closestSoFar = hit.T
			}
		}
		return closest, closest != nil
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT)
	if hitLeft {
		rayT.Max = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, rayT)
	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the bounds of everything below this node
func (n *BVHNode) BoundingBox() AABB {
	return n.bbox
}

// Depth returns the number of levels in the hierarchy
func (n *BVHNode) Depth() int {
	if n.Left == nil && n.Right == nil {
		return 1
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}
