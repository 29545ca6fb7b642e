package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// compositionSeed fixes the random placement of objects in generated scenes,
// independent of the render seed
const compositionSeed = 20240601

// Scene contains all the elements needed for rendering
type Scene struct {
	World  geometry.Hittable // Objects in the scene, usually behind a BVH
	Camera *renderer.Camera  // Camera tuned for this scene
}

// NewGroundQuad creates a large horizontal quad centered at the given point.
// The normal points up (0,1,0).
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}

// skyCamera returns a camera with the pale blue sky background used by the
// outdoor scenes
func skyCamera() *renderer.Camera {
	c := renderer.NewCamera()
	c.Background = core.NewColor(0.70, 0.80, 1.00)
	return c
}
