package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// cornellSize is the edge length of the standard Cornell box
const cornellSize = 555.0

// NewCornellScene creates a classic Cornell box scene with quad walls and a
// ceiling area light. The background is black, so all light comes from the lamp.
func NewCornellScene() *Scene {
	white := material.NewLambertian(core.NewColor(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewColor(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewColor(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewColor(15, 15, 15))

	var objects []geometry.Hittable
	objects = append(objects,
		// Left wall (green) - YZ plane at x=555
		geometry.NewQuad(core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, cornellSize, 0), core.NewVec3(0, 0, cornellSize), green),
		// Right wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, cornellSize, 0), core.NewVec3(0, 0, cornellSize), red),
		// Ceiling light
		geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light),
		// Floor
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, 0, cornellSize), white),
		// Ceiling
		geometry.NewQuad(core.NewVec3(cornellSize, cornellSize, cornellSize), core.NewVec3(-cornellSize, 0, 0), core.NewVec3(0, 0, -cornellSize), white),
		// Back wall
		geometry.NewQuad(core.NewVec3(0, 0, cornellSize), core.NewVec3(cornellSize, 0, 0), core.NewVec3(0, cornellSize, 0), white),
	)

	// Tall box turned to face the left wall, short box turned the other way
	objects = append(objects,
		geometry.NewRotatedBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), 15, white),
		geometry.NewRotatedBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), -18, white),
	)

	camera := renderer.NewCamera()
	camera.AspectRatio = 1.0
	camera.ImageWidth = 600
	camera.SamplesPerPixel = 200
	camera.MaxDepth = 50
	camera.Background = core.NewColor(0, 0, 0)
	camera.VFov = 40
	camera.LookFrom = core.NewVec3(278, 278, -800)
	camera.LookAt = core.NewVec3(278, 278, 0)
	camera.VUp = core.NewVec3(0, 1, 0)
	camera.DefocusAngle = 0

	return &Scene{World: geometry.NewBVH(objects), Camera: camera}
}
