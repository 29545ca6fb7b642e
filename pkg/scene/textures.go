package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewTexturesScene creates a row of spheres showing UV-mapped textures,
// an emissive texture, a diffuse/metal mix and an isotropic surface, over a
// UV checkerboard floor
func NewTexturesScene() *Scene {
	return NewTexturesSceneWithTexture(nil)
}

// NewTexturesSceneWithTexture is NewTexturesScene with image mapped onto the
// leftmost sphere. A nil image falls back to the UV debug texture.
func NewTexturesSceneWithTexture(image material.ColorSource) *Scene {
	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewColor(0.9, 0.9, 0.9),
		core.NewColor(0.2, 0.2, 0.8),
	)
	if image == nil {
		image = material.NewUVDebugTexture(256, 256)
	}
	glowingStripes := material.NewCheckerboardTexture(64, 64, 8,
		core.NewColor(4, 3, 1),
		core.NewColor(0, 0, 0),
	)
	satin := material.NewMix(
		material.NewLambertian(core.NewColor(0.6, 0.1, 0.4)),
		material.NewMetal(core.NewColor(0.9, 0.9, 0.9), 0.05),
		0.3,
	)

	world := geometry.NewHittableList(
		NewGroundQuad(core.NewVec3(0, 0, 0), 20, material.NewTexturedLambertian(checkerboard)),
		geometry.NewSphere(core.NewVec3(-3, 1, 0), 1, material.NewTexturedLambertian(image)),
		geometry.NewSphere(core.NewVec3(-1, 1, 0), 1, material.NewTexturedDiffuseLight(glowingStripes)),
		geometry.NewSphere(core.NewVec3(1, 1, 0), 1, satin),
		geometry.NewSphere(core.NewVec3(3, 1, 0), 1, material.NewIsotropic(core.NewColor(0.8, 0.8, 0.9))),
	)

	camera := skyCamera()
	camera.AspectRatio = 16.0 / 9.0
	camera.ImageWidth = 400
	camera.SamplesPerPixel = 100
	camera.MaxDepth = 20
	camera.VFov = 50
	camera.LookFrom = core.NewVec3(0, 2, 8)
	camera.LookAt = core.NewVec3(0, 1, 0)
	camera.VUp = core.NewVec3(0, 1, 0)

	return &Scene{World: world, Camera: camera}
}
