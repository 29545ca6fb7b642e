package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSpheresScene creates the classic field of small random spheres around
// three large ones: glass, diffuse and polished metal
func NewSpheresScene() *Scene {
	return newRandomSpheresScene(false)
}

// NewBouncingSpheresScene is the spheres scene with the diffuse spheres moving
// upward during the exposure, rendered over a checkered ground
func NewBouncingSpheresScene() *Scene {
	return newRandomSpheresScene(true)
}

func newRandomSpheresScene(bouncing bool) *Scene {
	sampler := core.NewSeededSampler(compositionSeed)
	var objects []geometry.Hittable

	var ground material.Material = material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	if bouncing {
		ground = material.NewTexturedLambertian(
			material.NewChecker(0.32, core.NewColor(0.2, 0.3, 0.1), core.NewColor(0.9, 0.9, 0.9)))
	}
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				diffuse := material.NewLambertian(albedo)
				if bouncing {
					center2 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
					objects = append(objects, geometry.NewMovingSphere(center, center2, 0.2, diffuse))
				} else {
					objects = append(objects, geometry.NewSphere(center, 0.2, diffuse))
				}
			case chooseMat < 0.95:
				albedo := core.RandomVec3Range(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0)),
	)

	camera := skyCamera()
	camera.AspectRatio = 16.0 / 9.0
	camera.ImageWidth = 400
	camera.SamplesPerPixel = 100
	camera.MaxDepth = 50
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(13, 2, 3)
	camera.LookAt = core.NewVec3(0, 0, 0)
	camera.VUp = core.NewVec3(0, 1, 0)
	camera.DefocusAngle = 0.6
	camera.FocusDist = 10.0

	return &Scene{World: geometry.NewBVH(objects), Camera: camera}
}

// NewCheckeredSpheresScene creates two large spheres touching at the origin,
// both textured with the same world-space checker
func NewCheckeredSpheresScene() *Scene {
	checker := material.NewTexturedLambertian(
		material.NewChecker(0.32, core.NewColor(0.2, 0.3, 0.1), core.NewColor(0.9, 0.9, 0.9)))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	camera := skyCamera()
	camera.AspectRatio = 16.0 / 9.0
	camera.ImageWidth = 400
	camera.SamplesPerPixel = 100
	camera.MaxDepth = 50
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(13, 2, 3)
	camera.LookAt = core.NewVec3(0, 0, 0)
	camera.VUp = core.NewVec3(0, 1, 0)
	camera.DefocusAngle = 0

	return &Scene{World: world, Camera: camera}
}
