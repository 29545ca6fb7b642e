package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// shadowAcneEpsilon skips self-intersections right at a ray's origin
const shadowAcneEpsilon = 0.001

// PathTracer implements unidirectional path tracing with a flat background
type PathTracer struct {
	Background core.Color // Radiance returned for rays that escape the scene
}

// NewPathTracer creates a path tracer with the given background
func NewPathTracer(background core.Color) *PathTracer {
	return &PathTracer{Background: background}
}

// RayColor computes the color for a single ray using unidirectional path tracing.
// There is no Russian roulette; paths end on a miss, an absorption, or when
// depth runs out.
func (pt *PathTracer) RayColor(ray core.Ray, depth int, world geometry.Hittable, sampler core.Sampler) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return pt.Background
	}

	colorEmitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(pt.RayColor(scatter.Scattered, depth-1, world, sampler))
	return colorEmitted.Add(colorScattered)
}
