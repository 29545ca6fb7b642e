package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material decides how light leaves a surface point: what it emits on its
// own and how an incoming ray is scattered or absorbed.
type Material interface {
	// Emitted returns radiance emitted at texture coordinates (u, v) and point p
	Emitted(u, v float64, p core.Point3) core.Color

	// Scatter returns the scattered ray and its attenuation, or false when the
	// ray is absorbed. Attenuation already folds in the BRDF and sampling PDF.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// NoEmission gives a material the default black Emitted
type NoEmission struct{}

// Emitted returns black
func (NoEmission) Emitted(u, v float64, p core.Point3) core.Color {
	return core.Color{}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Per-channel multiplier for light gathered along Scattered
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Unit normal, always facing against the ray
	Material  Material    // Material of the hit object
	U, V      float64     // Surface texture coordinates
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
