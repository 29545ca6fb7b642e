package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight emits light from its texture and never scatters
type DiffuseLight struct {
	Emit ColorSource
}

// NewDiffuseLight creates a light with uniform emission
func NewDiffuseLight(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission varies over the surface
func NewTexturedDiffuseLight(emit ColorSource) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Emitted returns the emission texture at the hit point
func (l *DiffuseLight) Emitted(u, v float64, p core.Point3) core.Color {
	return l.Emit.Evaluate(core.NewVec2(u, v), p)
}

// Scatter always absorbs
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}
