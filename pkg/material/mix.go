package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Mix represents a material that probabilistically chooses between two materials
type Mix struct {
	Material1 Material
	Material2 Material
	Ratio     float64 // 0.0 = all material1, 1.0 = all material2
}

// NewMix creates a new mix material
func NewMix(material1, material2 Material, ratio float64) *Mix {
	return &Mix{
		Material1: material1,
		Material2: material2,
		Ratio:     core.NewInterval(0, 1).Clamp(ratio),
	}
}

// Emitted blends the emission of both materials by ratio
func (m *Mix) Emitted(u, v float64, p core.Point3) core.Color {
	e1 := m.Material1.Emitted(u, v, p)
	e2 := m.Material2.Emitted(u, v, p)
	return e1.Multiply(1.0 - m.Ratio).Add(e2.Multiply(m.Ratio))
}

// Scatter delegates to one of the two materials chosen by ratio.
// Picking with probability Ratio is an unbiased estimate of the blend.
func (m *Mix) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	if sampler.Get1D() < m.Ratio {
		return m.Material2.Scatter(rayIn, hit, sampler)
	}
	return m.Material1.Scatter(rayIn, hit, sampler)
}
