package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Point3) core.Color
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Point3) core.Color {
	return s.Color
}

// Checker is a 3D checkerboard alternating between two sources.
// Cells are Scale units wide along every axis.
type Checker struct {
	Scale float64
	Even  ColorSource
	Odd   ColorSource
}

// NewChecker creates a solid-colored checker pattern
func NewChecker(scale float64, even, odd core.Color) *Checker {
	return &Checker{Scale: scale, Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

// Evaluate picks the source by the parity of the cell containing point
func (c *Checker) Evaluate(uv core.Vec2, point core.Point3) core.Color {
	invScale := 1.0 / c.Scale
	x := int(math.Floor(invScale * point.X))
	y := int(math.Floor(invScale * point.Y))
	z := int(math.Floor(invScale * point.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
