package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a 2D pixel grid
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture with nearest-neighbor filtering.
// UV wraps around; v=0 is the bottom row of the image.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Point3) core.Color {
	if t.Width <= 0 || t.Height <= 0 {
		// debug cyan marks a missing image
		return core.NewColor(0, 1, 1)
	}

	u := uv.X - math.Floor(uv.X)
	v := 1.0 - (uv.Y - math.Floor(uv.Y))

	x := int(core.NewInterval(0, float64(t.Width-1)).Clamp(math.Floor(u * float64(t.Width))))
	y := int(core.NewInterval(0, float64(t.Height-1)).Clamp(math.Floor(v * float64(t.Height))))

	return t.Pixels[y*t.Width+x]
}
