package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewCheckerboardTexture creates a checkerboard image texture in UV space.
// Unlike Checker, the pattern follows the surface parameterization.
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Color) *ImageTexture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/checkSize+y/checkSize)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewUVDebugTexture maps U to red and V to green
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		// row 0 is the top of the image, i.e. v=1
		v := 1.0 - float64(y)/float64(max(1, height-1))
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(1, width-1))
			pixels[y*width+x] = core.NewColor(u, v, 0.0)
		}
	}

	return NewImageTexture(width, height, pixels)
}
