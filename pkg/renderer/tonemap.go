package renderer

import (
	"fmt"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// gamma is the display gamma the linear averages are encoded for
const gamma = 2.2

// intensity bounds a channel just below 1 so floor(256x) stays <= 255
var intensity = core.NewInterval(0.000, 0.999)

// ToneMap converts a sum of spp radiance samples into 8-bit channel values:
// average, gamma-encode, clamp, quantize
func ToneMap(sum core.Color, spp int) (r, g, b int) {
	scale := 1.0 / float64(spp)
	return quantize(sum.X * scale), quantize(sum.Y * scale), quantize(sum.Z * scale)
}

func quantize(linear float64) int {
	encoded := linearToGamma(linear)
	// Negative inputs and broken materials produce NaN
	if math.IsNaN(encoded) {
		encoded = 0
	}
	return int(256 * intensity.Clamp(encoded))
}

func linearToGamma(linear float64) float64 {
	return math.Pow(linear, 1/gamma)
}

// WriteColor writes one tone-mapped pixel as a "r g b" PPM line
func WriteColor(w io.Writer, sum core.Color, spp int) error {
	r, g, b := ToneMap(sum, spp)
	_, err := fmt.Fprintf(w, "%d %d %d\n", r, g, b)
	return err
}
