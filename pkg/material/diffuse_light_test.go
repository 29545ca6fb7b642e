package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLight(t *testing.T) {
	emission := core.NewColor(4, 4, 4)
	light := NewDiffuseLight(emission)

	if got := light.Emitted(0.3, 0.7, core.NewVec3(1, 2, 3)); got != emission {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	if _, ok := light.Scatter(ray, upHit(), newTestSampler()); ok {
		t.Error("Diffuse light should not scatter")
	}
}

func TestIsotropic(t *testing.T) {
	albedo := core.NewColor(0.2, 0.4, 0.6)
	iso := NewIsotropic(albedo)
	sampler := newTestSampler()
	ray := core.NewRayAtTime(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), 0.5)

	below := 0
	for i := 0; i < 500; i++ {
		scatter, ok := iso.Scatter(ray, upHit(), sampler)
		if !ok {
			t.Fatal("Isotropic should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Errorf("Expected %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Time != 0.5 {
			t.Errorf("Expected time 0.5, got %f", scatter.Scattered.Time)
		}
		if scatter.Scattered.Direction.Y < 0 {
			below++
		}
	}
	if below == 0 {
		t.Error("Expected isotropic scattering to reach both hemispheres")
	}
}

func TestMix(t *testing.T) {
	light := NewDiffuseLight(core.NewColor(2, 2, 2))
	diffuse := NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	mix := NewMix(diffuse, light, 0.25)

	if got := mix.Emitted(0, 0, core.Vec3{}); got != core.NewColor(0.5, 0.5, 0.5) {
		t.Errorf("Expected blended emission 0.5, got %v", got)
	}

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// Draws below the ratio choose the second material, which absorbs
	if _, ok := mix.Scatter(ray, upHit(), constSampler{value: 0.1}); ok {
		t.Error("Expected the light to be chosen and absorb")
	}
	if _, ok := mix.Scatter(ray, upHit(), constSampler{value: 0.6}); !ok {
		t.Error("Expected the diffuse material to be chosen and scatter")
	}
}
