package scene

import (
	"bytes"
	"errors"
	"image"
	"io"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell", "Cornell"},
		{"bouncing-spheres", "Bouncing Spheres"},
		{"my_custom-scene", "My Custom Scene"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestNamesMatchList(t *testing.T) {
	names := Names()
	list := List()
	if len(names) != len(list) {
		t.Fatalf("Expected %d names, got %d", len(list), len(names))
	}

	seen := make(map[string]bool)
	for i, info := range list {
		if names[i] != info.ID {
			t.Errorf("Name %d: expected %q, got %q", i, info.ID, names[i])
		}
		if seen[info.ID] {
			t.Errorf("Duplicate scene %q", info.ID)
		}
		seen[info.ID] = true
		if info.DisplayName == "" || info.Description == "" {
			t.Errorf("Scene %q is missing a display name or description", info.ID)
		}
	}
}

func TestLookupEveryScene(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Lookup(name)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.World == nil || s.Camera == nil {
				t.Fatal("Expected a world and a camera")
			}
			if _, _, _, err := s.Camera.Basis(); err != nil {
				t.Errorf("Scene camera is invalid: %v", err)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("no-such-scene"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestScenesAreDeterministic(t *testing.T) {
	render := func() string {
		s, _ := Lookup("spheres")
		s.Camera.ImageWidth = 8
		s.Camera.SamplesPerPixel = 2
		s.Camera.MaxDepth = 4
		s.Camera.Status = &bytes.Buffer{}
		var out bytes.Buffer
		if _, err := s.Camera.Render(s.World, renderer.NewPPMSink(&out)); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		return out.String()
	}

	if render() != render() {
		t.Error("Expected the same composition on every build")
	}
}

func TestCameraRaysHitScene(t *testing.T) {
	// The center pixel of every non-empty scene looks at something
	for _, name := range []string{"spheres", "bouncing-spheres", "checkered-spheres", "textures", "cornell"} {
		t.Run(name, func(t *testing.T) {
			s, _ := Lookup(name)
			if _, _, _, err := s.Camera.Basis(); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			ray := s.Camera.GetRay(s.Camera.ImageWidth/2, s.Camera.ImageHeight()/2, core.NewSeededSampler(1))
			if _, ok := s.World.Hit(ray, core.NewInterval(0.001, math.Inf(1))); !ok {
				t.Error("Expected the center ray to hit the scene")
			}
		})
	}
}

func TestRenderEmptyScene(t *testing.T) {
	s, err := Lookup("empty")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s.Camera.ImageWidth = 2
	s.Camera.Status = &bytes.Buffer{}

	var out bytes.Buffer
	if _, err := s.Camera.Render(s.World, renderer.NewPPMSink(&out)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := "P3\n2 2\n255\n0 0 0\n0 0 0\n0 0 0\n0 0 0\n"
	if out.String() != expected {
		t.Errorf("Expected %q, got %q", expected, out.String())
	}
}

func TestCornellIsLitOnlyByLamp(t *testing.T) {
	s, _ := Lookup("cornell")
	s.Camera.ImageWidth = 12
	s.Camera.SamplesPerPixel = 4
	s.Camera.MaxDepth = 6
	s.Camera.Status = &bytes.Buffer{}

	sink := renderer.NewImageSink(&bytes.Buffer{}, func(w io.Writer, img image.Image) error { return nil })
	if _, err := s.Camera.Render(s.World, sink); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lit := false
	for i, v := range sink.Image().Pix {
		// Skip the alpha channel, which is always opaque
		if i%4 != 3 && v > 0 {
			lit = true
			break
		}
	}
	if !lit {
		t.Error("Expected the lamp to light part of the box")
	}
}

func TestTexturesSceneUsesProvidedTexture(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	s, err := LookupWithOptions("textures", Options{Texture: material.NewSolidColor(red)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Straight down the z axis into the leftmost sphere
	ray := core.NewRay(core.NewVec3(-3, 1, 8), core.NewVec3(0, 0, -1))
	hit, ok := s.World.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatal("Expected the ray to hit the textured sphere")
	}
	result, ok := hit.Material.Scatter(ray, *hit, core.NewSeededSampler(1))
	if !ok {
		t.Fatal("Expected the textured sphere to scatter")
	}
	if result.Attenuation != red {
		t.Errorf("Expected attenuation %v, got %v", red, result.Attenuation)
	}
}
