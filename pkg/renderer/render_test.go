package renderer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// failingSink fails the nth WritePixel call
type failingSink struct {
	failAt int
	calls  int
	ended  bool
}

var errSinkFull = errors.New("sink full")

func (s *failingSink) Begin(width, height int) error { return nil }
func (s *failingSink) WritePixel(sum core.Color, spp int) error {
	s.calls++
	if s.calls == s.failAt {
		return errSinkFull
	}
	return nil
}
func (s *failingSink) End() error {
	s.ended = true
	return nil
}

func testWorld() geometry.Hittable {
	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.3)
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, 1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, 1), 0.5, glass),
		geometry.NewMovingSphere(core.NewVec3(1, 0, 1), core.NewVec3(1, 0.2, 1), 0.5, metal),
	)
}

func TestRenderEmptyWorld(t *testing.T) {
	c := NewCamera()
	c.ImageWidth = 2
	var status, out bytes.Buffer
	c.Status = &status

	stats, err := c.Render(geometry.NewHittableList(), NewPPMSink(&out))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "P3\n2 2\n255\n0 0 0\n0 0 0\n0 0 0\n0 0 0\n"
	if out.String() != expected {
		t.Errorf("Expected %q, got %q", expected, out.String())
	}

	expectedStatus := "\rScanlines remaining: 2 \rScanlines remaining: 1 \rDone.                 \n"
	if status.String() != expectedStatus {
		t.Errorf("Expected status %q, got %q", expectedStatus, status.String())
	}

	if stats.TotalPixels != 4 || stats.TotalSamples != 40 || stats.Width != 2 || stats.Height != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestRenderBackgroundOnMiss(t *testing.T) {
	c := NewCamera()
	c.ImageWidth = 1
	c.SamplesPerPixel = 3
	c.Background = core.NewColor(1, 1, 1)
	c.Status = &bytes.Buffer{}
	var out bytes.Buffer

	if _, err := c.Render(geometry.NewHittableList(), NewPPMSink(&out)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasSuffix(out.String(), "255 255 255\n") {
		t.Errorf("Expected a white pixel, got %q", out.String())
	}
}

func TestRenderSequentialAndParallelIdentical(t *testing.T) {
	render := func(workers int) string {
		c := NewCamera()
		c.ImageWidth = 16
		c.AspectRatio = 16.0 / 9.0
		c.SamplesPerPixel = 4
		c.MaxDepth = 8
		c.Background = core.NewColor(0.7, 0.8, 1.0)
		c.LookFrom = core.NewVec3(0, 0.5, -2)
		c.LookAt = core.NewVec3(0, 0, 1)
		c.DefocusAngle = 1
		c.FocusDist = 3
		c.Seed = 42
		c.Workers = workers
		c.Status = &bytes.Buffer{}

		var out bytes.Buffer
		if _, err := c.Render(testWorld(), NewPPMSink(&out)); err != nil {
			t.Fatalf("Workers %d: unexpected error: %v", workers, err)
		}
		return out.String()
	}

	sequential := render(1)
	for _, workers := range []int{2, 4, 16} {
		if parallel := render(workers); parallel != sequential {
			t.Errorf("Output with %d workers differs from sequential output", workers)
		}
	}
}

func TestRenderSeedChangesOutput(t *testing.T) {
	render := func(seed int64) string {
		c := NewCamera()
		c.ImageWidth = 8
		c.Background = core.NewColor(0.7, 0.8, 1.0)
		c.LookAt = core.NewVec3(0, 0, 1)
		c.Seed = seed
		c.Status = &bytes.Buffer{}
		var out bytes.Buffer
		if _, err := c.Render(testWorld(), NewPPMSink(&out)); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		return out.String()
	}

	if render(1) == render(2) {
		t.Error("Expected different seeds to produce different noise")
	}
	if render(3) != render(3) {
		t.Error("Expected the same seed to reproduce the same image")
	}
}

func TestRenderErrors(t *testing.T) {
	c := NewCamera()
	c.Status = &bytes.Buffer{}

	if _, err := c.Render(nil, NewPPMSink(&bytes.Buffer{})); !errors.Is(err, ErrNilWorld) {
		t.Errorf("Expected ErrNilWorld, got %v", err)
	}
	if _, err := c.Render(geometry.NewHittableList(), nil); !errors.Is(err, ErrNilSink) {
		t.Errorf("Expected ErrNilSink, got %v", err)
	}

	c.ImageWidth = 0
	if _, err := c.Render(geometry.NewHittableList(), NewPPMSink(&bytes.Buffer{})); !errors.Is(err, ErrInvalidCamera) {
		t.Errorf("Expected ErrInvalidCamera, got %v", err)
	}
}

func TestRenderPropagatesSinkErrors(t *testing.T) {
	for _, workers := range []int{1, 4} {
		c := NewCamera()
		c.ImageWidth = 8
		c.SamplesPerPixel = 1
		c.Workers = workers
		c.Status = &bytes.Buffer{}
		sink := &failingSink{failAt: 10}

		_, err := c.Render(geometry.NewHittableList(), sink)
		if !errors.Is(err, errSinkFull) {
			t.Errorf("Workers %d: expected sink error, got %v", workers, err)
		}
		if sink.ended {
			t.Errorf("Workers %d: expected End not to be called after a failure", workers)
		}
		if sink.calls != 10 {
			t.Errorf("Workers %d: expected rendering to stop at the failing pixel, got %d calls", workers, sink.calls)
		}
	}
}
