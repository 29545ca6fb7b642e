package scene

import (
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewEmptyScene creates a scene with nothing in it and the default camera,
// so every pixel is the black background
func NewEmptyScene() *Scene {
	return &Scene{World: geometry.NewHittableList(), Camera: renderer.NewCamera()}
}
