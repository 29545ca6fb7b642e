package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrUnknownScene is returned by Lookup for names not in the catalogue
var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Human readable name
	Description string
	build       func(Options) *Scene
}

// Options customise how a built-in scene is assembled
type Options struct {
	// Texture replaces the UV debug texture on scenes that show an image map
	Texture material.ColorSource
}

// fixed adapts a scene constructor that takes no options
func fixed(build func() *Scene) func(Options) *Scene {
	return func(Options) *Scene { return build() }
}

// catalogue lists built-in scenes in display order
var catalogue = []SceneInfo{
	{ID: "spheres", Description: "Field of random diffuse, metal and glass spheres with depth of field", build: fixed(NewSpheresScene)},
	{ID: "bouncing-spheres", Description: "Random spheres moving during the exposure over a checkered ground", build: fixed(NewBouncingSpheresScene)},
	{ID: "checkered-spheres", Description: "Two large spheres sharing a spatial checker texture", build: fixed(NewCheckeredSpheresScene)},
	{ID: "textures", Description: "UV-mapped, emissive, mixed and isotropic materials side by side", build: func(o Options) *Scene { return NewTexturesSceneWithTexture(o.Texture) }},
	{ID: "cornell", Description: "Cornell box lit only by an area light", build: fixed(NewCornellScene)},
	{ID: "empty", Description: "Nothing to hit; every ray returns the background", build: fixed(NewEmptyScene)},
}

func init() {
	for i := range catalogue {
		catalogue[i].DisplayName = titleCase(catalogue[i].ID)
	}
}

// List returns every built-in scene
func List() []SceneInfo {
	out := make([]SceneInfo, len(catalogue))
	copy(out, catalogue)
	return out
}

// Names returns the identifiers of every built-in scene
func Names() []string {
	names := make([]string, len(catalogue))
	for i, info := range catalogue {
		names[i] = info.ID
	}
	return names
}

// Lookup builds the scene with the given identifier
func Lookup(name string) (*Scene, error) {
	return LookupWithOptions(name, Options{})
}

// LookupWithOptions builds the named scene with opts applied
func LookupWithOptions(name string, opts Options) (*Scene, error) {
	for _, info := range catalogue {
		if info.ID == name {
			return info.build(opts), nil
		}
	}
	return nil, fmt.Errorf("%q (known: %s): %w", name, strings.Join(Names(), ", "), ErrUnknownScene)
}

// titleCase turns an identifier like "bouncing-spheres" into "Bouncing Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
