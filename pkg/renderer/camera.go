package renderer

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Camera holds the viewing and sampling configuration and renders a world
// into a PixelSink. The exported fields are the configuration; everything
// else is derived by initialize at the start of each Render.
type Camera struct {
	AspectRatio     float64    // Ratio of image width over height
	ImageWidth      int        // Rendered image width in pixels
	SamplesPerPixel int        // Random samples for each pixel
	MaxDepth        int        // Maximum number of ray bounces
	Background      core.Color // Radiance of rays that escape the scene

	VFov     float64     // Vertical field of view in degrees
	LookFrom core.Point3 // Camera position
	LookAt   core.Point3 // Point the camera looks at
	VUp      core.Vec3   // Camera-relative up direction

	DefocusAngle float64 // Variation angle of rays through each pixel, in degrees
	FocusDist    float64 // Distance from LookFrom to the plane of perfect focus

	Seed       int64                 // Seed for the per-row random sources
	Workers    int                   // Parallel row workers; <= 1 renders sequentially
	Integrator integrator.Integrator // Defaults to a PathTracer with Background
	Logger     log.Logger            // Defaults to the "renderer" logger
	Status     io.Writer             // Progress lines; defaults to stderr

	imageHeight  int
	center       core.Point3
	pixel00      core.Point3 // Center of the top-left pixel
	pixelDeltaU  core.Vec3   // Offset to the pixel to the right
	pixelDeltaV  core.Vec3   // Offset to the pixel below
	u, v, w      core.Vec3   // Camera frame basis vectors
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
	tracer       integrator.Integrator
}

// NewCamera returns a camera with the default configuration
func NewCamera() *Camera {
	return &Camera{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, -1),
		LookAt:          core.NewVec3(0, 0, 0),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}
}

// initialize derives the image height, camera frame, pixel grid and defocus
// disk from the public configuration
func (c *Camera) initialize() error {
	if c.ImageWidth <= 0 {
		return fmt.Errorf("image width %d: %w", c.ImageWidth, ErrInvalidCamera)
	}
	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		return fmt.Errorf("aspect ratio %g: %w", c.AspectRatio, ErrInvalidCamera)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel %d: %w", c.SamplesPerPixel, ErrInvalidCamera)
	}

	c.imageHeight = max(1, int(float64(c.ImageWidth)/c.AspectRatio))
	c.center = c.LookFrom

	theta := mgl64.DegToRad(c.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * c.FocusDist
	viewportWidth := viewportHeight * (float64(c.ImageWidth) / float64(c.imageHeight))

	w, err := c.LookFrom.Subtract(c.LookAt).Normalize()
	if err != nil {
		return fmt.Errorf("view direction from %v to %v: %w: %w", c.LookFrom, c.LookAt, ErrInvalidCamera, err)
	}
	u, err := c.VUp.Cross(w).Normalize()
	if err != nil {
		return fmt.Errorf("up vector %v parallel to view direction: %w: %w", c.VUp, ErrInvalidCamera, err)
	}
	c.w, c.u = w, u
	c.v = w.Cross(u)

	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(c.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(c.FocusDist)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := c.FocusDist * math.Tan(mgl64.DegToRad(c.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	c.tracer = c.Integrator
	if c.tracer == nil {
		c.tracer = integrator.NewPathTracer(c.Background)
	}
	if c.Logger == nil {
		c.Logger = log.New("renderer")
	}
	if c.Status == nil {
		c.Status = os.Stderr
	}
	return nil
}

// ImageHeight returns the derived image height. Valid after Render, or
// after a successful call through Basis.
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// Basis initializes the camera and returns its orthonormal frame: u points
// right, v up, and w backwards (away from LookAt)
func (c *Camera) Basis() (u, v, w core.Vec3, err error) {
	if err := c.initialize(); err != nil {
		return core.Vec3{}, core.Vec3{}, core.Vec3{}, err
	}
	return c.u, c.v, c.w, nil
}

// GetRay returns a ray from the defocus disk through a random point inside
// pixel (i, j), at a random time in [0, 1)
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := c.sampleSquare(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	rayOrigin := c.center
	if c.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}
	rayDirection := pixelSample.Subtract(rayOrigin)
	rayTime := sampler.Get1D()

	return core.NewRayAtTime(rayOrigin, rayDirection, rayTime)
}

// sampleSquare returns a random offset in the [-0.5, 0.5) pixel square
func (c *Camera) sampleSquare(sampler core.Sampler) core.Vec2 {
	return core.NewVec2(sampler.Get1D()-0.5, sampler.Get1D()-0.5)
}

func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Point3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// renderRow accumulates SamplesPerPixel radiance samples for every pixel of
// row j. Each row draws from its own source so the result does not depend on
// which worker renders it.
func (c *Camera) renderRow(j int, world geometry.Hittable) []core.Color {
	sampler := core.NewSeededSampler(rowSeed(c.Seed, j))
	row := make([]core.Color, c.ImageWidth)
	for i := range row {
		var pixelColor core.Color
		for s := 0; s < c.SamplesPerPixel; s++ {
			r := c.GetRay(i, j, sampler)
			pixelColor = pixelColor.Add(c.tracer.RayColor(r, c.MaxDepth, world, sampler))
		}
		row[i] = pixelColor
	}
	return row
}

func rowSeed(seed int64, row int) int64 {
	return seed*1000003 + int64(row)
}
