package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderFlags are the options of the render command
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "spheres",
		Usage: "built-in scene to render (see list-scenes)",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "image width in pixels (scene default if unset)",
	},
	cli.Float64Flag{
		Name:  "aspect",
		Usage: "image aspect ratio, width over height",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "maximum ray bounces",
	},
	cli.Float64Flag{
		Name:  "vfov",
		Usage: "vertical field of view in degrees",
	},
	cli.Float64Flag{
		Name:  "defocus-angle",
		Usage: "lens cone angle in degrees; 0 disables depth of field",
	},
	cli.Float64Flag{
		Name:  "focus-dist",
		Usage: "distance to the plane of perfect focus",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: 1,
		Usage: "random seed; the same seed reproduces the same image",
	},
	cli.IntFlag{
		Name:  "workers, w",
		Value: 1,
		Usage: "rows rendered in parallel; 1 renders sequentially",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "-",
		Usage: "output file (.ppm, .png, .bmp, .tif); - writes PPM to stdout",
	},
	cli.StringFlag{
		Name:  "texture",
		Usage: "image file (.png, .jpg, .bmp, .tif) mapped onto the textures scene",
	},
	cli.BoolFlag{
		Name:  "stats",
		Usage: "print render statistics when done",
	},
}

// Render a built-in scene to a file or stdout.
func RenderScene(ctx *cli.Context) (err error) {
	setupLogging(ctx)

	var opts scene.Options
	if path := ctx.String("texture"); path != "" {
		texture, err := loaders.LoadImageTexture(path)
		if err != nil {
			return err
		}
		logger.Debugf("loaded %dx%d texture from %s", texture.Width, texture.Height, path)
		opts.Texture = texture
	}

	sc, err := scene.LookupWithOptions(ctx.String("scene"), opts)
	if err != nil {
		return err
	}
	applyCameraFlags(ctx, sc.Camera)
	sc.Camera.Status = ctx.App.ErrWriter
	if sc.Camera.Status == nil {
		sc.Camera.Status = os.Stderr
	}

	outPath := ctx.String("out")
	// Reject unknown formats before creating the file
	if _, err := renderer.NewSinkForPath(outPath, io.Discard); err != nil {
		return err
	}

	var w io.Writer = ctx.App.Writer
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); err == nil && closeErr != nil {
				err = fmt.Errorf("close output: %w", closeErr)
			}
		}()
		w = f
	}

	sink, err := renderer.NewSinkForPath(outPath, w)
	if err != nil {
		return err
	}

	logger.Infof("rendering scene %q to %s", ctx.String("scene"), outPath)
	stats, err := sc.Camera.Render(sc.World, sink)
	if err != nil {
		return err
	}

	if ctx.Bool("stats") {
		displayRenderStats(stats)
	}
	return nil
}

// applyCameraFlags overrides scene camera settings with the flags given on
// the command line
func applyCameraFlags(ctx *cli.Context, c *renderer.Camera) {
	if ctx.IsSet("width") {
		c.ImageWidth = ctx.Int("width")
	}
	if ctx.IsSet("aspect") {
		c.AspectRatio = ctx.Float64("aspect")
	}
	if ctx.IsSet("spp") {
		c.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		c.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("vfov") {
		c.VFov = ctx.Float64("vfov")
	}
	if ctx.IsSet("defocus-angle") {
		c.DefocusAngle = ctx.Float64("defocus-angle")
	}
	if ctx.IsSet("focus-dist") {
		c.FocusDist = ctx.Float64("focus-dist")
	}
	c.Seed = ctx.Int64("seed")
	c.Workers = ctx.Int("workers")
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/pixel", "Max depth", "Workers", "Samples", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", stats.TotalSamples),
		stats.RenderTime.String(),
	})
	table.SetFooter([]string{"", "", "", "", "RATE", fmt.Sprintf("%.0f samples/s", stats.SamplesPerSecond())})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
