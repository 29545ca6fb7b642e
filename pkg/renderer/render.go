package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Render traces the world and streams every pixel to sink, reporting
// progress on Status. It returns the first error from the configuration or
// the sink.
func (c *Camera) Render(world geometry.Hittable, sink PixelSink) (RenderStats, error) {
	start := time.Now()

	if world == nil {
		return RenderStats{}, ErrNilWorld
	}
	if sink == nil {
		return RenderStats{}, ErrNilSink
	}
	if err := c.initialize(); err != nil {
		return RenderStats{}, err
	}

	workers := max(1, c.Workers)
	stats := RenderStats{
		Width:           c.ImageWidth,
		Height:          c.imageHeight,
		SamplesPerPixel: c.SamplesPerPixel,
		MaxDepth:        c.MaxDepth,
		Workers:         workers,
	}

	c.Logger.Infof("Rendering %dx%d, %d samples/pixel, depth %d, %d worker(s)",
		c.ImageWidth, c.imageHeight, c.SamplesPerPixel, c.MaxDepth, workers)

	if err := sink.Begin(c.ImageWidth, c.imageHeight); err != nil {
		return stats, fmt.Errorf("begin output: %w", err)
	}

	emit := func(j int, row []core.Color) error {
		for _, sum := range row {
			if err := sink.WritePixel(sum, c.SamplesPerPixel); err != nil {
				return fmt.Errorf("write row %d: %w", j, err)
			}
		}
		stats.addRow(len(row))
		c.Logger.Debugf("Row %d done", j)
		return nil
	}

	var err error
	if workers == 1 {
		err = c.renderSequential(world, emit)
	} else {
		err = c.renderParallel(world, workers, emit)
	}
	if err != nil {
		return stats, err
	}

	if err := sink.End(); err != nil {
		return stats, fmt.Errorf("end output: %w", err)
	}
	fmt.Fprint(c.Status, "\rDone.                 \n")

	stats.RenderTime = time.Since(start)
	c.Logger.Noticef("Rendered %d pixels (%d samples) in %v", stats.TotalPixels, stats.TotalSamples, stats.RenderTime)
	return stats, nil
}

func (c *Camera) reportProgress(j int) {
	fmt.Fprintf(c.Status, "\rScanlines remaining: %d ", c.imageHeight-j)
}

func (c *Camera) renderSequential(world geometry.Hittable, emit func(int, []core.Color) error) error {
	for j := 0; j < c.imageHeight; j++ {
		c.reportProgress(j)
		if err := emit(j, c.renderRow(j, world)); err != nil {
			return err
		}
	}
	return nil
}

// renderParallel renders rows on a worker pool and emits them in order.
// Progress is reported as each row is emitted, so the status stream matches
// the sequential one.
func (c *Camera) renderParallel(world geometry.Hittable, workers int, emit func(int, []core.Color) error) error {
	pool := NewWorkerPool(workers, c.imageHeight, func(j int) []core.Color {
		return c.renderRow(j, world)
	})
	pool.Start()
	for j := 0; j < c.imageHeight; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}
	pool.Finish()

	ordered := NewInOrder()
	for {
		result, ok := pool.GetResult()
		if !ok {
			return nil
		}
		err := ordered.Push(result, func(j int, row []core.Color) error {
			c.reportProgress(j)
			return emit(j, row)
		})
		if err != nil {
			pool.Abort()
			return err
		}
	}
}
