package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Samples taken for each pixel
	MaxDepth        int           // Bounce limit used for every path
	Workers         int           // Row workers used (1 when sequential)
	RenderTime      time.Duration // Wall time from initialization to the end of output
}

// SamplesPerSecond returns the camera ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.RenderTime.Seconds()
}

// addRow records one finished row
func (s *RenderStats) addRow(pixels int) {
	s.TotalPixels += pixels
	s.TotalSamples += pixels * s.SamplesPerPixel
}
