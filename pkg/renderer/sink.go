package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PixelSink receives the rendered image one pixel at a time, rows top to
// bottom and columns left to right
type PixelSink interface {
	Begin(width, height int) error
	// WritePixel receives the sum of spp samples for the next pixel
	WritePixel(sum core.Color, spp int) error
	End() error
}

// PPMSink streams a plain-text P3 image
type PPMSink struct {
	w *bufio.Writer
}

// NewPPMSink creates a PPM sink writing to w
func NewPPMSink(w io.Writer) *PPMSink {
	return &PPMSink{w: bufio.NewWriter(w)}
}

// Begin writes the PPM header
func (s *PPMSink) Begin(width, height int) error {
	_, err := fmt.Fprintf(s.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one "r g b" line
func (s *PPMSink) WritePixel(sum core.Color, spp int) error {
	return WriteColor(s.w, sum, spp)
}

// End flushes buffered output
func (s *PPMSink) End() error {
	return s.w.Flush()
}

// ImageEncoder writes a finished image to w
type ImageEncoder func(w io.Writer, img image.Image) error

// ImageSink collects pixels into an RGBA image and encodes it on End
type ImageSink struct {
	w      io.Writer
	encode ImageEncoder
	img    *image.RGBA
	next   int
}

// NewImageSink creates a sink that encodes with encode
func NewImageSink(w io.Writer, encode ImageEncoder) *ImageSink {
	return &ImageSink{w: w, encode: encode}
}

// Begin allocates the image
func (s *ImageSink) Begin(width, height int) error {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.next = 0
	return nil
}

// WritePixel tone-maps the next pixel into the image
func (s *ImageSink) WritePixel(sum core.Color, spp int) error {
	width := s.img.Bounds().Dx()
	if s.next >= width*s.img.Bounds().Dy() {
		return fmt.Errorf("renderer: pixel %d written past the end of a %v image", s.next, s.img.Bounds().Size())
	}
	r, g, b := ToneMap(sum, spp)
	s.img.SetRGBA(s.next%width, s.next/width, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
	s.next++
	return nil
}

// End encodes the collected image
func (s *ImageSink) End() error {
	return s.encode(s.w, s.img)
}

// Image returns the collected image
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// NewSinkForPath picks the sink from the extension of path: .ppm, .png,
// .bmp, .tif or .tiff. An empty path or "-" selects PPM.
func NewSinkForPath(path string, w io.Writer) (PixelSink, error) {
	if path == "" || path == "-" {
		return NewPPMSink(w), nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return NewPPMSink(w), nil
	case ".png":
		return NewImageSink(w, png.Encode), nil
	case ".bmp":
		return NewImageSink(w, bmp.Encode), nil
	case ".tif", ".tiff":
		return NewImageSink(w, encodeTIFF), nil
	default:
		return nil, fmt.Errorf("output %q (extension %q): %w", path, ext, ErrUnknownFormat)
	}
}
