// Package sink provides concrete framebuffer sinks: a PNG writer, an
// in-memory sink for tests/embedding, and a websocket
// progressive-preview pusher.
package sink

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/example/gotracer/pkg/core"
)

// PNGSink buffers a framebuffer into an image.RGBA and writes it as a
// PNG on every Update() call, rather than only once at the end, so the
// output file shows progressive refinement as each row/pass completes.
type PNGSink struct {
	img *image.RGBA
	w   io.Writer
}

// NewPNGSink builds a PNGSink of the given dimensions that writes each
// Update() to w.
func NewPNGSink(width, height int, w io.Writer) *PNGSink {
	return &PNGSink{img: image.NewRGBA(image.Rect(0, 0, width, height)), w: w}
}

func (s *PNGSink) Width() int  { return s.img.Bounds().Dx() }
func (s *PNGSink) Height() int { return s.img.Bounds().Dy() }

// Plot writes c into the framebuffer, tone-mapped by a simple clamp
// (the core produces unclamped HDR color; PNG requires [0,255]).
func (s *PNGSink) Plot(x, y int, c core.RGBColor) {
	s.img.SetRGBA(x, y, toRGBA(c))
}

// Update flushes the current framebuffer state to the underlying
// writer as a PNG. A writer that can seek and truncate (such as an
// *os.File) is emptied first, so it holds only the latest frame; any
// other writer receives one complete PNG per call.
func (s *PNGSink) Update() {
	if f, ok := s.w.(interface {
		io.Seeker
		Truncate(size int64) error
	}); ok {
		_ = f.Truncate(0)
		_, _ = f.Seek(0, io.SeekStart)
	}
	// Encoding errors here are not actionable mid-render; best-effort
	// write.
	_ = png.Encode(s.w, s.img)
}

func toRGBA(c core.RGBColor) color.RGBA {
	return color.RGBA{R: clamp8(c.R), G: clamp8(c.G), B: clamp8(c.B), A: 255}
}

func clamp8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}
