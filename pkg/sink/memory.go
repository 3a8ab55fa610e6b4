package sink

import "github.com/example/gotracer/pkg/core"

// MemorySink is a framebuffer sink that keeps the current image
// in-process (no file or network I/O), for tests and for embedding the
// renderer in another program. UpdateCount lets a caller observe how
// many times the renderer has published progress.
type MemorySink struct {
	width, height int
	pixels        []core.RGBColor
	UpdateCount   int
}

// NewMemorySink builds an empty (black) MemorySink.
func NewMemorySink(width, height int) *MemorySink {
	return &MemorySink{width: width, height: height, pixels: make([]core.RGBColor, width*height)}
}

func (s *MemorySink) Width() int  { return s.width }
func (s *MemorySink) Height() int { return s.height }

func (s *MemorySink) Plot(x, y int, c core.RGBColor) {
	s.pixels[y*s.width+x] = c
}

func (s *MemorySink) Update() {
	s.UpdateCount++
}

// At returns the current color of pixel (x,y).
func (s *MemorySink) At(x, y int) core.RGBColor {
	return s.pixels[y*s.width+x]
}
