package scene_test

import (
	"math"
	"testing"

	"github.com/example/gotracer/pkg/renderer"
	"github.com/example/gotracer/pkg/scenes"
	"github.com/example/gotracer/pkg/sink"
)

// S6: Cornell box smoke test. Renders the full Cornell box scene (not
// a reduced stand-in) at a resolution small enough to run quickly in
// a test, and checks the finite-mean invariant: every channel of every
// pixel must be a finite, non-negative number, and the image mean must
// be strictly positive (the emissive ceiling light is reaching the
// camera through at least one bounce). A byte-for-byte 10%-of-reference
// comparison isn't checked here since no captured reference image ships
// with this repo; what's checked is the property that comparison is a
// proxy for — the render doesn't blow up into NaN/Inf or produce an
// all-black frame.
func TestCornellBoxSmoke(t *testing.T) {
	s := scenes.CornellBox()

	const width, height = 60, 60
	mem := sink.NewMemorySink(width, height)
	cfg := renderer.Config{MaxDepth: 1, Samples: 100, SubPixel: 1, NumWorkers: 4}
	r := renderer.New(s, mem, cfg, renderer.NewDefaultLogger())
	r.Render()

	var sum float64
	var n int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := mem.At(x, y)
			for _, ch := range [3]float32{c.R, c.G, c.B} {
				if math.IsNaN(float64(ch)) || math.IsInf(float64(ch), 0) {
					t.Fatalf("pixel (%d,%d) has non-finite channel: %v", x, y, c)
				}
				if ch < 0 {
					t.Fatalf("pixel (%d,%d) has negative channel: %v", x, y, c)
				}
				sum += float64(ch)
				n++
			}
		}
	}

	mean := sum / float64(n)
	if mean <= 0 {
		t.Fatalf("Cornell box render mean is %v, want > 0 (emissive ceiling light unreachable?)", mean)
	}
}
