// Package renderer implements the sub-pixel accumulation driver: a
// k²-pass, worker-pool-parallelized sweep over the image that feeds a
// framebuffer sink.
package renderer

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/example/gotracer/pkg/core"
	"github.com/example/gotracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout.
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// NewDefaultLogger returns a core.Logger that writes to stdout.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Sink is the framebuffer sink the renderer publishes to. The core
// treats it opaquely; pkg/sink provides concrete implementations.
type Sink interface {
	Width() int
	Height() int
	Plot(x, y int, c core.RGBColor)
	Update()
}

// Config bundles the renderer's per-run parameters.
type Config struct {
	MaxDepth   int // maxDepth passed to every SendRay call
	Samples    int // N, samples per indirect integral
	SubPixel   int // k, sub-pixel division factor; k² passes total
	NumWorkers int // 0 = runtime.NumCPU()
}

// Renderer drives the k²-pass sub-pixel accumulation loop.
type Renderer struct {
	scene  *scene.Scene
	sink   Sink
	config Config
	logger core.Logger

	pixelStats [][]PixelStats
	pool       *WorkerPool
}

// New builds a Renderer targeting sink's dimensions.
func New(s *scene.Scene, sink Sink, config Config, logger core.Logger) *Renderer {
	width, height := sink.Width(), sink.Height()

	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	return &Renderer{
		scene:      s,
		sink:       sink,
		config:     config,
		logger:     logger,
		pixelStats: pixelStats,
		pool:       NewWorkerPool(s, width, height, config.MaxDepth, config.Samples, config.NumWorkers),
	}
}

// Render runs all k² sub-pixel passes to completion, publishing each
// finished row to the sink as it completes so callers get a
// progressively refining preview. Passes run sequentially; pixels
// within a pass render in parallel.
func (rn *Renderer) Render() RenderStats {
	width, height := rn.sink.Width(), rn.sink.Height()
	k := rn.config.SubPixel
	if k <= 0 {
		k = 1
	}

	rn.logger.Printf("rendering %dx%d, %d sub-pixel passes, %d workers\n",
		width, height, k*k, rn.pool.NumWorkers())

	passIndex := 0
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			xp := -0.5 + float32(i)/float32(k)
			yp := -0.5 + float32(j)/float32(k)
			rn.renderPass(passIndex, xp, yp, height)
			passIndex++
			rn.logger.Printf("pass %d/%d complete\n", passIndex, k*k)
		}
	}

	rn.pool.Close()

	return RenderStats{
		TotalPixels:  width * height,
		TotalPasses:  k * k,
		TotalSamples: width * height * k * k,
	}
}

// renderPass submits every row of the image for one sub-pixel offset
// and publishes each row to the sink as it finishes.
func (rn *Renderer) renderPass(passIndex int, xp, yp float32, height int) {
	for y := 0; y < height; y++ {
		rn.pool.Submit(RowTask{
			Y:          y,
			OffsetX:    xp,
			OffsetY:    yp,
			Rand:       rand.New(rand.NewSource(rowSeed(passIndex, y))),
			PixelStats: rn.pixelStats,
		})
	}

	for i := 0; i < height; i++ {
		result, ok := rn.pool.Result()
		if !ok {
			return
		}
		rn.publishRow(result.Y)
	}
}

// publishRow writes a row's current averaged colors to the sink and
// flushes it.
func (rn *Renderer) publishRow(y int) {
	row := rn.pixelStats[y]
	for x, stats := range row {
		rn.sink.Plot(x, y, stats.GetColor())
	}
	rn.sink.Update()
}

// rowSeed derives a deterministic per-(pass,row) seed. Seeding per row
// rather than per worker goroutine keeps the result independent of how
// many workers happen to process it.
func rowSeed(passIndex, y int) int64 {
	return int64(passIndex)*1000003 + int64(y) + 1
}
