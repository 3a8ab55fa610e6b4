package renderer

import "github.com/example/gotracer/pkg/core"

// RenderStats summarizes a completed render: a flat k² sub-pixel grid
// swept once per pass rather than per-pixel adaptive sampling.
type RenderStats struct {
	TotalPixels  int // width * height
	TotalPasses  int // k²
	TotalSamples int // TotalPixels * TotalPasses
}

// PixelStats accumulates one pixel's (count, RGB sum) across all
// sub-pixel passes. Each cell is written only by the worker owning its
// row in the current pass — no locking required.
type PixelStats struct {
	ColorSum    core.RGBColor
	SampleCount int
}

// AddSample folds one sendRay result into the accumulator.
func (ps *PixelStats) AddSample(c core.RGBColor) {
	ps.ColorSum = ps.ColorSum.Add(c)
	ps.SampleCount++
}

// GetColor returns the running average sum/count.
func (ps *PixelStats) GetColor() core.RGBColor {
	if ps.SampleCount == 0 {
		return core.Black
	}
	return ps.ColorSum.Scale(1 / float32(ps.SampleCount))
}
