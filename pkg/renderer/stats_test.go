package renderer

import (
	"testing"

	"github.com/example/gotracer/pkg/core"
)

func TestPixelStatsEmptyIsBlack(t *testing.T) {
	var ps PixelStats
	if !ps.GetColor().Eq(core.Black) {
		t.Errorf("GetColor on empty PixelStats = %v, want black", ps.GetColor())
	}
}

func TestPixelStatsAddSampleAndGetColor(t *testing.T) {
	var ps PixelStats
	ps.AddSample(core.NewRGBColor(1, 2, 3))
	ps.AddSample(core.NewRGBColor(3, 4, 5))

	want := core.NewRGBColor(2, 3, 4)
	got := ps.GetColor()
	if !got.Eq(want) {
		t.Errorf("GetColor = %v, want %v", got, want)
	}
	if ps.SampleCount != 2 {
		t.Errorf("SampleCount = %d, want 2", ps.SampleCount)
	}
}
