package sampler

import (
	"math"
	"math/rand"
	"testing"

	"github.com/example/gotracer/pkg/core"
)

func TestPerpendicularIsOrthogonal(t *testing.T) {
	axes := []core.Vec3{
		core.NewVec3(1, 0, 0), // forces the x-fallback chain
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(1, 1, 1).Normalize(),
	}
	for _, a := range axes {
		p := perpendicular(a)
		if d := a.Dot(p); d > 1e-4 || d < -1e-4 {
			t.Errorf("perpendicular(%v) = %v not orthogonal, dot=%v", a, p, d)
		}
		if l := p.Length(); l < 0.99 || l > 1.01 {
			t.Errorf("perpendicular(%v) not unit length: %v", a, p)
		}
	}
}

func TestSampleStaysInHemisphere(t *testing.T) {
	axis := core.NewVec3(0, 0, 1)
	rnd := rand.New(rand.NewSource(1))
	s := New(axis, 1, rnd)

	for i := 0; i < 200; i++ {
		d := s.Sample()
		if d.Dot(axis) < -1e-4 {
			t.Fatalf("sample %v fell outside hemisphere around axis %v", d, axis)
		}
	}
}

// P5: cosine-weighted sample distribution — E[(sample.axis)^k] should
// converge to (n+1)/(n+1+k).
func TestCosineDistributionConverges(t *testing.T) {
	axis := core.NewVec3(0, 1, 0)
	rnd := rand.New(rand.NewSource(42))

	for _, n := range []float32{1, 4} {
		s := New(axis, n, rnd)
		const trials = 20000
		var sum1, sum2 float64
		for i := 0; i < trials; i++ {
			d := s.Sample()
			c := float64(d.Dot(axis))
			sum1 += c
			sum2 += c * c
		}
		mean1 := sum1 / trials
		mean2 := sum2 / trials

		want1 := float64(n+1) / float64(n+2)
		want2 := float64(n+1) / float64(n+3)

		if math.Abs(mean1-want1) > 0.02 {
			t.Errorf("n=%v: E[cos] = %v, want ~%v", n, mean1, want1)
		}
		if math.Abs(mean2-want2) > 0.02 {
			t.Errorf("n=%v: E[cos^2] = %v, want ~%v", n, mean2, want2)
		}
	}
}

func TestSampleFreshRandomness(t *testing.T) {
	axis := core.NewVec3(0, 0, 1)
	rnd := rand.New(rand.NewSource(7))
	s := New(axis, 1, rnd)

	a := s.Sample()
	b := s.Sample()
	if a == b {
		t.Error("expected consecutive samples to differ")
	}
}
