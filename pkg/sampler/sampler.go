// Package sampler implements the cosine^n-weighted random direction
// sampler.
package sampler

import (
	"math"
	"math/rand"

	"github.com/example/gotracer/pkg/core"
)

// perpendicularEpsilon gates the fallback chain (world x -> y -> z)
// used to find a vector orthogonal to the main axis: fall back to
// world y then world z if the residual norm is below this threshold.
const perpendicularEpsilon = 10 * 1.1920929e-7 // 10 * float32 machine epsilon

var (
	worldX = core.NewVec3(1, 0, 0)
	worldY = core.NewVec3(0, 1, 0)
	worldZ = core.NewVec3(0, 0, 1)
)

// Sampler draws cosine^n-weighted random directions around a main
// axis, via spherical sampling and two quaternion rotations. A Sampler
// is built once per secondary-ray bounce and is not safe for
// concurrent use — each rendering worker owns its own *rand.Rand and
// constructs a fresh Sampler per call.
type Sampler struct {
	axis core.Vec3 // â, the main axis (unit)
	perp core.Vec3 // ê, orthogonal to â
	exp  float32   // n >= 1; n=1 is Lambertian, large n is a tight specular lobe
	rnd  *rand.Rand
}

// New builds a Sampler around axis with exponent exp, drawing randomness
// from rnd. exp must be >= 1.
func New(axis core.Vec3, exp float32, rnd *rand.Rand) *Sampler {
	a := axis.Normalize()
	return &Sampler{axis: a, perp: perpendicular(a), exp: exp, rnd: rnd}
}

// perpendicular builds a unit vector orthogonal to â by projecting
// world x onto the plane perpendicular to â, falling back to world y
// then world z if the residual is too small.
func perpendicular(axis core.Vec3) core.Vec3 {
	candidates := [3]core.Vec3{worldX, worldY, worldZ}
	for _, c := range candidates {
		residual := c.Sub(axis.Scale(axis.Dot(c)))
		if residual.Length() >= perpendicularEpsilon {
			return residual.Normalize()
		}
	}
	panic("sampler: no perpendicular candidate had sufficient residual norm")
}

// Sample draws one cosine^n-weighted direction about the sampler's
// axis. Consecutive calls draw fresh u1, u2 — no caching.
func (s *Sampler) Sample() core.Vec3 {
	u1 := s.rnd.Float64()
	u2 := s.rnd.Float64()

	theta := float32(math.Acos(math.Pow(u1, 1/(float64(s.exp)+1))))
	phi := float32(2 * math.Pi * u2)

	// rotate â by θ about ê, then rotate the result by φ about â.
	tilted := core.RotateAroundAxis(s.axis, s.perp, theta)
	return core.RotateAroundAxis(tilted, s.axis, phi)
}
