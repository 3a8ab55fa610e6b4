package scene

import (
	"math"
	"math/rand"

	"github.com/example/gotracer/pkg/core"
	"github.com/example/gotracer/pkg/geometry"
	"github.com/example/gotracer/pkg/sampler"
)

// maxRefractionBudget caps same-depth refraction re-entries, bounding
// recursion through a chain of refractive materials without advancing
// depth/maxDepth.
const maxRefractionBudget = 16

// shadowEpsilon keeps a shadow ray's own hit point from self-shadowing.
const shadowEpsilon = 1e-3

// SendRay is the recursive illumination integrator. depth is the
// current recursion depth, maxDepth the termination bound, n the
// number of samples per indirect integral.
func (s *Scene) SendRay(r core.Ray, depth, maxDepth, n int, rnd *rand.Rand) core.RGBColor {
	_, c := s.trace(r, depth, maxDepth, n, maxRefractionBudget, rnd)
	return c
}

// trace runs one bounce of SendRay and also returns the HitRecord, so
// that the indirect integrals (which need the sampled hit point Pₑ)
// don't repeat the closest-hit query.
func (s *Scene) trace(r core.Ray, depth, maxDepth, n, refractionBudget int, rnd *rand.Rand) (HitRecord, core.RGBColor) {
	hit := s.ClosestHit(r)
	if !hit.Valid {
		return hit, core.Black
	}

	mat := hit.Triangle.Material
	base := mat.Emissive
	if s.UseDirectLighting {
		base = base.Add(s.DirectLighting(hit))
	}

	if depth >= maxDepth {
		return hit, base
	}

	if mat.IsRefractive() {
		if refractionBudget <= 0 {
			return hit, base
		}
		nrm := hit.Triangle.FaceNormalTowardRay(r.Origin)
		dir, ok := geometry.RefractDir(r.Dir, nrm, mat.RefractionIndex)
		if !ok {
			dir = geometry.ReflectionDir(r.Dir, nrm)
		}
		secondary := core.NewRay(hit.Point(), dir)
		// Same depth, not depth+1 — bounded instead by refractionBudget
		// rather than maxDepth.
		_, c := s.trace(secondary, depth, maxDepth, n, refractionBudget-1, rnd)
		return hit, c
	}

	result := base
	if mat.HasDiffuse() {
		result = result.Add(s.indirectDiffuse(hit, r, depth, maxDepth, n, refractionBudget, rnd))
	}
	if mat.HasSpecular() {
		result = result.Add(s.indirectSpecular(hit, r, depth, maxDepth, n, refractionBudget, rnd))
	}
	return hit, result
}

// flippedNormalForDiffuse flips the triangle's face normal to the side
// the ray came from, testing reflectionDir(r)·n rather than the
// incident direction itself — equivalent, but expressed via the
// reflection helper already used elsewhere in this file.
func flippedNormalForDiffuse(n, rayDir core.Vec3) core.Vec3 {
	if geometry.ReflectionDir(rayDir, n).Dot(n) < 0 {
		return n.Neg()
	}
	return n
}

// indirectDiffuse evaluates the cosine-weighted indirect diffuse
// integral. Each sample's light source term Isource is li added to the
// running sum of every prior sample's contribution in this same
// bounce, not li alone — samples within a bounce are entangled with
// each other, carried over from the running accumulator this loop
// returns.
func (s *Scene) indirectDiffuse(hit HitRecord, r core.Ray, depth, maxDepth, n, refractionBudget int, rnd *rand.Rand) core.RGBColor {
	mat := hit.Triangle.Material
	if n <= 0 || !mat.HasDiffuse() {
		return core.Black
	}

	nrm := flippedNormalForDiffuse(hit.Triangle.N, r.Dir)
	p := hit.Point()
	samp := sampler.New(nrm, 1, rnd)

	sum := core.Black
	for i := 0; i < n; i++ {
		secondary := core.NewRay(p, samp.Sample())
		secHit, li := s.trace(secondary, depth+1, maxDepth, n, refractionBudget, rnd)
		if !secHit.Valid {
			continue
		}
		pe := secHit.Point()
		delta := pe.Sub(p)
		dist := delta.Length()
		lhat := delta.Scale(1 / dist)
		cosTheta := nrm.Dot(lhat)
		if cosTheta < 0 {
			cosTheta = -cosTheta
		}
		isource := sum.Add(li)
		idSource := isource.Mul(mat.Diffuse).Scale(cosTheta / dist / float32(n))
		sum = sum.Add(idSource)
	}
	return sum
}

// indirectSpecular evaluates the cosine^n-lobe-weighted indirect
// specular integral around the mirror direction. As in indirectDiffuse,
// each sample's light source term is li added to the running sum of
// every prior sample in this bounce, not li alone.
func (s *Scene) indirectSpecular(hit HitRecord, r core.Ray, depth, maxDepth, n, refractionBudget int, rnd *rand.Rand) core.RGBColor {
	mat := hit.Triangle.Material
	if n <= 0 || !mat.HasSpecular() {
		return core.Black
	}

	mirrorDir := geometry.ReflectionDir(r.Dir, hit.Triangle.N)
	p := hit.Point()
	samp := sampler.New(mirrorDir, mat.SpecularExponent, rnd)
	negRayDir := r.Dir.Neg()

	sum := core.Black
	for i := 0; i < n; i++ {
		secondary := core.NewRay(p, samp.Sample())
		secHit, li := s.trace(secondary, depth+1, maxDepth, n, refractionBudget, rnd)
		if !secHit.Valid {
			continue
		}
		pe := secHit.Point()
		delta := pe.Sub(p)
		dist := delta.Length()
		lhat := delta.Scale(1 / dist)

		// The sign test uses the triangle's own face normal, not the
		// mirror-reflected direction cosAlpha is built from — the two
		// can disagree.
		cosAlpha := negRayDir.Dot(geometry.ReflectionDir(lhat, hit.Triangle.N))
		if lhat.Dot(hit.Triangle.N) < 0 {
			cosAlpha = -cosAlpha
		}
		isource := sum.Add(li)
		idSource := isource.Mul(mat.Specular).Scale(powf(cosAlpha, mat.SpecularExponent) / dist / float32(n))
		sum = sum.Add(idSource)
	}
	return sum
}

// DirectLighting is the optional classical point-light shading path:
// Lambert diffuse plus Phong specular summed over every PointLight,
// each gated by a shadow ray through the same R-tree-accelerated
// closest-hit query. Not invoked by the default pipeline — only when
// Scene.UseDirectLighting is set.
func (s *Scene) DirectLighting(hit HitRecord) core.RGBColor {
	mat := hit.Triangle.Material
	if !mat.HasDiffuse() && !mat.HasSpecular() {
		return core.Black
	}

	p := hit.Point()
	n := hit.Triangle.FaceNormalTowardRay(hit.Ray.Origin)
	viewDir := hit.Ray.Dir.Neg()

	sum := core.Black
	for _, light := range s.Lights {
		toLight := light.Position.Sub(p)
		dist := toLight.Length()
		lhat := toLight.Scale(1 / dist)

		shadowRay := core.NewRay(p, lhat)
		shadowHit := s.ClosestHit(shadowRay)
		if shadowHit.Valid && shadowHit.T < dist-shadowEpsilon {
			continue
		}

		cosTheta := n.Dot(lhat)
		if cosTheta <= 0 {
			continue
		}
		sum = sum.Add(light.Color.Mul(mat.Diffuse).Scale(cosTheta / dist))

		if mat.HasSpecular() {
			reflDir := geometry.ReflectionDir(lhat.Neg(), n)
			specCos := viewDir.Dot(reflDir)
			if specCos > 0 {
				weight := powf(specCos, mat.SpecularExponent)
				sum = sum.Add(light.Color.Mul(mat.Specular).Scale(weight / dist))
			}
		}
	}
	return sum
}

func powf(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}
