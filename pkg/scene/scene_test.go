package scene

import (
	"math/rand"
	"testing"

	"github.com/example/gotracer/pkg/core"
	"github.com/example/gotracer/pkg/geometry"
	"github.com/example/gotracer/pkg/material"
)

func singleTriangleMesh(mat material.Material) *geometry.Mesh {
	m := geometry.NewMesh()
	m.AddVertex(core.NewVec3(0, 0, 0))
	m.AddVertex(core.NewVec3(1, 0, 0))
	m.AddVertex(core.NewVec3(0, 1, 0))
	m.AddTriangle(0, 1, 2, mat)
	return m
}

// S1: single triangle, single primary ray, maxDepth=0 — no emission,
// depth budget exhausted before any bounce, result is black.
func TestClosestHitAndSendRaySingleTriangle(t *testing.T) {
	mat := material.New(core.Black, core.NewRGBColor(1, 1, 1), core.Black, 0, core.Black, 0)
	s := New()
	s.Add(singleTriangleMesh(mat))

	r := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))
	hit := s.ClosestHit(r)
	if !hit.Valid {
		t.Fatal("expected a hit")
	}
	if d := hit.T - 1.0; d < -1e-3 || d > 1e-3 {
		t.Errorf("t = %v, want ~1.0", hit.T)
	}
	if d := hit.U - 0.25; d < -1e-3 || d > 1e-3 {
		t.Errorf("u = %v, want ~0.25", hit.U)
	}
	if d := hit.V - 0.25; d < -1e-3 || d > 1e-3 {
		t.Errorf("v = %v, want ~0.25", hit.V)
	}
}

// S2: emissive hit with maxDepth=0 returns the emissive color exactly.
func TestSendRayEmissiveHit(t *testing.T) {
	emissive := core.NewRGBColor(1, 2, 3)
	mat := material.New(core.Black, core.Black, core.Black, 0, emissive, 0)
	s := New()
	s.Add(singleTriangleMesh(mat))

	r := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))
	got := s.SendRay(r, 0, 0, 0, deterministicRand())
	if !got.Eq(emissive) {
		t.Errorf("SendRay = %v, want %v", got, emissive)
	}
}

// S3: mirror echo, N=0 — no diffuse/specular contribution is sampled
// and no emission exists, so the result is black regardless of depth.
func TestSendRayMirrorEchoZeroSamples(t *testing.T) {
	mat := material.New(core.Black, core.Black, core.NewRGBColor(1, 1, 1), 50, core.Black, 0)

	mesh := geometry.NewMesh()
	mesh.AddVertex(core.NewVec3(-1, -1, 0))
	mesh.AddVertex(core.NewVec3(1, -1, 0))
	mesh.AddVertex(core.NewVec3(0, 1, 0))
	mesh.AddTriangle(0, 1, 2, mat)

	mesh2 := geometry.NewMesh()
	mesh2.AddVertex(core.NewVec3(-1, -1, 5))
	mesh2.AddVertex(core.NewVec3(0, 1, 5))
	mesh2.AddVertex(core.NewVec3(1, -1, 5))
	mesh2.AddTriangle(0, 1, 2, mat)

	s := New()
	s.Add(mesh)
	s.Add(mesh2)

	r := core.NewRay(core.NewVec3(0, -0.5, 1), core.NewVec3(0, 0, 1))
	got := s.SendRay(r, 0, 5, 0, deterministicRand())
	if !got.Eq(core.Black) {
		t.Errorf("SendRay = %v, want black (N=0)", got)
	}
}

// S4: a ray pointing away from a mesh's AABB performs zero triangle
// tests — verified indirectly via a miss with candidates excluded by
// the R-tree query (ClosestHit never even reaches the triangle loop
// for a mesh whose AABB the ray cannot hit).
func TestClosestHitAABBEarlyOut(t *testing.T) {
	mat := material.New(core.Black, core.NewRGBColor(1, 1, 1), core.Black, 0, core.Black, 0)
	s := New()
	s.Add(singleTriangleMesh(mat))

	r := core.NewRay(core.NewVec3(0.25, 0.25, -5), core.NewVec3(0, 0, -1))
	hit := s.ClosestHit(r)
	if hit.Valid {
		t.Error("expected a miss for a ray pointing away from the mesh")
	}
}

// S5: direct-lighting cross-check.
func TestDirectLightingMatchesLambertFormula(t *testing.T) {
	diffuse := core.NewRGBColor(0.5, 0.5, 0.5)
	mat := material.New(core.Black, diffuse, core.Black, 0, core.Black, 0)
	s := New()
	s.Add(singleTriangleMesh(mat))
	s.UseDirectLighting = true

	lightColor := core.NewRGBColor(1, 1, 1)
	lightPos := core.NewVec3(0.25, 0.25, 5)
	s.AddLight(NewPointLight(lightPos, lightColor))

	r := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))
	hit := s.ClosestHit(r)
	if !hit.Valid {
		t.Fatal("expected a hit")
	}

	got := s.DirectLighting(hit)

	p := hit.Point()
	n := hit.Triangle.FaceNormalTowardRay(hit.Ray.Origin)
	toLight := lightPos.Sub(p)
	dist := toLight.Length()
	lhat := toLight.Scale(1 / dist)
	cosTheta := n.Dot(lhat)
	want := lightColor.Mul(diffuse).Scale(cosTheta / dist)

	if d := got.R - want.R; d < -1e-3 || d > 1e-3 {
		t.Errorf("DirectLighting = %v, want %v", got, want)
	}
}

func deterministicRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}
