// Package scene implements the Scene: owned meshes with their bounding
// boxes, point lights, a camera, the R-tree-accelerated closest-hit
// query, and the recursive shader SendRay.
package scene

import (
	"github.com/example/gotracer/pkg/camera"
	"github.com/example/gotracer/pkg/core"
	"github.com/example/gotracer/pkg/geometry"
	"github.com/mwindels/rtreego"
)

// rtree dimension/branching factors — unremarkable defaults, mirroring
// the (dim, minBranch, maxBranch) constructor shape rtreego exposes.
const (
	rtreeDim       = 3
	rtreeMinBranch = 4
	rtreeMaxBranch = 16
)

// meshEntry pairs a Mesh with its AABB and adapts the pair to
// rtreego.Spatial so Scene can gate traversal on the R-tree instead of
// a linear scan (see DESIGN.md).
type meshEntry struct {
	mesh *geometry.Mesh
	bbox geometry.AABB
}

// Bounds implements rtreego.Spatial.
func (e *meshEntry) Bounds() *rtreego.Rect {
	return e.bbox.Bounds()
}

// Scene owns meshes (append-only), point lights and a camera. Lights
// and camera may be replaced; meshes may only be added.
type Scene struct {
	meshes []*meshEntry
	tree   *rtreego.Rtree
	Lights []PointLight
	Camera *camera.Camera

	// UseDirectLighting toggles the optional classical point-light
	// shading path. The default pipeline leaves this false.
	UseDirectLighting bool
}

// New returns an empty Scene.
func New() *Scene {
	return &Scene{tree: rtreego.NewTree(rtreeDim, rtreeMinBranch, rtreeMaxBranch)}
}

// Add appends a mesh to the scene and inserts it into the R-tree.
func (s *Scene) Add(m *geometry.Mesh) {
	e := &meshEntry{mesh: m, bbox: geometry.FromMesh(m)}
	s.meshes = append(s.meshes, e)
	s.tree.Insert(e)
}

// AddLight appends a point light.
func (s *Scene) AddLight(l PointLight) {
	s.Lights = append(s.Lights, l)
}

// SetCamera replaces the scene's camera.
func (s *Scene) SetCamera(c *camera.Camera) {
	s.Camera = c
}

// ClosestHit iterates over every mesh whose AABB the R-tree reports as
// a candidate for this ray, and within each candidate mesh every
// triangle, retaining the hit with the smallest valid t. Meshes whose
// AABB the ray provably misses are never visited.
func (s *Scene) ClosestHit(r core.Ray) HitRecord {
	best := HitRecord{Ray: r, Valid: false}

	candidates := s.tree.SearchCondition(func(rect *rtreego.Rect) bool {
		return geometry.AABBFromRect(rect).Hit(r, 1e-4, 1e30)
	})

	for _, c := range candidates {
		entry := c.(*meshEntry)
		for _, tri := range entry.mesh.Triangles {
			t, u, v, ok := tri.Hit(r)
			if !ok {
				continue
			}
			candidate := HitRecord{T: t, U: u, V: v, Triangle: tri, Ray: r, Valid: true}
			if Closer(candidate, best) {
				best = candidate
			}
		}
	}
	return best
}
