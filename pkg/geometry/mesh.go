package geometry

import (
	"github.com/example/gotracer/pkg/core"
	"github.com/example/gotracer/pkg/material"
)

// Mesh owns an ordered, append-only vertex pool plus an ordered
// triangle list. Triangles address vertices by stable index into this
// pool rather than by pointer: appending a vertex never invalidates an
// existing Triangle's indices, which is what lets Merge just append and
// offset rather than juggle pointer lifetimes.
type Mesh struct {
	Vertices  []core.Vec3
	Triangles []*Triangle
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex and returns its stable index.
func (m *Mesh) AddVertex(v core.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddTriangle appends a triangle referencing three vertex indices
// already present in this mesh's pool.
func (m *Mesh) AddTriangle(i, j, k int, mat material.Material) *Triangle {
	if i < 0 || j < 0 || k < 0 || i >= len(m.Vertices) || j >= len(m.Vertices) || k >= len(m.Vertices) {
		panic("geometry: triangle references out-of-range vertex")
	}
	t := NewTriangle(i, j, k, m.Vertices, mat)
	m.Triangles = append(m.Triangles, t)
	return t
}

// Merge appends other's vertices to this mesh and its triangles with
// indices offset accordingly. Each source vertex is added exactly once.
func (m *Mesh) Merge(other *Mesh) {
	offset := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)

	for _, t := range other.Triangles {
		shifted := &Triangle{
			I0:       t.I0 + offset,
			I1:       t.I1 + offset,
			I2:       t.I2 + offset,
			Material: t.Material,
		}
		shifted.Update(m.Vertices)
		m.Triangles = append(m.Triangles, shifted)
	}
}

// update recomputes every triangle's cached edges/normal from the
// current vertex pool. Callers must invoke this after directly
// mutating Vertices, as Translate, Scale and Rotate do.
func (m *Mesh) update() {
	for _, t := range m.Triangles {
		t.Update(m.Vertices)
	}
}

// Translate moves every vertex by delta, then updates triangles.
func (m *Mesh) Translate(delta core.Vec3) {
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Add(delta)
	}
	m.update()
}

// Scale scales every vertex about the origin by per-axis factors, then
// updates triangles. Callers wanting to scale about a pivot should
// Translate to the origin, Scale, then Translate back.
func (m *Mesh) Scale(factors core.Vec3) {
	for i, v := range m.Vertices {
		m.Vertices[i] = v.MulVec(factors)
	}
	m.update()
}

// Rotate rotates every vertex about the origin by angleRadians around
// axis, then updates triangles. The rotation itself is performed by
// github.com/ungerik/go3d/quaternion via core.RotateAroundAxis (see
// DESIGN.md for why that library, rather than a hand-rolled rotation
// matrix, is used here).
func (m *Mesh) Rotate(axis core.Vec3, angleRadians float32) {
	for i, v := range m.Vertices {
		m.Vertices[i] = core.RotateAroundAxis(v, axis, angleRadians)
	}
	m.update()
}
