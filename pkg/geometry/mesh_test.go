package geometry

import (
	"testing"

	"github.com/example/gotracer/pkg/core"
	"github.com/example/gotracer/pkg/material"
)

func TestMeshAddTriangleOutOfRangePanics(t *testing.T) {
	m := NewMesh()
	m.AddVertex(core.NewVec3(0, 0, 0))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range vertex index")
		}
	}()
	m.AddTriangle(0, 1, 2, material.New(core.Black, core.Black, core.Black, 0, core.Black, 0))
}

func TestMeshMergeAddsEachVertexOnce(t *testing.T) {
	mat := material.New(core.Black, core.NewRGBColor(1, 1, 1), core.Black, 0, core.Black, 0)

	a := NewMesh()
	a0 := a.AddVertex(core.NewVec3(0, 0, 0))
	a1 := a.AddVertex(core.NewVec3(1, 0, 0))
	a2 := a.AddVertex(core.NewVec3(0, 1, 0))
	a.AddTriangle(a0, a1, a2, mat)

	b := NewMesh()
	b0 := b.AddVertex(core.NewVec3(5, 5, 5))
	b1 := b.AddVertex(core.NewVec3(6, 5, 5))
	b2 := b.AddVertex(core.NewVec3(5, 6, 5))
	b.AddTriangle(b0, b1, b2, mat)

	a.Merge(b)

	if len(a.Vertices) != 6 {
		t.Fatalf("expected 6 vertices after merge (3+3, no duplication), got %d", len(a.Vertices))
	}
	if len(a.Triangles) != 2 {
		t.Fatalf("expected 2 triangles after merge, got %d", len(a.Triangles))
	}
	merged := a.Triangles[1]
	if merged.I0 != 3 || merged.I1 != 4 || merged.I2 != 5 {
		t.Errorf("merged triangle indices not offset correctly: %d,%d,%d", merged.I0, merged.I1, merged.I2)
	}
}

func TestMeshTranslate(t *testing.T) {
	mat := material.New(core.Black, core.NewRGBColor(1, 1, 1), core.Black, 0, core.Black, 0)
	m := NewMesh()
	i0 := m.AddVertex(core.NewVec3(0, 0, 0))
	i1 := m.AddVertex(core.NewVec3(1, 0, 0))
	i2 := m.AddVertex(core.NewVec3(0, 1, 0))
	m.AddTriangle(i0, i1, i2, mat)

	delta := core.NewVec3(2, 3, 4)
	m.Translate(delta)

	if m.Vertices[0] != delta {
		t.Errorf("vertex not translated: %v", m.Vertices[0])
	}
	if m.Triangles[0].V0 != delta {
		t.Errorf("triangle cache not updated after translate: %v", m.Triangles[0].V0)
	}
}

func TestMeshRotatePreservesNormalUnitLength(t *testing.T) {
	mat := material.New(core.Black, core.NewRGBColor(1, 1, 1), core.Black, 0, core.Black, 0)
	m := NewMesh()
	i0 := m.AddVertex(core.NewVec3(0, 0, 0))
	i1 := m.AddVertex(core.NewVec3(1, 0, 0))
	i2 := m.AddVertex(core.NewVec3(0, 1, 0))
	m.AddTriangle(i0, i1, i2, mat)

	m.Rotate(core.NewVec3(0, 0, 1), 1.0)

	n := m.Triangles[0].N
	if !approxEqual(n.Length(), 1, 1e-4) {
		t.Errorf("normal not unit length after rotate: %v (len %v)", n, n.Length())
	}
}
