package geometry

import (
	"github.com/example/gotracer/pkg/core"
	"github.com/mwindels/rtreego"
)

// AABB is an axis-aligned bounding box: two corners, bmin <= bmax
// component-wise.
type AABB struct {
	Min, Max core.Vec3
}

// FromMesh builds an AABB from the component-wise min/max of a mesh's
// vertex pool. Constructing one from an empty mesh is a precondition
// violation.
func FromMesh(m *Mesh) AABB {
	if len(m.Vertices) == 0 {
		panic("geometry: AABB of an empty mesh")
	}
	bmin, bmax := m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		bmin = bmin.MinVec(v)
		bmax = bmax.MaxVec(v)
	}
	return AABB{Min: bmin, Max: bmax}
}

// Hit is the slab test against a ray with cached InvDir/Sign, folding
// each axis's interval into [t0,t1]. No intersection parameter is ever
// produced or stored — this is pure pruning.
func (b AABB) Hit(r core.Ray, t0, t1 float32) bool {
	bounds := [2]core.Vec3{b.Min, b.Max}

	tMin := (bounds[r.Sign[0]].X - r.Origin.X) * r.InvDir.X
	tMax := (bounds[1-r.Sign[0]].X - r.Origin.X) * r.InvDir.X
	if tMin > t1 || t0 > tMax {
		return false
	}
	if tMin > t0 {
		t0 = tMin
	}
	if tMax < t1 {
		t1 = tMax
	}

	tyMin := (bounds[r.Sign[1]].Y - r.Origin.Y) * r.InvDir.Y
	tyMax := (bounds[1-r.Sign[1]].Y - r.Origin.Y) * r.InvDir.Y
	if tyMin > t1 || t0 > tyMax {
		return false
	}
	if tyMin > t0 {
		t0 = tyMin
	}
	if tyMax < t1 {
		t1 = tyMax
	}

	tzMin := (bounds[r.Sign[2]].Z - r.Origin.Z) * r.InvDir.Z
	tzMax := (bounds[1-r.Sign[2]].Z - r.Origin.Z) * r.InvDir.Z
	if tzMin > t1 || t0 > tzMax {
		return false
	}

	return true
}

// Bounds adapts the AABB to rtreego.Spatial so a Mesh can be inserted
// into an rtreego.Rtree for accelerated closest-hit queries (see
// DESIGN.md and pkg/scene).
func (b AABB) Bounds() *rtreego.Rect {
	p := rtreego.Point{float64(b.Min.X), float64(b.Min.Y), float64(b.Min.Z)}
	lengths := []float64{
		float64(b.Max.X-b.Min.X) + 1e-6,
		float64(b.Max.Y-b.Min.Y) + 1e-6,
		float64(b.Max.Z-b.Min.Z) + 1e-6,
	}
	rect, err := rtreego.NewRect(p, lengths)
	if err != nil {
		panic(err)
	}
	return rect
}
