// Package geometry implements the ray-primitive intersection layer:
// triangles addressed into a Mesh's vertex pool, and the AABB slab
// test.
package geometry

import (
	"github.com/example/gotracer/pkg/core"
	"github.com/example/gotracer/pkg/material"
)

// mollerTrumboreEpsilon rejects rays parallel to the triangle's plane.
const mollerTrumboreEpsilon = 1e-9

// selfIntersectEpsilon rejects self-intersections of the origin
// triangle.
const selfIntersectEpsilon = 1e-4

// Triangle holds indices into its owning Mesh's vertex pool plus a
// cached copy of vertex0, the u/v edge axes, and the unit face normal.
// After any vertex mutation the owner must call Update before any
// intersection query.
type Triangle struct {
	I0, I1, I2 int // indices into the owning Mesh's vertex pool
	V0         core.Vec3
	U, V       core.Vec3 // u-axis = v1-v0, v-axis = v2-v0
	N          core.Vec3 // unit face normal = normalize(u x v)
	Material   material.Material
}

// NewTriangle builds a Triangle from vertex indices and resolves its
// cached fields from the given vertex pool.
func NewTriangle(i0, i1, i2 int, verts []core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{I0: i0, I1: i1, I2: i2, Material: mat}
	t.Update(verts)
	return t
}

// Update recomputes V0, U, V and N from the owning mesh's current
// vertex pool. Must be called after any vertex mutation.
func (t *Triangle) Update(verts []core.Vec3) {
	v0, v1, v2 := verts[t.I0], verts[t.I1], verts[t.I2]
	t.V0 = v0
	t.U = v1.Sub(v0)
	t.V = v2.Sub(v0)
	t.N = t.U.Cross(t.V).Normalize()
}

// Hit implements the Möller–Trumbore ray-triangle test. It reports a
// miss (not an error) on a near-zero determinant — a degenerate-geometry
// condition that is runtime-tolerated.
func (t *Triangle) Hit(r core.Ray) (hitT, u, v float32, ok bool) {
	p := r.Dir.Cross(t.V)
	det := t.U.Dot(p)
	if det > -mollerTrumboreEpsilon && det < mollerTrumboreEpsilon {
		return 0, 0, 0, false
	}
	inv := 1 / det

	tv := r.Origin.Sub(t.V0)
	u = tv.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := tv.Cross(t.U)
	v = r.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	hitT = t.V.Dot(q) * inv
	if hitT < selfIntersectEpsilon {
		return 0, 0, 0, false
	}
	return hitT, u, v, true
}

// ReflectionDir reflects an incident direction d across the plane
// defined by the triangle's normal: r = d - 2(d·n)n.
func ReflectionDir(d, n core.Vec3) core.Vec3 {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}

// FaceNormalTowardRay flips the triangle's normal to face the side the
// given ray origin is on: n' = n if n·(rayOrigin - v0) > 0, else -n.
func (t *Triangle) FaceNormalTowardRay(rayOrigin core.Vec3) core.Vec3 {
	if t.N.Dot(rayOrigin.Sub(t.V0)) > 0 {
		return t.N
	}
	return t.N.Neg()
}

// RefractDir computes the refracted direction for an incident ray
// hitting this triangle. n must already be flipped toward the incoming
// side. ok is false on total internal reflection: the caller should
// fall back to ReflectionDir rather than propagate NaN.
func RefractDir(rayDir, n core.Vec3, eta float32) (dir core.Vec3, ok bool) {
	etaP := 1 / eta
	alpha := n.Dot(rayDir.Neg())
	radicand := 1 - etaP*etaP*(1-alpha*alpha)
	if radicand < 0 {
		return core.Vec3{}, false
	}
	beta := sqrtf(radicand)
	return rayDir.Scale(etaP).Add(n.Scale(etaP*alpha - beta)), true
}
