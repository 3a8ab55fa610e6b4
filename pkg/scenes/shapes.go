// Package scenes provides mesh-building helpers living outside the
// core: each accepts a Material and produces a closed triangle soup
// with consistently oriented normals. This core has no analytic-shape
// notion at all — no runtime dispatch over shape types is needed,
// since everything is triangulated — so each helper here tessellates
// its shape into a closed triangle soup.
package scenes

import (
	"math"

	"github.com/example/gotracer/pkg/core"
	"github.com/example/gotracer/pkg/geometry"
	"github.com/example/gotracer/pkg/material"
)

// Cube returns a cube centered at the origin, side length size,
// with outward-facing normals — six quads, two triangles each.
func Cube(size float32, mat material.Material) *geometry.Mesh {
	h := size / 2
	m := geometry.NewMesh()

	corner := func(x, y, z float32) int {
		return m.AddVertex(core.NewVec3(x, y, z))
	}

	// 8 corners, indexed low/high per axis.
	v := [2][2][2]int{}
	for _, xi := range []int{0, 1} {
		for _, yi := range []int{0, 1} {
			for _, zi := range []int{0, 1} {
				sx, sy, sz := -h, -h, -h
				if xi == 1 {
					sx = h
				}
				if yi == 1 {
					sy = h
				}
				if zi == 1 {
					sz = h
				}
				v[xi][yi][zi] = corner(sx, sy, sz)
			}
		}
	}

	quad := func(a, b, c, d int) {
		m.AddTriangle(a, b, c, mat)
		m.AddTriangle(a, c, d, mat)
	}

	// -x, +x
	quad(v[0][0][0], v[0][0][1], v[0][1][1], v[0][1][0])
	quad(v[1][0][1], v[1][0][0], v[1][1][0], v[1][1][1])
	// -y, +y
	quad(v[0][0][1], v[0][0][0], v[1][0][0], v[1][0][1])
	quad(v[0][1][0], v[0][1][1], v[1][1][1], v[1][1][0])
	// -z, +z
	quad(v[1][0][0], v[0][0][0], v[0][1][0], v[1][1][0])
	quad(v[0][0][1], v[1][0][1], v[1][1][1], v[0][1][1])

	return m
}

// Disk returns a flat, radius-r disk in the XY plane centered at the
// origin with normal +Z, tessellated into segments triangles fanned
// from the center.
func Disk(radius float32, segments int, mat material.Material) *geometry.Mesh {
	m := geometry.NewMesh()
	center := m.AddVertex(core.NewVec3(0, 0, 0))

	rim := make([]int, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x := radius * float32(math.Cos(theta))
		y := radius * float32(math.Sin(theta))
		rim[i] = m.AddVertex(core.NewVec3(x, y, 0))
	}
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		m.AddTriangle(center, rim[i], rim[j], mat)
	}
	return m
}

// Cylinder returns a closed, capped cylinder of the given radius and
// height, axis along +Z, base centered at the origin, tessellated with
// segments around the circumference.
func Cylinder(radius, height float32, segments int, mat material.Material) *geometry.Mesh {
	m := geometry.NewMesh()

	bottom := make([]int, segments)
	top := make([]int, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x := radius * float32(math.Cos(theta))
		y := radius * float32(math.Sin(theta))
		bottom[i] = m.AddVertex(core.NewVec3(x, y, 0))
		top[i] = m.AddVertex(core.NewVec3(x, y, height))
	}
	bottomCenter := m.AddVertex(core.NewVec3(0, 0, 0))
	topCenter := m.AddVertex(core.NewVec3(0, 0, height))

	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		// side wall, outward-facing
		m.AddTriangle(bottom[i], bottom[j], top[j], mat)
		m.AddTriangle(bottom[i], top[j], top[i], mat)
		// bottom cap, normal -Z
		m.AddTriangle(bottomCenter, bottom[j], bottom[i], mat)
		// top cap, normal +Z
		m.AddTriangle(topCenter, top[i], top[j], mat)
	}
	return m
}

// Cone returns a closed, capped cone of the given base radius and
// height, axis along +Z, base centered at the origin, apex at
// (0,0,height), tessellated with segments around the circumference.
func Cone(radius, height float32, segments int, mat material.Material) *geometry.Mesh {
	m := geometry.NewMesh()

	base := make([]int, segments)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x := radius * float32(math.Cos(theta))
		y := radius * float32(math.Sin(theta))
		base[i] = m.AddVertex(core.NewVec3(x, y, 0))
	}
	apex := m.AddVertex(core.NewVec3(0, 0, height))
	baseCenter := m.AddVertex(core.NewVec3(0, 0, 0))

	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		m.AddTriangle(base[i], base[j], apex, mat)
		m.AddTriangle(baseCenter, base[j], base[i], mat)
	}
	return m
}

// Sphere returns a closed UV-tessellated sphere of the given radius
// centered at the origin, with latitudeSegments rings and
// longitudeSegments meridians.
func Sphere(radius float32, latitudeSegments, longitudeSegments int, mat material.Material) *geometry.Mesh {
	m := geometry.NewMesh()

	type ring []int
	rings := make([]ring, latitudeSegments+1)
	for lat := 0; lat <= latitudeSegments; lat++ {
		phi := math.Pi * float64(lat) / float64(latitudeSegments) // 0 (north pole) .. pi (south pole)
		y := radius * float32(math.Cos(phi))
		r := radius * float32(math.Sin(phi))

		row := make(ring, longitudeSegments)
		for lon := 0; lon < longitudeSegments; lon++ {
			theta := 2 * math.Pi * float64(lon) / float64(longitudeSegments)
			x := r * float32(math.Cos(theta))
			z := r * float32(math.Sin(theta))
			row[lon] = m.AddVertex(core.NewVec3(x, y, z))
		}
		rings[lat] = row
	}

	for lat := 0; lat < latitudeSegments; lat++ {
		for lon := 0; lon < longitudeSegments; lon++ {
			lonNext := (lon + 1) % longitudeSegments
			a := rings[lat][lon]
			b := rings[lat][lonNext]
			c := rings[lat+1][lonNext]
			d := rings[lat+1][lon]

			if lat > 0 {
				m.AddTriangle(a, b, c, mat)
			}
			if lat < latitudeSegments-1 {
				m.AddTriangle(a, c, d, mat)
			}
		}
	}
	return m
}
