package scenes

import (
	"github.com/example/gotracer/pkg/camera"
	"github.com/example/gotracer/pkg/core"
	"github.com/example/gotracer/pkg/geometry"
	"github.com/example/gotracer/pkg/material"
	"github.com/example/gotracer/pkg/scene"
)

// wallQuad appends two triangles spanning corner, corner+u, corner+u+v,
// corner+v to m — a quad expressed as an explicit triangle pair since
// this core has no analytic quad primitive.
func wallQuad(m *geometry.Mesh, corner, u, v core.Vec3, mat material.Material) {
	a := m.AddVertex(corner)
	b := m.AddVertex(corner.Add(u))
	c := m.AddVertex(corner.Add(u).Add(v))
	d := m.AddVertex(corner.Add(v))
	m.AddTriangle(a, b, c, mat)
	m.AddTriangle(a, c, d, mat)
}

// CornellBox builds the classic 555x555x555 Cornell box: white
// floor/ceiling/back wall, red left wall, green right wall, a bright
// ceiling light, and four colored cubes standing on the floor. The
// camera is positioned outside the box looking in.
func CornellBox() *scene.Scene {
	const boxSize = 555.0

	white := material.New(core.Black, core.NewRGBColor(0.73, 0.73, 0.73), core.Black, 0, core.Black, 0)
	red := material.New(core.Black, core.NewRGBColor(0.65, 0.05, 0.05), core.Black, 0, core.Black, 0)
	green := material.New(core.Black, core.NewRGBColor(0.12, 0.45, 0.15), core.Black, 0, core.Black, 0)
	emissive := material.New(core.Black, core.Black, core.Black, 0, core.NewRGBColor(15, 15, 15), 0)

	walls := geometry.NewMesh()
	wallQuad(walls, core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)          // floor
	wallQuad(walls, core.NewVec3(0, boxSize, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white) // ceiling
	wallQuad(walls, core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)    // back wall
	wallQuad(walls, core.NewVec3(0, 0, boxSize), core.NewVec3(0, 0, -boxSize), core.NewVec3(0, boxSize, 0), red)     // left wall
	wallQuad(walls, core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), green)    // right wall

	const lightSize = 130.0
	const lightOffset = (boxSize - lightSize) / 2.0
	light := geometry.NewMesh()
	wallQuad(light, core.NewVec3(lightOffset, boxSize-1, lightOffset+lightSize), core.NewVec3(lightSize, 0, 0), core.NewVec3(0, 0, -lightSize), emissive)

	cubeColors := []material.Material{
		material.New(core.Black, core.NewRGBColor(0.8, 0.2, 0.2), core.Black, 0, core.Black, 0),
		material.New(core.Black, core.NewRGBColor(0.2, 0.8, 0.2), core.Black, 0, core.Black, 0),
		material.New(core.Black, core.NewRGBColor(0.2, 0.2, 0.8), core.Black, 0, core.Black, 0),
		material.New(core.Black, core.NewRGBColor(0.8, 0.8, 0.2), core.Black, 0, core.Black, 0),
	}
	cubePositions := []core.Vec3{
		core.NewVec3(150, 82, 150),
		core.NewVec3(400, 82, 150),
		core.NewVec3(150, 82, 400),
		core.NewVec3(400, 82, 400),
	}

	s := scene.New()
	s.Add(walls)
	s.Add(light)
	for i, pos := range cubePositions {
		cube := Cube(165, cubeColors[i])
		cube.Translate(pos)
		s.Add(cube)
	}

	s.AddLight(scene.NewPointLight(core.NewVec3(278, boxSize-2, 278), core.NewRGBColor(15, 15, 15)))

	cam := camera.New(
		core.NewVec3(278, 278, -800),
		core.NewVec3(278, 278, 0),
		800, 555, 555,
	)
	s.SetCamera(cam)

	return s
}
