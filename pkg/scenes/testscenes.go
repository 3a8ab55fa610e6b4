package scenes

import (
	"math"

	"github.com/example/gotracer/pkg/camera"
	"github.com/example/gotracer/pkg/core"
	"github.com/example/gotracer/pkg/material"
	"github.com/example/gotracer/pkg/scene"
)

// groundDisk is a large flat disk standing in for an infinite ground
// plane: this core has no infinite-plane primitive, so a wide finite
// disk approximates it.
func groundDisk(mat material.Material) *scene.Scene {
	s := scene.New()
	ground := Disk(10000, 64, mat)
	s.Add(ground)
	return s
}

// CylinderTestScene is a cylinder showcase built as triangle soups: a
// gray ground disk plus a handful of colored, capped cylinders, lit by
// a single point light.
func CylinderTestScene() *scene.Scene {
	gray := material.New(core.Black, core.NewRGBColor(0.5, 0.5, 0.5), core.Black, 0, core.Black, 0)
	red := material.New(core.Black, core.NewRGBColor(0.8, 0.2, 0.2), core.Black, 0, core.Black, 0)
	blue := material.New(core.Black, core.NewRGBColor(0.2, 0.2, 0.8), core.Black, 0, core.Black, 0)
	gold := material.New(core.Black, core.Black, core.NewRGBColor(0.8, 0.6, 0.2), 200, core.Black, 0)

	s := groundDisk(gray)

	center := Cylinder(0.35, 2.5, 24, gold)
	center.Translate(core.NewVec3(-0.3, 0, -1.5))
	s.Add(center)

	right := Cylinder(0.5, 2, 24, red)
	right.Translate(core.NewVec3(1.8, 0, 0))
	s.Add(right)

	left := Cylinder(0.3, 1, 24, blue)
	left.Rotate(core.NewVec3(0, 0, 1), math.Pi/2)
	left.Translate(core.NewVec3(-2.5, 0.3, 0))
	s.Add(left)

	s.AddLight(scene.NewPointLight(core.NewVec3(3, 5, 3), core.NewRGBColor(10, 10, 10)))
	s.UseDirectLighting = true

	cam := camera.New(core.NewVec3(0, 1.5, 4), core.NewVec3(0, 1, 0), 1, 1.6, 0.9)
	s.SetCamera(cam)
	return s
}

// ConeTestScene is a cone showcase built as triangle soups: a gray
// ground disk plus a tall red cone at the center and a short, wide
// green cone beside it. Both cones come to a point; Cone has no top
// radius, so the scene contains no frustum.
func ConeTestScene() *scene.Scene {
	gray := material.New(core.Black, core.NewRGBColor(0.5, 0.5, 0.5), core.Black, 0, core.Black, 0)
	red := material.New(core.Black, core.NewRGBColor(0.8, 0.2, 0.2), core.Black, 0, core.Black, 0)
	green := material.New(core.Black, core.NewRGBColor(0.2, 0.8, 0.2), core.Black, 0, core.Black, 0)

	s := groundDisk(gray)

	center := Cone(0.5, 2, 24, red)
	s.Add(center)

	frustumBase := Cone(0.8, 0.6, 24, green)
	frustumBase.Translate(core.NewVec3(2, 0, 0))
	s.Add(frustumBase)

	s.AddLight(scene.NewPointLight(core.NewVec3(3, 5, 3), core.NewRGBColor(10, 10, 10)))

	cam := camera.New(core.NewVec3(0, 1.5, 4), core.NewVec3(0, 1, 0), 1, 1.6, 0.9)
	s.SetCamera(cam)
	return s
}

// SphereGridScene is a gridSize x gridSize grid of metallic spheres on
// a ground plane, each tinted by a plain cosine-based hue sweep
// expressed directly in RGB.
func SphereGridScene(gridSize int) *scene.Scene {
	gray := material.New(core.Black, core.NewRGBColor(0.5, 0.5, 0.5), core.Black, 0, core.Black, 0)
	s := groundDisk(gray)

	const targetArea = 9.0
	spacing := targetArea / float32(gridSize-1)
	radius := spacing * 0.35

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float32(i)*spacing - targetArea/2 + 4.5
			z := float32(j)*spacing - targetArea/2 + 4.5

			hue := float64(i) / float64(gridSize-1)
			specular := core.NewRGBColor(
				float32(0.5+0.5*math.Cos(2*math.Pi*hue)),
				float32(0.5+0.5*math.Cos(2*math.Pi*(hue+1.0/3))),
				float32(0.5+0.5*math.Cos(2*math.Pi*(hue+2.0/3))),
			)
			mat := material.New(core.Black, core.Black, specular, 80, core.Black, 0)

			sphere := Sphere(radius, 12, 16, mat)
			sphere.Translate(core.NewVec3(x, radius, z))
			s.Add(sphere)
		}
	}

	s.AddLight(scene.NewPointLight(core.NewVec3(20, 25, 20), core.NewRGBColor(12, 11.5, 10)))

	cam := camera.New(core.NewVec3(4.5, 6, 18), core.NewVec3(4.5, 0.8, 4.5), 1, 1.78, 1)
	s.SetCamera(cam)
	return s
}
