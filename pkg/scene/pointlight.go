package scene

import "github.com/example/gotracer/pkg/core"

// PointLight is an immutable analytic point light.
type PointLight struct {
	Position core.Vec3
	Color    core.RGBColor
}

// NewPointLight builds a PointLight.
func NewPointLight(position core.Vec3, color core.RGBColor) PointLight {
	return PointLight{Position: position, Color: color}
}
