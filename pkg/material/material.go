// Package material defines the immutable shading record triangles
// reference.
package material

import "github.com/example/gotracer/pkg/core"

// Material is an immutable shading record. It is constructed once at
// scene setup and referenced by many triangles; it is never mutated.
// This core has exactly one material shape — an analytic
// ambient+diffuse+specular+emissive+refractive record — so a plain
// struct replaces interface-dispatched materials (see DESIGN.md).
type Material struct {
	Ambient          core.RGBColor
	Diffuse          core.RGBColor
	Specular         core.RGBColor
	SpecularExponent float32
	Emissive         core.RGBColor
	RefractionIndex  float32
}

// New builds a Material from its components.
func New(ambient, diffuse, specular core.RGBColor, specularExponent float32, emissive core.RGBColor, refractionIndex float32) Material {
	return Material{
		Ambient:          ambient,
		Diffuse:          diffuse,
		Specular:         specular,
		SpecularExponent: specularExponent,
		Emissive:         emissive,
		RefractionIndex:  refractionIndex,
	}
}

// HasEmission reports whether the material's emissive color is non-zero.
func (m Material) HasEmission() bool {
	return !m.Emissive.IsZero()
}

// IsRefractive reports whether the material has a non-zero refraction
// index.
func (m Material) IsRefractive() bool {
	return m.RefractionIndex != 0
}

// HasDiffuse reports whether indirect diffuse sampling contributes
// anything for this material.
func (m Material) HasDiffuse() bool {
	return !m.Diffuse.IsZero()
}

// HasSpecular reports whether indirect specular sampling contributes
// anything for this material.
func (m Material) HasSpecular() bool {
	return !m.Specular.IsZero()
}
