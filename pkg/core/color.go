package core

// RGBColor is an unclamped, HDR-capable RGB triple.
// Negative components are not produced by the integrator, but the
// type itself does not enforce that — it is an invariant of the
// callers, not of the representation.
type RGBColor struct {
	R, G, B float32
}

// NewRGBColor builds an RGBColor from components.
func NewRGBColor(r, g, b float32) RGBColor {
	return RGBColor{R: r, G: g, B: b}
}

// Black is the zero color, returned on a primary-ray miss.
var Black = RGBColor{}

// Add returns the component-wise sum.
func (c RGBColor) Add(o RGBColor) RGBColor {
	return RGBColor{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Mul returns the component-wise product.
func (c RGBColor) Mul(o RGBColor) RGBColor {
	return RGBColor{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale returns the color scaled by a scalar.
func (c RGBColor) Scale(s float32) RGBColor {
	return RGBColor{c.R * s, c.G * s, c.B * s}
}

// Div returns the color divided by a scalar.
func (c RGBColor) Div(s float32) RGBColor {
	return RGBColor{c.R / s, c.G / s, c.B / s}
}

// IsZero reports whether all components are exactly zero — used to
// test "has emission" / "material.diffuse is zero" style predicates.
func (c RGBColor) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Eq reports component-wise equality.
func (c RGBColor) Eq(o RGBColor) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}
