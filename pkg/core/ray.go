package core

// Ray is an origin + normalized direction, with a cached inverse
// direction and per-axis sign bits for the AABB slab test. A Ray is
// immutable after construction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
	InvDir Vec3
	Sign   [3]int // 1 if the corresponding direction component is negative, else 0
}

// NewRay normalizes dir and precomputes InvDir/Sign.
func NewRay(origin, dir Vec3) Ray {
	d := dir.Normalize()
	inv := d.Reciprocal()
	r := Ray{Origin: origin, Dir: d, InvDir: inv}
	if inv.X < 0 {
		r.Sign[0] = 1
	}
	if inv.Y < 0 {
		r.Sign[1] = 1
	}
	if inv.Z < 0 {
		r.Sign[2] = 1
	}
	return r
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}
