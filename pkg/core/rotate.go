package core

import (
	"github.com/ungerik/go3d/quaternion"
	"github.com/ungerik/go3d/vec3"
)

// RotateAroundAxis rotates v by angleRadians about axis (which need
// not be normalized) using quaternion composition. This is the single
// call site that converts between core.Vec3 and go3d's vec3.T/
// quaternion.T so the rest of the module never has to think about the
// interop (see DESIGN.md for why go3d's quaternion package, rather
// than a hand-rolled rotation matrix, is used here).
func RotateAroundAxis(v, axis Vec3, angleRadians float32) Vec3 {
	a := axis.Normalize()
	q := quaternion.FromAxisAngle(&vec3.T{a.X, a.Y, a.Z}, angleRadians)
	rotated := q.RotatedVec3(&vec3.T{v.X, v.Y, v.Z})
	return NewVec3(rotated[0], rotated[1], rotated[2])
}
