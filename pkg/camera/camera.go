// Package camera implements the pinhole projection camera.
package camera

import (
	"math"

	"github.com/example/gotracer/pkg/core"
)

// worldUp is the world +z up convention the Camera's right-handed
// basis is built against.
var worldUp = core.NewVec3(0, 0, 1)

// Camera is a pinhole camera: position, target, plane distance and
// plane width/height. Forward/right/down/widthVec/heightVec/upperLeft
// are derived and recomputed on every mutator call.
type Camera struct {
	Position core.Vec3
	Target   core.Vec3
	Width    float32
	Height   float32
	Dist     float32

	forward, right, down core.Vec3
	widthVec, heightVec  core.Vec3
	upperLeft            core.Vec3
}

// New builds a Camera and computes its derived basis.
func New(position, target core.Vec3, dist, width, height float32) *Camera {
	c := &Camera{Position: position, Target: target, Dist: dist, Width: width, Height: height}
	c.recompute()
	return c
}

// SetPosition updates the camera position and recomputes the basis.
func (c *Camera) SetPosition(p core.Vec3) {
	c.Position = p
	c.recompute()
}

// SetTarget updates the look-at target and recomputes the basis.
func (c *Camera) SetTarget(t core.Vec3) {
	c.Target = t
	c.recompute()
}

// SetPlane updates the plane distance/width/height and recomputes the
// basis.
func (c *Camera) SetPlane(dist, width, height float32) {
	c.Dist, c.Width, c.Height = dist, width, height
	c.recompute()
}

// recompute derives forward/right/down/widthVec/heightVec/upperLeft
// from position/target/width/height/dist. right is obtained by
// rotating the horizontal (xy) part of forward by -pi/2 about the world
// z-axis, applied as a quaternion (see DESIGN.md for why this package
// uses core.RotateAroundAxis for that), so right stays orthogonal to a
// forward that tilts up or down. When forward is parallel to the world
// z-axis, right is world +x.
func (c *Camera) recompute() {
	c.forward = c.Target.Sub(c.Position).Normalize()
	level := core.NewVec3(c.forward.X, c.forward.Y, 0)
	if level.Length() < 1e-6 {
		c.right = core.NewVec3(1, 0, 0)
	} else {
		c.right = core.RotateAroundAxis(level, worldUp, float32(-math.Pi/2)).Normalize()
	}
	c.down = c.forward.Cross(c.right).Normalize()
	c.widthVec = c.right.Scale(c.Width)
	c.heightVec = c.down.Scale(c.Height)
	c.upperLeft = c.Position.Add(c.forward.Scale(c.Dist)).
		Sub(c.widthVec.Scale(0.5)).
		Sub(c.heightVec.Scale(0.5))
}

// Forward, Right and Down expose the derived orthonormal basis:
// {forward, right, down} form a right-handed basis given the world +z
// up convention.
func (c *Camera) Forward() core.Vec3 { return c.forward }
func (c *Camera) Right() core.Vec3   { return c.right }
func (c *Camera) Down() core.Vec3    { return c.down }

// Ray generates a primary ray from normalized screen coordinates
// (cx, cy) in [0,1]^2, 0 = top-left.
func (c *Camera) Ray(cx, cy float32) core.Ray {
	dir := c.upperLeft.Add(c.widthVec.Scale(cx)).Add(c.heightVec.Scale(cy)).Sub(c.Position)
	return core.NewRay(c.Position, dir)
}
