package geometry

import (
	"github.com/example/gotracer/pkg/core"
	"github.com/mwindels/rtreego"
)

// AABBFromRect converts an rtreego.Rect back into an AABB, the inverse
// of AABB.Bounds. Used by the scene package to re-run the exact slab
// test against a candidate rtreego node instead of trusting the
// R-tree's own (axis-aligned, but looser) intersection predicate.
func AABBFromRect(rect *rtreego.Rect) AABB {
	return AABB{
		Min: vec3From64(rect.PointCoord(0), rect.PointCoord(1), rect.PointCoord(2)),
		Max: vec3From64(
			rect.PointCoord(0)+rect.LengthsCoord(0),
			rect.PointCoord(1)+rect.LengthsCoord(1),
			rect.PointCoord(2)+rect.LengthsCoord(2),
		),
	}
}

func vec3From64(x, y, z float64) core.Vec3 {
	return core.NewVec3(float32(x), float32(y), float32(z))
}
