package scene

import (
	"github.com/example/gotracer/pkg/core"
	"github.com/example/gotracer/pkg/geometry"
)

// HitRecord is the result of a closest-hit query. An invalid record
// compares greater than any valid one — see Closer.
type HitRecord struct {
	T        float32
	U, V     float32
	Triangle *geometry.Triangle
	Ray      core.Ray
	Valid    bool
}

// Closer reports whether a is the closer of the two hits: both valid
// and a.T smaller, with an invalid hit always losing.
func Closer(a, b HitRecord) bool {
	if !a.Valid {
		return false
	}
	if !b.Valid {
		return true
	}
	return a.T < b.T
}

// Point returns the intersection point P = origin + dir*t.
func (h HitRecord) Point() core.Vec3 {
	return h.Ray.At(h.T)
}
