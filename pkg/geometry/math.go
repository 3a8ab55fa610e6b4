package geometry

import "math"

// sqrtf is a float32 wrapper around math.Sqrt, kept local so callers
// reading RefractDir don't need to think about the float64 detour.
func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
