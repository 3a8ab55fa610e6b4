package core

import "testing"

func TestNewRayNormalizesDirection(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(3, 4, 0))
	if !approxEqual(r.Dir.Length(), 1, 1e-5) {
		t.Errorf("ray direction not normalized: %v", r.Dir)
	}
}

func TestRaySignBits(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(-1, 1, -1))
	want := [3]int{1, 0, 1}
	if r.Sign != want {
		t.Errorf("Sign = %v, want %v", r.Sign, want)
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(1, 1, 1), NewVec3(1, 0, 0))
	p := r.At(2)
	if p != (Vec3{3, 1, 1}) {
		t.Errorf("At(2) = %v, want {3 1 1}", p)
	}
}
