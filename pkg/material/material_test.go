package material

import (
	"testing"

	"github.com/example/gotracer/pkg/core"
)

func TestHasEmission(t *testing.T) {
	m := New(core.Black, core.Black, core.Black, 0, core.Black, 0)
	if m.HasEmission() {
		t.Error("zero emissive material reports HasEmission")
	}

	glowing := New(core.Black, core.Black, core.Black, 0, core.NewRGBColor(1, 2, 3), 0)
	if !glowing.HasEmission() {
		t.Error("non-zero emissive material reports no emission")
	}
}

func TestIsRefractive(t *testing.T) {
	opaque := New(core.Black, core.Black, core.Black, 0, core.Black, 0)
	if opaque.IsRefractive() {
		t.Error("zero eta material reports IsRefractive")
	}

	glass := New(core.Black, core.Black, core.Black, 0, core.Black, 1.5)
	if !glass.IsRefractive() {
		t.Error("non-zero eta material reports not refractive")
	}
}

func TestHasDiffuseAndSpecular(t *testing.T) {
	m := New(core.Black, core.NewRGBColor(1, 1, 1), core.Black, 0, core.Black, 0)
	if !m.HasDiffuse() {
		t.Error("non-zero diffuse reports HasDiffuse false")
	}
	if m.HasSpecular() {
		t.Error("zero specular reports HasSpecular true")
	}
}
