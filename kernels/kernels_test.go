package kernels

import (
	"strings"
	"testing"

	"github.com/pthm-cable/lbmsolver/lattice"
	"github.com/pthm-cable/lbmsolver/precision"
)

func TestEquilibriumProgramSourceInjectsMacros(t *testing.T) {
	p := BuildParams{NX: 4, NY: 4, NZ: 1, Model: lattice.D2Q9, Mode: precision.FP32, WorkgroupSizeX: 64}
	src, err := EquilibriumProgramSource(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"#define N 16", "#define Q 9", "#define D 2", "#define POP_T float", "#define ARITH_T float"} {
		if !strings.Contains(src, want) {
			t.Errorf("missing %q in assembled source", want)
		}
	}
}

func TestStreamCollideProgramSourceHalfExtension(t *testing.T) {
	p := BuildParams{NX: 8, NY: 8, NZ: 1, Model: lattice.D2Q9, Mode: precision.FP16C, WorkgroupSizeX: 64}
	src, err := StreamCollideProgramSource(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(src, "GL_EXT_shader_16bit_storage") {
		t.Error("expected half-precision extension pragma for FP16C")
	}
	if !strings.Contains(src, "#define ARITH_T float16_t") {
		t.Error("expected float16_t arithmetic type for FP16C")
	}
}

func TestUnknownModelErrors(t *testing.T) {
	p := BuildParams{NX: 4, NY: 4, NZ: 1, Model: "bogus", Mode: precision.FP32, WorkgroupSizeX: 64}
	if _, err := EquilibriumProgramSource(p); err == nil {
		t.Fatal("expected error for unknown model")
	}
}
