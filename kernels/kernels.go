// Package kernels holds the GLSL compute-shader sources for the LBM core
// and assembles them into a single compilation unit per spec.md §4.2 (the
// Device Program Builder): numeric macros, then the lattice descriptor
// tables, then the shared helpers, then the kernel entry point.
package kernels

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pthm-cable/lbmsolver/lattice"
	"github.com/pthm-cable/lbmsolver/precision"
)

//go:embed shaders/common.comp
var commonSource string

//go:embed shaders/equilibrium.comp
var equilibriumSource string

//go:embed shaders/stream_collide.comp
var streamCollideSource string

// Flag constants, device-visible as plain integers (spec.md §6).
const (
	FlagFluid = 0
	FlagSolid = 1
	FlagEQ    = 2
)

// BuildParams carries everything the program builder needs to inject as
// numeric macros ahead of the descriptor tables and kernel bodies.
type BuildParams struct {
	NX, NY, NZ     int
	Model          lattice.Model
	Mode           precision.Mode
	WorkgroupSizeX int
}

// popAndArithTypes returns the GLSL storage type (POP_T) and arithmetic
// type (ARITH_T) for a precision mode, per spec.md §4.5:
//   FP32:  storage float,     arithmetic float
//   FP16S: storage float16_t, arithmetic float   (lift on read, truncate on write)
//   FP16C: storage float16_t, arithmetic float16_t (moments still float32)
func popAndArithTypes(m precision.Mode) (popT, arithT string) {
	switch m {
	case precision.FP32:
		return "float", "float"
	case precision.FP16S:
		return "float16_t", "float"
	case precision.FP16C:
		return "float16_t", "float16_t"
	default:
		return "float", "float"
	}
}

// macroBlock renders the #version/#extension/#define preamble the builder
// prepends ahead of the descriptor and kernel sources.
func macroBlock(p BuildParams, d lattice.Descriptor) string {
	popT, arithT := popAndArithTypes(p.Mode)

	var b strings.Builder
	b.WriteString("#version 430\n")
	if p.Mode.RequiresHalfExtension() {
		b.WriteString("#extension GL_EXT_shader_16bit_storage : require\n")
		b.WriteString("#extension GL_EXT_shader_explicit_arithmetic_types_float16 : require\n")
	}
	fmt.Fprintf(&b, "#define NX %d\n", p.NX)
	fmt.Fprintf(&b, "#define NY %d\n", p.NY)
	fmt.Fprintf(&b, "#define NZ %d\n", p.NZ)
	fmt.Fprintf(&b, "#define N %d\n", p.NX*p.NY*p.NZ)
	fmt.Fprintf(&b, "#define Q %d\n", d.Q)
	fmt.Fprintf(&b, "#define D %d\n", d.D)
	fmt.Fprintf(&b, "#define FLAG_FLUID %d\n", FlagFluid)
	fmt.Fprintf(&b, "#define FLAG_SOLID %d\n", FlagSolid)
	fmt.Fprintf(&b, "#define FLAG_EQ %d\n", FlagEQ)
	fmt.Fprintf(&b, "#define WORKGROUP_SIZE_X %d\n", p.WorkgroupSizeX)
	fmt.Fprintf(&b, "#define POP_T %s\n", popT)
	fmt.Fprintf(&b, "#define ARITH_T %s\n", arithT)
	fmt.Fprintf(&b, "#define LATTICE_%s 1\n", d.Model)
	return b.String()
}

// EquilibriumProgramSource assembles the full compute-shader source for
// the equilibrium-initialization kernel (spec.md §4.6).
func EquilibriumProgramSource(p BuildParams) (string, error) {
	d, err := lattice.Get(p.Model)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(macroBlock(p, d))
	b.WriteString(d.GLSLSource())
	b.WriteString(commonSource)
	b.WriteString(equilibriumSource)
	return b.String(), nil
}

// StreamCollideProgramSource assembles the full compute-shader source for
// the fused stream-and-collide kernel (spec.md §4.5).
func StreamCollideProgramSource(p BuildParams) (string, error) {
	d, err := lattice.Get(p.Model)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(macroBlock(p, d))
	b.WriteString(d.GLSLSource())
	b.WriteString(commonSource)
	b.WriteString(streamCollideSource)
	return b.String(), nil
}
