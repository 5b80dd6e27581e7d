package lattice

import (
	"fmt"
	"strconv"
	"strings"
)

// GLSLSource renders the descriptor's C, W, and Opposite tables as GLSL
// array-literal declarations, for concatenation ahead of the kernel body by
// the device program builder (spec.md §4.2: "Concatenate the descriptor
// source ... with the kernel sources").
func (d Descriptor) GLSLSource() string {
	var b strings.Builder
	fmt.Fprintf(&b, "// lattice descriptor: %s (D=%d, Q=%d)\n", d.Model, d.D, d.Q)

	b.WriteString("const ivec3 C[Q] = ivec3[Q](\n")
	for q, c := range d.C {
		fmt.Fprintf(&b, "    ivec3(%d, %d, %d)", c[0], c[1], c[2])
		if q != len(d.C)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");\n\n")

	b.WriteString("const float W[Q] = float[Q](\n")
	for q, w := range d.W {
		b.WriteString("    " + strconv.FormatFloat(w, 'g', -1, 64))
		if q != len(d.W)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");\n\n")

	b.WriteString("const int OPPOSITE[Q] = int[Q](\n")
	for q, o := range d.Opposite {
		fmt.Fprintf(&b, "    %d", o)
		if q != len(d.Opposite)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");\n")

	return b.String()
}
