// Command kerneldebug dumps the fully assembled compute-shader source for
// a given lattice model and precision mode, for offline inspection (the
// compute-shader analogue of cmd/shaderdebug, which rendered a fragment
// shader to a PNG instead).
//
// Usage: go run ./cmd/kerneldebug -model D2Q9 -precision FP32 -kernel stream_collide -out kernel.glsl
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pthm-cable/lbmsolver/kernels"
	"github.com/pthm-cable/lbmsolver/lattice"
	"github.com/pthm-cable/lbmsolver/precision"
)

func main() {
	modelFlag := flag.String("model", "D2Q9", "Lattice model (D2Q9, D3Q7, D3Q15, D3Q19, D3Q27)")
	precisionFlag := flag.String("precision", "FP32", "Precision mode (FP32, FP16S, FP16C)")
	kernelFlag := flag.String("kernel", "stream_collide", "Kernel to assemble (stream_collide, equilibrium)")
	nx := flag.Int("nx", 32, "Grid NX")
	ny := flag.Int("ny", 32, "Grid NY")
	nz := flag.Int("nz", 1, "Grid NZ")
	workgroup := flag.Int("workgroup", 64, "WORKGROUP_SIZE_X")
	outPath := flag.String("out", "", "Output path (empty = stdout)")
	flag.Parse()

	model := lattice.Model(*modelFlag)
	if _, err := lattice.Get(model); err != nil {
		fmt.Fprintf(os.Stderr, "kerneldebug: %v\n", err)
		os.Exit(1)
	}

	mode, err := precision.Parse(*precisionFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kerneldebug: %v\n", err)
		os.Exit(1)
	}

	params := kernels.BuildParams{
		NX: *nx, NY: *ny, NZ: *nz,
		Model: model, Mode: mode, WorkgroupSizeX: *workgroup,
	}

	var source string
	switch *kernelFlag {
	case "stream_collide":
		source, err = kernels.StreamCollideProgramSource(params)
	case "equilibrium":
		source, err = kernels.EquilibriumProgramSource(params)
	default:
		err = fmt.Errorf("unknown kernel %q (want stream_collide or equilibrium)", *kernelFlag)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "kerneldebug: %v\n", err)
		os.Exit(1)
	}

	if *outPath == "" {
		fmt.Print(source)
		return
	}
	if err := os.WriteFile(*outPath, []byte(source), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "kerneldebug: writing %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("kernel source written to %s (%d bytes)\n", *outPath, len(source))
}
