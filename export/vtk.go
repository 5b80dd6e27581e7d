package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// VTKFrame is the data needed to emit one structured-points VTK legacy
// file: three point-data arrays over an (NX, NY, NZ) grid (spec.md §6).
type VTKFrame struct {
	NX, NY, NZ int
	Density    []float32    // length NX*NY*NZ
	Velocity   [][3]float32 // length NX*NY*NZ
	QCriterion []float32    // length NX*NY*NZ
	Vorticity  []float32    // optional, length NX*NY*NZ or nil
}

// WriteVTKFrame writes a legacy structured-points VTK file for one
// emitted frame, in dir (created if missing; the solver passes the
// configured output directory, "output" by default), named
// data_XXXX.vtk with a zero-padded frame counter (spec.md §6).
func WriteVTKFrame(dir string, frame int, fr VTKFrame) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("export: creating output directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("data_%04d.vtk", frame))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	n := fr.NX * fr.NY * fr.NZ

	fmt.Fprintf(w, "# vtk DataFile Version 3.0\n")
	fmt.Fprintf(w, "lbmsolver frame %d\n", frame)
	fmt.Fprintf(w, "ASCII\n")
	fmt.Fprintf(w, "DATASET STRUCTURED_POINTS\n")
	fmt.Fprintf(w, "DIMENSIONS %d %d %d\n", fr.NX, fr.NY, fr.NZ)
	fmt.Fprintf(w, "ORIGIN 0 0 0\n")
	fmt.Fprintf(w, "SPACING 1 1 1\n")
	fmt.Fprintf(w, "POINT_DATA %d\n", n)

	fmt.Fprintf(w, "SCALARS density float 1\n")
	fmt.Fprintf(w, "LOOKUP_TABLE default\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%g\n", fr.Density[i])
	}

	fmt.Fprintf(w, "VECTORS velocity float\n")
	for i := 0; i < n; i++ {
		v := fr.Velocity[i]
		fmt.Fprintf(w, "%g %g %g\n", v[0], v[1], v[2])
	}

	fmt.Fprintf(w, "SCALARS q_criterion float 1\n")
	fmt.Fprintf(w, "LOOKUP_TABLE default\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%g\n", fr.QCriterion[i])
	}

	if fr.Vorticity != nil {
		fmt.Fprintf(w, "SCALARS vorticity_magnitude float 1\n")
		fmt.Fprintf(w, "LOOKUP_TABLE default\n")
		for i := 0; i < n; i++ {
			fmt.Fprintf(w, "%g\n", fr.Vorticity[i])
		}
	}

	return w.Flush()
}
