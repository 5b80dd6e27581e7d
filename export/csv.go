// Package export implements the VTK/CSV writers whose input contract
// spec.md §6 fixes (the broader CLI/progress-display/benchmark-harness
// stays an external collaborator per spec.md §1). Grounded on
// telemetry/output.go's OutputManager: create the output directory once,
// write one struct slice per frame through gocsv.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Row is one CSV record; field order matches the csv tag order and is
// the fixed column order spec.md §6 mandates:
// x, y, z, rho, ux, uy, uz, vorticity_magnitude, q_criterion.
type Row struct {
	X            float32 `csv:"x"`
	Y            float32 `csv:"y"`
	Z            float32 `csv:"z"`
	Rho          float32 `csv:"rho"`
	UX           float32 `csv:"ux"`
	UY           float32 `csv:"uy"`
	UZ           float32 `csv:"uz"`
	VorticityMag float32 `csv:"vorticity_magnitude"`
	QCriterion   float32 `csv:"q_criterion"`
}

// WriteCSVFrame writes one CSV file (one row per node) for a single
// emitted frame. The fixed column order is spec.md §6's CSV row layout;
// one file per frame mirrors the VTK convention since the row layout
// itself carries no frame index column (see DESIGN.md's Open Question
// resolution).
func WriteCSVFrame(dir string, frame int, rows []Row) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("export: creating output directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame_%04d.csv", frame))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.Marshal(rows, f); err != nil {
		return fmt.Errorf("export: writing %s: %w", path, err)
	}
	return nil
}
