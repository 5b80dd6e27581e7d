package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCSVFrameColumnOrder(t *testing.T) {
	dir := t.TempDir()
	rows := []Row{{X: 0, Y: 1, Z: 0, Rho: 1, UX: 0.1, UY: 0, UZ: 0, VorticityMag: 0.2, QCriterion: -0.01}}
	if err := WriteCSVFrame(dir, 3, rows); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "frame_0003.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected a header line and one data line, got %d lines", len(lines))
	}
	want := "x,y,z,rho,ux,uy,uz,vorticity_magnitude,q_criterion"
	if lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
}

func TestWriteVTKFrameStructure(t *testing.T) {
	dir := t.TempDir()
	fr := VTKFrame{
		NX: 2, NY: 2, NZ: 1,
		Density:    []float32{1, 1, 1, 1},
		Velocity:   [][3]float32{{0, 0, 0}, {0.1, 0, 0}, {0, 0.1, 0}, {0, 0, 0}},
		QCriterion: []float32{0, 0, 0, 0},
	}
	if err := WriteVTKFrame(dir, 1, fr); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "data_0001.vtk"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, want := range []string{"DATASET STRUCTURED_POINTS", "DIMENSIONS 2 2 1", "SCALARS density float 1", "VECTORS velocity float"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected VTK output to contain %q", want)
		}
	}
}

func TestManagerEmitRespectsToggles(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, false, true, true, nil)
	fr := Frame{
		Step: 0, NX: 1, NY: 1, NZ: 1,
		Rho: []float32{1}, U: []float32{0, 0, 0},
	}
	if err := m.Emit(fr); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "frame_0000.csv")); err != nil {
		t.Errorf("expected CSV frame to be written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "data_0000.vtk")); !os.IsNotExist(err) {
		t.Errorf("expected no VTK frame to be written, got err=%v", err)
	}
}
