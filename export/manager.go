package export

import (
	"github.com/pthm-cable/lbmsolver/diag"
)

// Manager is the export collaborator the time-step driver hands
// macroscopic fields to every output_interval steps (spec.md §4.7). It
// owns the VTK/CSV toggles and the strict-mode policy from spec.md §7:
// by default an I/O failure is logged and the run continues (data loss
// only for that frame); in strict mode it is returned to the caller.
type Manager struct {
	Dir      string
	WriteVTK bool
	WriteCSV bool
	Strict   bool
	log      *diag.Logger
	frames   int // number of frames emitted so far; names the next frame's files
}

// NewManager creates an export manager writing under dir.
func NewManager(dir string, writeVTK, writeCSV, strict bool, log *diag.Logger) *Manager {
	return &Manager{Dir: dir, WriteVTK: writeVTK, WriteCSV: writeCSV, Strict: strict, log: log}
}

// Frame is the data the driver downloads once per emitted step.
type Frame struct {
	Step       int
	NX, NY, NZ int
	Rho        []float32
	U          []float32 // 3*n+d layout
	Vorticity  []float32
	QCriterion []float32
}

// Emit writes the configured output formats for one frame. Non-strict
// failures are logged and swallowed (spec.md §7); strict-mode failures
// are returned to the caller, who aborts the run.
func (m *Manager) Emit(fr Frame) error {
	if m == nil {
		return nil
	}
	n := fr.NX * fr.NY * fr.NZ
	frame := m.frames
	m.frames++

	if m.WriteCSV {
		rows := make([]Row, n)
		for i := 0; i < n; i++ {
			rows[i] = Row{
				X:            float32(i % fr.NX),
				Y:            float32((i / fr.NX) % fr.NY),
				Z:            float32(i / (fr.NX * fr.NY)),
				Rho:          fr.Rho[i],
				UX:           fr.U[3*i+0],
				UY:           fr.U[3*i+1],
				UZ:           fr.U[3*i+2],
				VorticityMag: valueOrZero(fr.Vorticity, i),
				QCriterion:   valueOrZero(fr.QCriterion, i),
			}
		}
		if err := WriteCSVFrame(m.Dir, frame, rows); err != nil {
			if m.Strict {
				return err
			}
			m.warn("csv frame %d (step %d): %v", frame, fr.Step, err)
		}
	}

	if m.WriteVTK {
		velocity := make([][3]float32, n)
		for i := 0; i < n; i++ {
			velocity[i] = [3]float32{fr.U[3*i+0], fr.U[3*i+1], fr.U[3*i+2]}
		}
		vtkFrame := VTKFrame{
			NX: fr.NX, NY: fr.NY, NZ: fr.NZ,
			Density:    fr.Rho,
			Velocity:   velocity,
			QCriterion: fr.QCriterion,
			Vorticity:  fr.Vorticity,
		}
		if err := WriteVTKFrame(m.Dir, frame, vtkFrame); err != nil {
			if m.Strict {
				return err
			}
			m.warn("vtk frame %d (step %d): %v", frame, fr.Step, err)
		}
	}

	return nil
}

func (m *Manager) warn(format string, args ...any) {
	if m.log != nil {
		m.log.Warn(format, args...)
	}
}

func valueOrZero(s []float32, i int) float32 {
	if s == nil {
		return 0
	}
	return s[i]
}
