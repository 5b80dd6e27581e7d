// Package field holds the host-side mirrors of per-node density,
// velocity, and flags (spec.md §4.3), and the Painter interface scenarios
// use to populate them.
package field

import "fmt"

// Flag is a per-node byte flag (spec.md §3, §6). The device-visible
// integer values are defined in package kernels and must match these.
type Flag uint8

const (
	Fluid Flag = 0
	Solid Flag = 1
	EQ    Flag = 2
)

// State is the host-side mirror of a solver's macroscopic arrays. It is
// allocated once at construction and lives for the whole run (spec.md §3
// "Lifecycles").
type State struct {
	NX, NY, NZ int
	Flags      []Flag
	Rho        []float32
	U          []float32 // 3*n + d layout
}

// New allocates a zero-valued field state for a grid of the given shape.
func New(nx, ny, nz int) *State {
	n := nx * ny * nz
	return &State{
		NX: nx, NY: ny, NZ: nz,
		Flags: make([]Flag, n),
		Rho:   make([]float32, n),
		U:     make([]float32, 3*n),
	}
}

// N returns the total node count.
func (s *State) N() int { return s.NX * s.NY * s.NZ }

// Index returns the linear node index for (x, y, z), matching the device
// layout n = z*NX*NY + y*NX + x (spec.md §3).
func (s *State) Index(x, y, z int) int {
	return z*s.NX*s.NY + y*s.NX + x
}

// Painter populates flags/rho/u for a single node. The solver guarantees
// it is invoked exactly once per node, in unspecified order, before
// device upload (spec.md §6).
type Painter func(s *State, x, y, z, n int)

// Paint invokes p once per node in row-major (x fastest, then y, then z)
// order. The order is unspecified by spec.md, so any traversal order is
// a conforming implementation; row-major matches the host arrays' own
// layout and is the most cache-friendly choice.
func (s *State) Paint(p Painter) {
	for z := 0; z < s.NZ; z++ {
		for y := 0; y < s.NY; y++ {
			for x := 0; x < s.NX; x++ {
				n := s.Index(x, y, z)
				p(s, x, y, z, n)
			}
		}
	}
}

// Validate checks the preconditions spec.md §4.3 requires before device
// upload: flags are one of the three known values, rho > 0 off SOLID
// nodes, 2D lattices carry no z-velocity, and this is a ConfigurationError
// per spec.md §7 (reported at construction / before the first launch).
func (s *State) Validate(is2D bool) error {
	n := s.N()
	for i := 0; i < n; i++ {
		switch s.Flags[i] {
		case Fluid, Solid, EQ:
		default:
			return &ConfigError{Err: fmt.Errorf("node %d: invalid flag %d", i, s.Flags[i])}
		}
		if s.Flags[i] != Solid && s.Rho[i] <= 0 {
			return &ConfigError{Err: fmt.Errorf("node %d: rho must be > 0 for non-SOLID nodes, got %g", i, s.Rho[i])}
		}
		if is2D && s.U[3*i+2] != 0 {
			return &ConfigError{Err: fmt.Errorf("node %d: 2D model requires u.z == 0, got %g", i, s.U[3*i+2])}
		}
	}
	return nil
}

// ConfigError wraps a configuration-level failure detected while
// validating painted field state (spec.md §7).
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("field: %v", e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }
