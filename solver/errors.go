package solver

import "fmt"

// ConfigError mirrors field.ConfigError for solver-construction-time
// configuration problems (spec.md §7: unknown lattice model, non-positive
// grid, nu <= 0).
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("solver: %v", e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }

// NumericalError reports divergence (NaN/Inf in rho or u) detected on a
// scheduled host download (spec.md §7). It carries the step index and the
// offending node's linear index n = z*NX*NY + y*NX + x; the (x, y, z)
// coordinates are not broken out.
type NumericalError struct {
	Step  int
	Node  int
	Field string // "rho" or "u"
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("solver: divergence detected in %s at node %d, step %d", e.Field, e.Node, e.Step)
}
