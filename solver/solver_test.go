package solver

import (
	"testing"

	"github.com/pthm-cable/lbmsolver/lattice"
)

func TestNewRejectsNonPositiveGrid(t *testing.T) {
	_, err := New(Options{NX: 0, NY: 4, NZ: 1, Model: lattice.D2Q9, Viscosity: 0.1}, nil)
	if err == nil {
		t.Fatal("expected error for NX == 0")
	}
	var cfgErr *ConfigError
	if !asConfigError(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
}

func TestNewRejectsNonPositiveViscosity(t *testing.T) {
	_, err := New(Options{NX: 4, NY: 4, NZ: 1, Model: lattice.D2Q9, Viscosity: 0}, nil)
	if err == nil {
		t.Fatal("expected error for viscosity == 0")
	}
}

func TestNewRejectsUnknownModel(t *testing.T) {
	_, err := New(Options{NX: 4, NY: 4, NZ: 1, Model: lattice.Model("D9Q99"), Viscosity: 0.1}, nil)
	if err == nil {
		t.Fatal("expected error for unknown lattice model")
	}
}

func TestRunStateString(t *testing.T) {
	cases := map[RunState]string{
		Built:       "Built",
		Initialized: "Initialized",
		Running:     "Running",
		Stopped:     "Stopped",
		Faulted:     "Faulted",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("RunState(%d).String() = %q, want %q", state, got, want)
		}
	}
}

func TestGroupCountRoundsUp(t *testing.T) {
	cases := []struct{ n, wg int; want uint32 }{
		{128, 64, 2},
		{129, 64, 3},
		{1, 64, 1},
		{64, 64, 1},
	}
	for _, c := range cases {
		if got := groupCount(c.n, c.wg); got != c.want {
			t.Errorf("groupCount(%d, %d) = %d, want %d", c.n, c.wg, got, c.want)
		}
	}
}

// asConfigError is a small helper so the test doesn't need to repeat the
// type-assertion boilerplate at every call site.
func asConfigError(err error, target **ConfigError) bool {
	ce, ok := err.(*ConfigError)
	if !ok {
		return false
	}
	*target = ce
	return true
}
