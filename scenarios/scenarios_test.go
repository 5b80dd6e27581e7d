package scenarios

import (
	"testing"

	"github.com/pthm-cable/lbmsolver/field"
)

func TestGetKnownScenariosProduceValidFields(t *testing.T) {
	for _, name := range []string{Quiescent, Poiseuille, LidCavity, VonKarman, TaylorGreen} {
		spec, err := Get(name, 1)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		s := field.New(spec.NX, spec.NY, spec.NZ)
		s.Paint(spec.Painter)
		if err := s.Validate(spec.Model == "D2Q9"); err != nil {
			t.Errorf("%s: painted field failed validation: %v", name, err)
		}
	}
}

func TestGetUnknownScenario(t *testing.T) {
	if _, err := Get("not_a_scenario", 1); err == nil {
		t.Fatal("expected error for unknown scenario name")
	}
}

func TestPoiseuilleWallsAreSolid(t *testing.T) {
	spec, err := Get(Poiseuille, 1)
	if err != nil {
		t.Fatal(err)
	}
	s := field.New(spec.NX, spec.NY, spec.NZ)
	s.Paint(spec.Painter)

	for x := 0; x < spec.NX; x++ {
		top := s.Index(x, 0, 0)
		bottom := s.Index(x, spec.NY-1, 0)
		if s.Flags[top] != field.Solid || s.Flags[bottom] != field.Solid {
			t.Fatalf("expected top/bottom rows SOLID at x=%d", x)
		}
	}
}

func TestLidCavityLidIsEQWithDrivenVelocity(t *testing.T) {
	spec, err := Get(LidCavity, 1)
	if err != nil {
		t.Fatal(err)
	}
	s := field.New(spec.NX, spec.NY, spec.NZ)
	s.Paint(spec.Painter)

	for x := 0; x < spec.NX; x++ {
		n := s.Index(x, 0, 0)
		if s.Flags[n] != field.EQ {
			t.Fatalf("expected lid row to be FLAG_EQ at x=%d", x)
		}
		if s.U[3*n+0] <= 0 {
			t.Fatalf("expected positive lid velocity at x=%d, got %g", x, s.U[3*n+0])
		}
	}
}
