package solver

import (
	"math"
	"testing"

	"github.com/pthm-cable/lbmsolver/field"
)

func TestComputeDerivedUniformFlowIsIrrotational(t *testing.T) {
	f := field.New(6, 6, 1)
	for i := range f.Rho {
		f.Rho[i] = 1
		f.U[3*i+0] = 0.05
		f.U[3*i+1] = 0
		f.U[3*i+2] = 0
	}

	derived := ComputeDerived(f)
	for i, v := range derived.VorticityMag {
		if math.Abs(float64(v)) > 1e-6 {
			t.Fatalf("node %d: vorticity magnitude = %g, want ~0 for uniform flow", i, v)
		}
	}
	for i, v := range derived.QCriterion {
		if math.Abs(float64(v)) > 1e-6 {
			t.Fatalf("node %d: Q-criterion = %g, want ~0 for uniform flow", i, v)
		}
	}
}

func TestComputeDerivedDetectsShear(t *testing.T) {
	f := field.New(8, 8, 1)
	for y := 0; y < f.NY; y++ {
		for x := 0; x < f.NX; x++ {
			n := f.Index(x, y, 0)
			f.Rho[n] = 1
			f.U[3*n+0] = float32(y) * 0.01
		}
	}

	derived := ComputeDerived(f)
	n := f.Index(4, 4, 0)
	if derived.VorticityMag[n] <= 0 {
		t.Fatalf("expected nonzero vorticity magnitude in a shear flow, got %g", derived.VorticityMag[n])
	}
}
