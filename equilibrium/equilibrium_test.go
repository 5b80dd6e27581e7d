package equilibrium

import (
	"math"
	"testing"

	"github.com/pthm-cable/lbmsolver/lattice"
)

// TestMassAndMomentumConsistency covers spec.md §8 P2: sum_q f_eq_q = rho
// and sum_q c[q]*f_eq_q = rho*u for all lattices at small |u|.
func TestMassAndMomentumConsistency(t *testing.T) {
	const rho = 1.3
	velocities := [][3]float64{
		{0, 0, 0},
		{0.1, 0, 0},
		{0.05, -0.07, 0.02},
		{0.2, 0.1, -0.1},
	}

	for _, m := range []lattice.Model{lattice.D2Q9, lattice.D3Q7, lattice.D3Q15, lattice.D3Q19, lattice.D3Q27} {
		d := lattice.MustGet(m)
		for _, u := range velocities {
			if d.D == 2 {
				u[2] = 0
			}
			feq := All(d, rho, u)

			var sum float64
			var mom [3]float64
			for q, f := range feq {
				sum += f
				for k := 0; k < 3; k++ {
					mom[k] += float64(d.C[q][k]) * f
				}
			}

			if math.Abs(sum-rho) > 1e-9*rho {
				t.Errorf("%s u=%v: sum(f_eq)=%g, want %g", m, u, sum, rho)
			}
			for k := 0; k < 3; k++ {
				want := rho * u[k]
				if math.Abs(mom[k]-want) > 1e-9*(rho+1) {
					t.Errorf("%s u=%v: momentum[%d]=%g, want %g", m, u, k, mom[k], want)
				}
			}
		}
	}
}
