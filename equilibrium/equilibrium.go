// Package equilibrium provides a host-side (float64) mirror of the
// equilibrium distribution function used inside the device kernels
// (spec.md §4.4). It exists for property testing (spec.md §8 P2) and for
// host-side sanity checks; the GPU kernels in package kernels implement
// the same formula independently in GLSL.
package equilibrium

import "github.com/pthm-cable/lbmsolver/lattice"

// F computes f_eq_q(rho, u) = rho * w[q] * (1 + 3*(c.u) + 4.5*(c.u)^2 - 1.5*(u.u)).
func F(d lattice.Descriptor, q int, rho float64, u [3]float64) float64 {
	c := d.C[q]
	cu := float64(c[0])*u[0] + float64(c[1])*u[1] + float64(c[2])*u[2]
	uu := u[0]*u[0] + u[1]*u[1] + u[2]*u[2]
	return rho * d.W[q] * (1 + 3*cu + 4.5*cu*cu - 1.5*uu)
}

// All computes f_eq_q for every q of the descriptor.
func All(d lattice.Descriptor, rho float64, u [3]float64) []float64 {
	out := make([]float64, d.Q)
	for q := range out {
		out[q] = F(d, q, rho, u)
	}
	return out
}
