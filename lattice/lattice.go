// Package lattice provides the compile-time-selected descriptor tables for
// the supported LBM velocity sets: D2Q9, D3Q7, D3Q15, D3Q19, D3Q27.
package lattice

import "fmt"

// Model identifies a supported lattice velocity set.
type Model string

const (
	D2Q9  Model = "D2Q9"
	D3Q7  Model = "D3Q7"
	D3Q15 Model = "D3Q15"
	D3Q19 Model = "D3Q19"
	D3Q27 Model = "D3Q27"
)

// Descriptor holds the constant tables for one lattice model.
type Descriptor struct {
	Model    Model
	D        int // spatial dimension, 2 or 3
	Q        int // population count
	C        [][3]int32
	W        []float64
	Opposite []int
}

// Get returns the descriptor for model, or an error if model is unknown.
func Get(m Model) (Descriptor, error) {
	d, ok := descriptors[m]
	if !ok {
		return Descriptor{}, fmt.Errorf("lattice: unknown model %q", m)
	}
	return d, nil
}

// MustGet is like Get but panics on an unknown model; used where the model
// has already been validated (e.g. after config.Validate).
func MustGet(m Model) Descriptor {
	d, err := Get(m)
	if err != nil {
		panic(err)
	}
	return d
}

var descriptors = map[Model]Descriptor{
	D2Q9:  newD2Q9(),
	D3Q7:  newD3Q7(),
	D3Q15: newD3Q15(),
	D3Q19: newD3Q19(),
	D3Q27: newD3Q27(),
}

// Validate checks the pairing and normalization invariants spec.md §4.1
// and §8 P1 require of every descriptor: for every q, opposite[opposite[q]]
// = q, c[opposite[q]] = -c[q], w[q] = w[opposite[q]], and sum(w) == 1.
// Called once at package init via init() below, and exposed so tests can
// re-run it explicitly.
func (d Descriptor) Validate() error {
	if len(d.C) != d.Q || len(d.W) != d.Q || len(d.Opposite) != d.Q {
		return fmt.Errorf("lattice: %s table length mismatch (Q=%d, |C|=%d, |W|=%d, |Opp|=%d)",
			d.Model, d.Q, len(d.C), len(d.W), len(d.Opposite))
	}
	if d.C[0] != [3]int32{0, 0, 0} || d.Opposite[0] != 0 {
		return fmt.Errorf("lattice: %s rest direction must be q=0 with c=(0,0,0) and opposite=0", d.Model)
	}
	var wsum float64
	for q := 0; q < d.Q; q++ {
		wsum += d.W[q]
		opp := d.Opposite[q]
		if d.Opposite[opp] != q {
			return fmt.Errorf("lattice: %s opposite[opposite[%d]] != %d", d.Model, q, q)
		}
		cq, copp := d.C[q], d.C[opp]
		if cq[0] != -copp[0] || cq[1] != -copp[1] || cq[2] != -copp[2] {
			return fmt.Errorf("lattice: %s c[%d] does not negate c[opposite[%d]]", d.Model, q, q)
		}
		if d.W[q] != d.W[opp] {
			return fmt.Errorf("lattice: %s w[%d] != w[opposite[%d]]", d.Model, q, q)
		}
	}
	if diff := wsum - 1.0; diff > 1e-9 || diff < -1e-9 {
		return fmt.Errorf("lattice: %s weights sum to %g, want 1", d.Model, wsum)
	}
	return nil
}

func init() {
	for _, d := range descriptors {
		if err := d.Validate(); err != nil {
			panic(err)
		}
	}
}
