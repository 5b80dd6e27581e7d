package lattice

import "testing"

// TestAllModelsValidate covers spec.md §8 P1: opposite[opposite[q]] = q,
// c[q] + c[opposite[q]] = 0, and sum(w) = 1 for every supported lattice.
func TestAllModelsValidate(t *testing.T) {
	for _, m := range []Model{D2Q9, D3Q7, D3Q15, D3Q19, D3Q27} {
		d, err := Get(m)
		if err != nil {
			t.Fatalf("Get(%s): %v", m, err)
		}
		if err := d.Validate(); err != nil {
			t.Errorf("%s: %v", m, err)
		}
	}
}

func TestGetUnknownModel(t *testing.T) {
	if _, err := Get("D4Q99"); err == nil {
		t.Fatal("expected error for unknown model")
	}
}

func TestDimensionsAndPopulationCounts(t *testing.T) {
	cases := []struct {
		m    Model
		d, q int
	}{
		{D2Q9, 2, 9},
		{D3Q7, 3, 7},
		{D3Q15, 3, 15},
		{D3Q19, 3, 19},
		{D3Q27, 3, 27},
	}
	for _, c := range cases {
		desc := MustGet(c.m)
		if desc.D != c.d || desc.Q != c.q {
			t.Errorf("%s: got D=%d Q=%d, want D=%d Q=%d", c.m, desc.D, desc.Q, c.d, c.q)
		}
	}
}
