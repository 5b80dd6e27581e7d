package lattice

// newD3Q15 builds the D3Q15 descriptor: rest, 6 axis-aligned, 8 body-diagonals.
func newD3Q15() Descriptor {
	return Descriptor{
		Model: D3Q15,
		D:     3,
		Q:     15,
		C: [][3]int32{
			{0, 0, 0},
			{1, 0, 0}, {-1, 0, 0},
			{0, 1, 0}, {0, -1, 0},
			{0, 0, 1}, {0, 0, -1},
			{1, 1, 1}, {-1, -1, -1},
			{1, 1, -1}, {-1, -1, 1},
			{1, -1, 1}, {-1, 1, -1},
			{1, -1, -1}, {-1, 1, 1},
		},
		W: []float64{
			2.0 / 9.0,
			1.0 / 9.0, 1.0 / 9.0, 1.0 / 9.0, 1.0 / 9.0, 1.0 / 9.0, 1.0 / 9.0,
			1.0 / 72.0, 1.0 / 72.0, 1.0 / 72.0, 1.0 / 72.0, 1.0 / 72.0, 1.0 / 72.0, 1.0 / 72.0, 1.0 / 72.0,
		},
		Opposite: []int{0, 2, 1, 4, 3, 6, 5, 8, 7, 10, 9, 12, 11, 14, 13},
	}
}
