package lattice

// newD3Q19 builds the D3Q19 descriptor: rest, 6 axis-aligned, 12 edge-diagonals.
func newD3Q19() Descriptor {
	return Descriptor{
		Model: D3Q19,
		D:     3,
		Q:     19,
		C: [][3]int32{
			{0, 0, 0},
			{1, 0, 0}, {-1, 0, 0},
			{0, 1, 0}, {0, -1, 0},
			{0, 0, 1}, {0, 0, -1},
			{1, 1, 0}, {-1, -1, 0},
			{1, -1, 0}, {-1, 1, 0},
			{1, 0, 1}, {-1, 0, -1},
			{1, 0, -1}, {-1, 0, 1},
			{0, 1, 1}, {0, -1, -1},
			{0, 1, -1}, {0, -1, 1},
		},
		W: []float64{
			1.0 / 3.0,
			1.0 / 18.0, 1.0 / 18.0, 1.0 / 18.0, 1.0 / 18.0, 1.0 / 18.0, 1.0 / 18.0,
			1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0,
			1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0,
			1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0,
		},
		Opposite: []int{0, 2, 1, 4, 3, 6, 5, 8, 7, 10, 9, 12, 11, 14, 13, 16, 15, 18, 17},
	}
}
