package lattice

// newD3Q27 builds the D3Q27 descriptor: rest, 6 axis-aligned, 12
// edge-diagonals, 8 corner (body) diagonals.
func newD3Q27() Descriptor {
	return Descriptor{
		Model: D3Q27,
		D:     3,
		Q:     27,
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
			{1, 1, 1}, {-1, -1, -1},
			{1, 1, -1}, {-1, -1, 1},
			{1, -1, 1}, {-1, 1, -1},
			{1, -1, -1}, {-1, 1, 1},
		},
		W: []float64{
			8.0 / 27.0,
			2.0 / 27.0, 2.0 / 27.0, 2.0 / 27.0, 2.0 / 27.0, 2.0 / 27.0, 2.0 / 27.0,
			1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0,
			1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0,
			1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0,
			1.0 / 216.0, 1.0 / 216.0, 1.0 / 216.0, 1.0 / 216.0,
			1.0 / 216.0, 1.0 / 216.0, 1.0 / 216.0, 1.0 / 216.0,
		},
		Opposite: []int{
			0, 2, 1, 4, 3, 6, 5, 8, 7, 10, 9, 12, 11, 14, 13, 16, 15, 18, 17,
			20, 19, 22, 21, 24, 23, 26, 25,
		},
	}
}
