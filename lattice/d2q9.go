package lattice

// newD2Q9 builds the D2Q9 descriptor: rest, 4 axis-aligned, 4 diagonals.
func newD2Q9() Descriptor {
	return Descriptor{
		Model: D2Q9,
		D:     2,
		Q:     9,
		C: [][3]int32{
			{0, 0, 0},
			{1, 0, 0}, {-1, 0, 0},
			{0, 1, 0}, {0, -1, 0},
			{1, 1, 0}, {-1, -1, 0},
			{1, -1, 0}, {-1, 1, 0},
		},
		W: []float64{
			4.0 / 9.0,
			1.0 / 9.0, 1.0 / 9.0, 1.0 / 9.0, 1.0 / 9.0,
			1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0,
		},
		Opposite: []int{0, 2, 1, 4, 3, 6, 5, 8, 7},
	}
}
