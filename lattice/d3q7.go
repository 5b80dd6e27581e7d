package lattice

// newD3Q7 builds the D3Q7 descriptor: rest, 6 axis-aligned.
func newD3Q7() Descriptor {
	return Descriptor{
		Model: D3Q7,
		D:     3,
		Q:     7,
		C: [][3]int32{
			{0, 0, 0},
			{1, 0, 0}, {-1, 0, 0},
			{0, 1, 0}, {0, -1, 0},
			{0, 0, 1}, {0, 0, -1},
		},
		W: []float64{
			1.0 / 4.0,
			1.0 / 8.0, 1.0 / 8.0, 1.0 / 8.0, 1.0 / 8.0, 1.0 / 8.0, 1.0 / 8.0,
		},
		Opposite: []int{0, 2, 1, 4, 3, 6, 5},
	}
}
