package field

import "testing"

func TestIndexMatchesLayout(t *testing.T) {
	s := New(4, 3, 2)
	got := s.Index(1, 2, 1)
	want := 1*4*3 + 2*4 + 1
	if got != want {
		t.Errorf("Index(1,2,1) = %d, want %d", got, want)
	}
}

func TestPaintVisitsEveryNodeOnce(t *testing.T) {
	s := New(3, 3, 1)
	visits := make([]int, s.N())
	s.Paint(func(st *State, x, y, z, n int) {
		visits[n]++
		st.Flags[n] = Fluid
		st.Rho[n] = 1
	})
	for i, c := range visits {
		if c != 1 {
			t.Errorf("node %d visited %d times, want 1", i, c)
		}
	}
}

func TestValidateRejectsNonPositiveDensity(t *testing.T) {
	s := New(2, 2, 1)
	s.Paint(func(st *State, x, y, z, n int) {
		st.Flags[n] = Fluid
		st.Rho[n] = 0
	})
	if err := s.Validate(true); err == nil {
		t.Fatal("expected error for rho <= 0 on fluid node")
	}
}

func TestValidateRejects2DNonZeroUZ(t *testing.T) {
	s := New(2, 2, 1)
	s.Paint(func(st *State, x, y, z, n int) {
		st.Flags[n] = Fluid
		st.Rho[n] = 1
	})
	s.U[2] = 0.1
	if err := s.Validate(true); err == nil {
		t.Fatal("expected error for nonzero u.z on a 2D model")
	}
}

func TestValidateAllowsSolidWithZeroDensity(t *testing.T) {
	s := New(2, 2, 1)
	s.Paint(func(st *State, x, y, z, n int) {
		st.Flags[n] = Solid
		st.Rho[n] = 0
	})
	if err := s.Validate(true); err != nil {
		t.Errorf("unexpected error for all-SOLID field: %v", err)
	}
}
