package config

import "testing"

func TestLoadEmbeddedDefaultsAreValid(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.NX <= 0 || cfg.Grid.NY <= 0 || cfg.Grid.NZ <= 0 {
		t.Fatalf("expected positive default grid, got %+v", cfg.Grid)
	}
	if cfg.Derived.N != cfg.Grid.NX*cfg.Grid.NY*cfg.Grid.NZ {
		t.Errorf("Derived.N = %d, want %d", cfg.Derived.N, cfg.Grid.NX*cfg.Grid.NY*cfg.Grid.NZ)
	}
}

func TestComputeDerivedOmega(t *testing.T) {
	c := &Config{Physics: PhysicsConfig{Viscosity: 0.1}}
	c.computeDerived()
	want := float32(1.0 / (3.0*0.1 + 0.5))
	if c.Derived.Omega != want {
		t.Errorf("Omega = %g, want %g", c.Derived.Omega, want)
	}
}

func TestValidateRejectsUnknownModel(t *testing.T) {
	c := &Config{
		Grid:      GridConfig{NX: 1, NY: 1, NZ: 1, Model: "D9Q99"},
		Physics:   PhysicsConfig{Viscosity: 0.1},
		Precision: PrecisionConfig{Mode: "FP32"},
		Output:    OutputConfig{Interval: 1},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for unknown lattice model")
	}
}

func TestValidateRejectsNonPositiveViscosity(t *testing.T) {
	c := &Config{
		Grid:      GridConfig{NX: 1, NY: 1, NZ: 1, Model: "D2Q9"},
		Physics:   PhysicsConfig{Viscosity: 0},
		Precision: PrecisionConfig{Mode: "FP32"},
		Output:    OutputConfig{Interval: 1},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for non-positive viscosity")
	}
}
