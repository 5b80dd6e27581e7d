// Package config provides configuration loading and access for the solver.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all solver configuration parameters.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Precision PrecisionConfig `yaml:"precision"`
	GPU       GPUConfig       `yaml:"gpu"`
	Output    OutputConfig    `yaml:"output"`
	Scenario  ScenarioConfig  `yaml:"scenario"`

	// Derived values computed after loading.
	Derived DerivedConfig `yaml:"-"`
}

// GridConfig holds lattice grid dimensions and the selected model.
type GridConfig struct {
	NX    int    `yaml:"nx"`
	NY    int    `yaml:"ny"`
	NZ    int    `yaml:"nz"`
	Model string `yaml:"model"` // one of D2Q9, D3Q7, D3Q15, D3Q19, D3Q27
}

// PhysicsConfig holds the physical parameters of the run.
type PhysicsConfig struct {
	Viscosity float64 `yaml:"viscosity"` // kinematic viscosity nu
}

// PrecisionConfig selects the kernel precision mode.
type PrecisionConfig struct {
	Mode string `yaml:"mode"` // FP32, FP16S, FP16C
}

// GPUConfig holds device-selection preferences.
type GPUConfig struct {
	RequireVendor  string `yaml:"require_vendor"`  // substring match, empty = any
	WindowHidden   bool   `yaml:"window_hidden"`   // run with a hidden GL context (headless compute)
	WorkgroupSizeX int    `yaml:"workgroup_size_x"`
}

// OutputConfig holds export toggles and cadence.
type OutputConfig struct {
	VTK      bool   `yaml:"vtk"`
	CSV      bool   `yaml:"csv"`
	Interval int    `yaml:"interval"` // steps between emitted frames
	Dir      string `yaml:"dir"`
	Strict   bool   `yaml:"strict"` // abort the run on an I/O error instead of logging and continuing
}

// ScenarioConfig selects and parameterizes the example scenario to paint.
type ScenarioConfig struct {
	Name string `yaml:"name"` // lid_cavity, poiseuille, taylor_green, von_karman
}

// DerivedConfig holds values computed once after loading.
type DerivedConfig struct {
	N     int     // NX*NY*NZ
	Omega float32 // 1 / (3*nu + 0.5)
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults.
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user overrides if provided.
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks configuration-level invariants before construction.
func (c *Config) Validate() error {
	if c.Grid.NX <= 0 || c.Grid.NY <= 0 || c.Grid.NZ <= 0 {
		return fmt.Errorf("config: grid dimensions must be positive, got (%d,%d,%d)", c.Grid.NX, c.Grid.NY, c.Grid.NZ)
	}
	if c.Physics.Viscosity <= 0 {
		return fmt.Errorf("config: viscosity must be > 0, got %g", c.Physics.Viscosity)
	}
	switch c.Grid.Model {
	case "D2Q9", "D3Q7", "D3Q15", "D3Q19", "D3Q27":
	default:
		return fmt.Errorf("config: unknown lattice model %q", c.Grid.Model)
	}
	switch c.Precision.Mode {
	case "FP32", "FP16S", "FP16C":
	default:
		return fmt.Errorf("config: unknown precision mode %q", c.Precision.Mode)
	}
	if c.Output.Interval < 1 {
		return fmt.Errorf("config: output interval must be >= 1, got %d", c.Output.Interval)
	}
	return nil
}

// computeDerived calculates values derived from the loaded config.
func (c *Config) computeDerived() {
	c.Derived.N = c.Grid.NX * c.Grid.NY * c.Grid.NZ
	c.Derived.Omega = float32(1.0 / (3.0*c.Physics.Viscosity + 0.5))
}

// WriteYAML saves the current configuration as YAML to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
