// Package solver implements the time-step driver (spec.md §4.7): it owns
// the main loop, submits the fused stream-and-collide kernel per step,
// selects ping-pong buffer roles from the step parity, optionally
// downloads macroscopic fields at a configurable interval, and hands them
// to the export collaborator. Grounded on main.go's Game loop shape
// (fixed per-step update, periodic logging/export, headless vs
// graphical mode) generalized from an ECS tick to a flat node-array step.
package solver

import (
	"fmt"
	"math"
	"time"

	"github.com/pthm-cable/lbmsolver/device"
	"github.com/pthm-cable/lbmsolver/diag"
	"github.com/pthm-cable/lbmsolver/export"
	"github.com/pthm-cable/lbmsolver/field"
	"github.com/pthm-cable/lbmsolver/kernels"
	"github.com/pthm-cable/lbmsolver/lattice"
	"github.com/pthm-cable/lbmsolver/precision"
)

// RunState is the solver's state machine (spec.md §4.7):
// Built -> Initialized -> Running -> Stopped, with Faulted reachable from
// any state on a device error.
type RunState int

const (
	Built RunState = iota
	Initialized
	Running
	Stopped
	Faulted
)

func (s RunState) String() string {
	switch s {
	case Built:
		return "Built"
	case Initialized:
		return "Initialized"
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	case Faulted:
		return "Faulted"
	default:
		return "Unknown"
	}
}

// SSBO binding points, shared by every kernel program (kernels/shaders/*.comp).
const (
	bindingFA    = 0
	bindingFB    = 1
	bindingRho   = 2
	bindingU     = 3
	bindingFlags = 4
)

// Uniform locations used by the stream-and-collide kernel.
const (
	locStep  = 0
	locOmega = 1
)

// Options are the construction parameters of spec.md §6:
// (NX, NY, NZ, model, nu), plus the ambient device/precision/output
// settings this rewrite adds.
type Options struct {
	NX, NY, NZ     int
	Model          lattice.Model
	Viscosity      float64
	Mode           precision.Mode
	WorkgroupSizeX int
	Device         device.Options
	OutputDir      string
	OutputStrict   bool
}

// Solver drives the LBM time-stepping loop end to end.
type Solver struct {
	opts       Options
	descriptor lattice.Descriptor
	omega      float32
	n          int

	ctx       *device.Context
	eqProgram *device.Program
	scProgram *device.Program

	fA, fB   device.DistBuffer
	rhoBuf   *device.FloatBuffer
	uBuf     *device.FloatBuffer
	flagsBuf *device.IntBuffer

	fieldState *field.State
	state      RunState

	step             int
	outputInterval   int
	outputVTK        bool
	outputCSV        bool
	exporter         *export.Manager

	log   *diag.Logger
	timer *diag.StepTimer

	cancelRequested bool
}

// New validates the construction parameters (spec.md §7 Configuration
// errors are fatal at this point), opens the device, compiles both
// kernel programs, and allocates the device buffers. The solver starts
// in state Built: the host field state still needs to be painted and
// uploaded before Initialize().
func New(opts Options, log *diag.Logger) (*Solver, error) {
	if opts.NX <= 0 || opts.NY <= 0 || opts.NZ <= 0 {
		return nil, &ConfigError{Err: fmt.Errorf("grid dimensions must be positive, got (%d,%d,%d)", opts.NX, opts.NY, opts.NZ)}
	}
	if opts.Viscosity <= 0 {
		return nil, &ConfigError{Err: fmt.Errorf("viscosity must be > 0, got %g", opts.Viscosity)}
	}
	descriptor, err := lattice.Get(opts.Model)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	if opts.WorkgroupSizeX <= 0 {
		opts.WorkgroupSizeX = 64
	}
	if log == nil {
		log = diag.New(nil)
	}

	omega := float32(1.0 / (3.0*opts.Viscosity + 0.5))

	devOpts := opts.Device
	devOpts.RequireHalfPrecision = opts.Mode.RequiresHalfExtension()
	ctx, err := device.Open(devOpts)
	if err != nil {
		return nil, err
	}
	log.Info("device opened: vendor=%q renderer=%q", ctx.Vendor(), ctx.Renderer())

	n := opts.NX * opts.NY * opts.NZ

	buildParams := kernels.BuildParams{
		NX: opts.NX, NY: opts.NY, NZ: opts.NZ,
		Model: opts.Model, Mode: opts.Mode, WorkgroupSizeX: opts.WorkgroupSizeX,
	}

	eqSrc, err := kernels.EquilibriumProgramSource(buildParams)
	if err != nil {
		ctx.Close()
		return nil, &ConfigError{Err: err}
	}
	scSrc, err := kernels.StreamCollideProgramSource(buildParams)
	if err != nil {
		ctx.Close()
		return nil, &ConfigError{Err: err}
	}

	eqProgram, err := device.BuildProgram(eqSrc)
	if err != nil {
		ctx.Close()
		return nil, err
	}
	scProgram, err := device.BuildProgram(scSrc)
	if err != nil {
		eqProgram.Unload()
		ctx.Close()
		return nil, err
	}

	var fA, fB device.DistBuffer
	if opts.Mode == precision.FP32 {
		fAf, err := device.NewFloatBuffer(descriptor.Q*n, nil)
		if err != nil {
			return nil, err
		}
		fBf, err := device.NewFloatBuffer(descriptor.Q*n, nil)
		if err != nil {
			return nil, err
		}
		fA, fB = fAf, fBf
	} else {
		fAh, err := device.NewHalfBuffer(descriptor.Q * n)
		if err != nil {
			return nil, err
		}
		fBh, err := device.NewHalfBuffer(descriptor.Q * n)
		if err != nil {
			return nil, err
		}
		fA, fB = fAh, fBh
	}

	rhoBuf, err := device.NewFloatBuffer(n, nil)
	if err != nil {
		return nil, err
	}
	uBuf, err := device.NewFloatBuffer(3*n, nil)
	if err != nil {
		return nil, err
	}
	flagsBuf, err := device.NewIntBuffer(n, nil)
	if err != nil {
		return nil, err
	}

	return &Solver{
		opts:           opts,
		descriptor:     descriptor,
		omega:          omega,
		n:              n,
		ctx:            ctx,
		eqProgram:      eqProgram,
		scProgram:      scProgram,
		fA:             fA,
		fB:             fB,
		rhoBuf:         rhoBuf,
		uBuf:           uBuf,
		flagsBuf:       flagsBuf,
		fieldState:     field.New(opts.NX, opts.NY, opts.NZ),
		state:          Built,
		outputInterval: 1,
		log:            log,
		timer:          diag.NewStepTimer(120),
	}, nil
}

// Omega returns the relaxation parameter derived from the configured
// viscosity (spec.md §6: omega = 1 / (3*nu + 0.5)).
func (s *Solver) Omega() float32 { return s.omega }

// State returns the current point in the solver's lifecycle.
func (s *Solver) State() RunState { return s.state }

// Paint invokes p once per node (spec.md §6), validates the painted
// state (spec.md §4.3 preconditions), and uploads flags/rho/u to the
// device. Must be called while in state Built, before Initialize.
func (s *Solver) Paint(p field.Painter) error {
	if s.state != Built {
		return &ConfigError{Err: fmt.Errorf("Paint must be called in state Built, got %s", s.state)}
	}
	s.fieldState.Paint(p)
	if err := s.fieldState.Validate(s.descriptor.D == 2); err != nil {
		s.state = Faulted
		return err
	}
	return s.upload()
}

func (s *Solver) upload() error {
	if err := s.rhoBuf.Upload(s.fieldState.Rho); err != nil {
		return &device.DeviceError{Op: "upload rho", Err: err}
	}
	if err := s.uBuf.Upload(s.fieldState.U); err != nil {
		return &device.DeviceError{Op: "upload u", Err: err}
	}
	flagsI32 := make([]int32, s.n)
	for i, f := range s.fieldState.Flags {
		flagsI32[i] = int32(f)
	}
	if err := s.flagsBuf.Upload(flagsI32); err != nil {
		return &device.DeviceError{Op: "upload flags", Err: err}
	}
	return nil
}

// Initialize runs the equilibrium-initialization kernel once, filling f_A
// from the already-uploaded rho/u (spec.md §4.3, §4.6). f_B is left
// uninitialized; the ping-pong role selector writes it before it is ever
// read.
func (s *Solver) Initialize() error {
	if s.state != Built {
		return &ConfigError{Err: fmt.Errorf("Initialize must be called in state Built, got %s", s.state)}
	}

	s.fA.Bind(bindingFA)
	s.rhoBuf.Bind(bindingRho)
	s.uBuf.Bind(bindingU)
	s.flagsBuf.Bind(bindingFlags)

	groups := groupCount(s.n, s.opts.WorkgroupSizeX)
	s.eqProgram.Dispatch(groups, 1, 1)

	s.state = Initialized
	return nil
}

// SetOutputVTK toggles VTK export.
func (s *Solver) SetOutputVTK(on bool) { s.outputVTK = on }

// SetOutputCSV toggles CSV export.
func (s *Solver) SetOutputCSV(on bool) { s.outputCSV = on }

// SetOutputInterval sets the number of steps between emitted frames
// (spec.md §6: must be >= 1).
func (s *Solver) SetOutputInterval(steps int) error {
	if steps < 1 {
		return &ConfigError{Err: fmt.Errorf("output interval must be >= 1, got %d", steps)}
	}
	s.outputInterval = steps
	return nil
}

// RequestCancel asks the driver to stop at the next step boundary
// (spec.md §5: "Cancellation is cooperative at the step boundary").
func (s *Solver) RequestCancel() { s.cancelRequested = true }

// Run advances the solver by T steps (spec.md §6 `run(T)`), emitting
// output at step indices that are positive multiples of the configured
// output interval. Any device error moves the solver to Faulted and
// halts the loop; numerical divergence is surfaced as a NumericalError
// without leaving the loop's bookkeeping in an inconsistent state.
func (s *Solver) Run(T int) error {
	if s.state != Initialized && s.state != Running {
		return &ConfigError{Err: fmt.Errorf("Run must be called in state Initialized or Running, got %s", s.state)}
	}
	s.state = Running

	if s.exporter == nil && (s.outputVTK || s.outputCSV) {
		s.exporter = export.NewManager(s.opts.OutputDir, s.outputVTK, s.outputCSV, s.opts.OutputStrict, s.log)
	}

	for i := 0; i < T; i++ {
		if s.cancelRequested {
			s.state = Stopped
			return nil
		}

		start := time.Now()
		if err := s.dispatchStep(); err != nil {
			s.state = Faulted
			return err
		}
		s.timer.Record(time.Since(start))
		s.step++

		if s.outputInterval > 0 && s.step%s.outputInterval == 0 && (s.outputVTK || s.outputCSV) {
			if err := s.emit(); err != nil {
				s.state = Faulted
				return err
			}
		}
	}

	return nil
}

func (s *Solver) dispatchStep() error {
	s.fA.Bind(bindingFA)
	s.fB.Bind(bindingFB)
	s.rhoBuf.Bind(bindingRho)
	s.uBuf.Bind(bindingU)
	s.flagsBuf.Bind(bindingFlags)

	s.scProgram.SetUniformInt(locStep, int32(s.step))
	s.scProgram.SetUniformFloat(locOmega, s.omega)

	groups := groupCount(s.n, s.opts.WorkgroupSizeX)
	s.scProgram.Dispatch(groups, 1, 1)
	return nil
}

// emit synchronizes, downloads rho/u, computes derived fields, checks
// for divergence, and hands the frame to the export collaborator
// (spec.md §4.7, §7).
func (s *Solver) emit() error {
	if err := s.rhoBuf.Download(s.fieldState.Rho); err != nil {
		return &device.DeviceError{Op: "download rho", Err: err}
	}
	if err := s.uBuf.Download(s.fieldState.U); err != nil {
		return &device.DeviceError{Op: "download u", Err: err}
	}

	if node, fld, ok := s.firstDivergentNode(); ok {
		return &NumericalError{Step: s.step, Node: node, Field: fld}
	}

	derived := ComputeDerived(s.fieldState)

	frame := export.Frame{
		Step: s.step,
		NX:   s.opts.NX, NY: s.opts.NY, NZ: s.opts.NZ,
		Rho:        s.fieldState.Rho,
		U:          s.fieldState.U,
		Vorticity:  derived.VorticityMag,
		QCriterion: derived.QCriterion,
	}
	return s.exporter.Emit(frame)
}

// firstDivergentNode scans rho/u for the first NaN/Inf value (spec.md §7:
// "divergence ... is detected on scheduled host downloads").
func (s *Solver) firstDivergentNode() (node int, fld string, found bool) {
	for i, v := range s.fieldState.Rho {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return i, "rho", true
		}
	}
	for i, v := range s.fieldState.U {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return i / 3, "u", true
		}
	}
	return 0, "", false
}

// Sync downloads the current rho/u fields from the device on demand,
// outside the regular output cadence (spec.md §5's "explicit
// synchronization before downloading macroscopic fields").
func (s *Solver) Sync() error {
	if err := s.rhoBuf.Download(s.fieldState.Rho); err != nil {
		return &device.DeviceError{Op: "download rho", Err: err}
	}
	if err := s.uBuf.Download(s.fieldState.U); err != nil {
		return &device.DeviceError{Op: "download u", Err: err}
	}
	return nil
}

// Field returns the host-side mirror of the macroscopic fields, valid
// after the most recent Sync or emitted frame.
func (s *Solver) Field() *field.State { return s.fieldState }

// Step returns the number of steps executed so far.
func (s *Solver) Step() int { return s.step }

// Close releases all device resources deterministically (spec.md §4.7).
func (s *Solver) Close() {
	s.fA.Unload()
	s.fB.Unload()
	s.rhoBuf.Unload()
	s.uBuf.Unload()
	s.flagsBuf.Unload()
	s.eqProgram.Unload()
	s.scProgram.Unload()
	s.ctx.Close()
	s.state = Stopped
}

func groupCount(n, workgroupSize int) uint32 {
	return uint32((n + workgroupSize - 1) / workgroupSize)
}
