// Package diag provides leveled, timestamped logging for the solver,
// matching the teacher idiom of a plain io.Writer sink (main.go's
// -logfile flag) plus structured log/slog records for performance data
// (telemetry/perf.go).
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger writes leveled messages to an underlying writer (stdout by
// default, or a file when lbmsolver's -headless-log is set).
type Logger struct {
	w io.Writer
}

// New creates a Logger writing to w. A nil w defaults to os.Stdout.
func New(w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}
	return &Logger{w: w}
}

func (l *Logger) log(level, format string, args ...any) {
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.w, "[%s] %s %s\n", ts, level, fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) { l.log("INFO", format, args...) }

// Warn logs a recoverable problem (spec.md §7 I/O errors that do not abort the run).
func (l *Logger) Warn(format string, args ...any) { l.log("WARN", format, args...) }

// Fatal logs a fatal condition and exits the process (spec.md §7
// Configuration/Device errors, which abort).
func (l *Logger) Fatal(format string, args ...any) {
	l.log("FATAL", format, args...)
	os.Exit(1)
}

// StepTimer accumulates per-step kernel timing over a rolling window, the
// LBM-core analogue of telemetry.PerfCollector: instead of ecosystem
// phases (feeding, energy, reproduction, ...) it records a single
// wall-clock duration per time step.
type StepTimer struct {
	windowSize int
	samples    []time.Duration
	writeIndex int
	count      int
}

// NewStepTimer creates a step timer averaging over windowSize samples.
func NewStepTimer(windowSize int) *StepTimer {
	if windowSize < 1 {
		windowSize = 120
	}
	return &StepTimer{windowSize: windowSize, samples: make([]time.Duration, windowSize)}
}

// Record adds one step's wall-clock duration to the window.
func (s *StepTimer) Record(d time.Duration) {
	s.samples[s.writeIndex] = d
	s.writeIndex = (s.writeIndex + 1) % s.windowSize
	if s.count < s.windowSize {
		s.count++
	}
}

// AvgStepsPerSecond returns the throughput over the current window.
func (s *StepTimer) AvgStepsPerSecond() float64 {
	if s.count == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < s.count; i++ {
		total += s.samples[i]
	}
	avg := total / time.Duration(s.count)
	if avg == 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// LogValue implements slog.LogValuer for structured throughput logging.
func (s *StepTimer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("steps_per_sec", s.AvgStepsPerSecond()),
		slog.Int("window_samples", s.count),
	)
}
