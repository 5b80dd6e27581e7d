// Package precision defines the three coexisting kernel precision modes
// of the LBM core (spec.md §3, §4.5): FP32, FP16S (FP16 storage / FP32
// compute), and FP16C (full FP16).
package precision

import "fmt"

// Mode selects the storage type of the distribution buffers and the
// arithmetic precision used inside the fused stream-and-collide kernel.
type Mode string

const (
	// FP32 stores and computes populations in float32.
	FP32 Mode = "FP32"
	// FP16S stores populations in float16 but computes in float32.
	FP16S Mode = "FP16S"
	// FP16C stores and computes populations in float16, except moment
	// accumulation which always happens in float32 (spec.md §4.5, §9).
	FP16C Mode = "FP16C"
)

// Parse validates a mode string and returns the corresponding Mode.
func Parse(s string) (Mode, error) {
	switch Mode(s) {
	case FP32, FP16S, FP16C:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("precision: unknown mode %q", s)
	}
}

// RequiresHalfExtension reports whether mode needs the device's
// half-precision storage extension enabled (spec.md §4.2).
func (m Mode) RequiresHalfExtension() bool {
	return m == FP16S || m == FP16C
}

// StorageBytesPerElement returns the per-population storage width.
func (m Mode) StorageBytesPerElement() int {
	if m == FP32 {
		return 4
	}
	return 2
}
