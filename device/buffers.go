package device

import (
	"fmt"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// usage hints mirrored from rlgl's buffer-usage enum (GL_DYNAMIC_COPY):
// these buffers are written by the device and periodically read back by
// the host, so "dynamic copy" is the correct hint for all of them.
const rlDynamicCopy int32 = 0x88EA

// DistBuffer is the common interface over FloatBuffer (FP32 mode) and
// HalfBuffer (FP16S/FP16C modes) so the solver can bind either kind of
// distribution buffer to an SSBO binding point without branching on
// precision mode at every call site.
type DistBuffer interface {
	Bind(bindingIndex uint32)
	Unload()
}

// FloatBuffer is a device-resident array of float32 scalars (used for
// rho, u, and FP32-mode distributions).
type FloatBuffer struct {
	id    uint32
	count int
}

// NewFloatBuffer allocates a device buffer sized for count float32
// elements, optionally uploading initial data (nil zero-initializes).
func NewFloatBuffer(count int, initial []float32) (*FloatBuffer, error) {
	size := uint32(count * 4)
	var ptr unsafe.Pointer
	if initial != nil {
		if len(initial) != count {
			return nil, &DeviceError{Op: "alloc", Err: fmt.Errorf("initial data length %d != count %d", len(initial), count)}
		}
		ptr = unsafe.Pointer(&initial[0])
	}
	id := rl.LoadShaderBuffer(size, ptr, rlDynamicCopy)
	if id == 0 {
		return nil, &DeviceError{Op: "alloc", Err: fmt.Errorf("failed to allocate %d-byte SSBO", size)}
	}
	return &FloatBuffer{id: id, count: count}, nil
}

// Upload writes data to the device buffer in full.
func (b *FloatBuffer) Upload(data []float32) error {
	if len(data) != b.count {
		return fmt.Errorf("device: upload length %d != buffer count %d", len(data), b.count)
	}
	rl.UpdateShaderBuffer(b.id, unsafe.Pointer(&data[0]), uint32(len(data)*4), 0)
	return nil
}

// Download reads the full buffer back into dst (must be pre-sized).
func (b *FloatBuffer) Download(dst []float32) error {
	if len(dst) != b.count {
		return fmt.Errorf("device: download length %d != buffer count %d", len(dst), b.count)
	}
	rl.ReadShaderBuffer(b.id, unsafe.Pointer(&dst[0]), uint32(len(dst)*4), 0)
	return nil
}

// Bind attaches the buffer to an SSBO binding point for the currently
// enabled program.
func (b *FloatBuffer) Bind(bindingIndex uint32) {
	rl.BindShaderBuffer(b.id, bindingIndex)
}

// Unload releases the buffer.
func (b *FloatBuffer) Unload() {
	rl.UnloadShaderBuffer(b.id)
}

// IntBuffer is a device-resident array of int32 scalars, used for the
// per-node flags array. Flags are a byte per spec.md §3, but std430
// storage-buffer layout does not guarantee byte-addressable arrays
// portably, so flags are stored as int32 on the device; the caller widens
// each flag to int32 before Upload (see DESIGN.md).
type IntBuffer struct {
	id    uint32
	count int
}

// NewIntBuffer allocates a device buffer sized for count int32 elements.
func NewIntBuffer(count int, initial []int32) (*IntBuffer, error) {
	size := uint32(count * 4)
	var ptr unsafe.Pointer
	if initial != nil {
		if len(initial) != count {
			return nil, &DeviceError{Op: "alloc", Err: fmt.Errorf("initial data length %d != count %d", len(initial), count)}
		}
		ptr = unsafe.Pointer(&initial[0])
	}
	id := rl.LoadShaderBuffer(size, ptr, rlDynamicCopy)
	if id == 0 {
		return nil, &DeviceError{Op: "alloc", Err: fmt.Errorf("failed to allocate %d-byte SSBO", size)}
	}
	return &IntBuffer{id: id, count: count}, nil
}

// Upload writes data to the device buffer in full.
func (b *IntBuffer) Upload(data []int32) error {
	if len(data) != b.count {
		return fmt.Errorf("device: upload length %d != buffer count %d", len(data), b.count)
	}
	rl.UpdateShaderBuffer(b.id, unsafe.Pointer(&data[0]), uint32(len(data)*4), 0)
	return nil
}

// Download reads the full buffer back into dst (must be pre-sized).
func (b *IntBuffer) Download(dst []int32) error {
	if len(dst) != b.count {
		return fmt.Errorf("device: download length %d != buffer count %d", len(dst), b.count)
	}
	rl.ReadShaderBuffer(b.id, unsafe.Pointer(&dst[0]), uint32(len(dst)*4), 0)
	return nil
}

// Bind attaches the buffer to an SSBO binding point for the currently
// enabled program.
func (b *IntBuffer) Bind(bindingIndex uint32) {
	rl.BindShaderBuffer(b.id, bindingIndex)
}

// Unload releases the buffer.
func (b *IntBuffer) Unload() {
	rl.UnloadShaderBuffer(b.id)
}

// HalfBuffer is a device-resident array of float16 scalars, used for the
// distribution buffers in FP16S/FP16C precision modes. It has no
// Upload/Download: its contents are only ever written and read by the
// kernels, which convert to and from float16 themselves, and the host
// reads back only rho/u, which stay float32 throughout.
type HalfBuffer struct {
	id    uint32
	count int
}

// NewHalfBuffer allocates a device buffer sized for count float16
// elements (2 bytes each).
func NewHalfBuffer(count int) (*HalfBuffer, error) {
	size := uint32(count * 2)
	id := rl.LoadShaderBuffer(size, nil, rlDynamicCopy)
	if id == 0 {
		return nil, &DeviceError{Op: "alloc", Err: fmt.Errorf("failed to allocate %d-byte half-precision SSBO", size)}
	}
	return &HalfBuffer{id: id, count: count}, nil
}

// Bind attaches the buffer to an SSBO binding point for the currently
// enabled program.
func (b *HalfBuffer) Bind(bindingIndex uint32) {
	rl.BindShaderBuffer(b.id, bindingIndex)
}

// Unload releases the buffer.
func (b *HalfBuffer) Unload() {
	rl.UnloadShaderBuffer(b.id)
}
