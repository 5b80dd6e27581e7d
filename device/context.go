// Package device wraps the portable GPU compute API (OpenGL 4.3+ compute
// shaders, reached through raylib's rlgl bindings) that the LBM core runs
// on: device selection, program assembly/compilation, and typed SSBO
// buffers with upload/download primitives (spec.md §4.2, §4.3's "device
// upload", §6 "Environment / device selection").
//
// This generalizes the fragment-shader idiom already used for field
// generation (render a shader, read the target back to a CPU slice) to
// compute shaders: compile, dispatch over N work-items, read an SSBO
// back.
package device

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// glComputeShader is GL_COMPUTE_SHADER (0x91B9); raylib-go's shader-type
// enum does not name it directly since raylib itself only added compute
// shader support to rlgl, not to the higher-level Shader loading API.
const glComputeShader int32 = 0x91B9

// Context owns the GL context the compute kernels run against. A single
// context serves a single in-order command queue, matching spec.md §5's
// "single in-order command queue per device is sufficient and preferred".
type Context struct {
	ownsWindow bool
	vendor     string
	renderer   string
}

// Options configures device selection.
type Options struct {
	// RequireVendorSubstring, if non-empty, fails Open unless the
	// reported GL_VENDOR string contains it (case-sensitive substring).
	RequireVendorSubstring string
	// Hidden runs with a hidden window, used for headless compute runs
	// (spec.md's core has no required visual surface).
	Hidden bool
	// RequireHalfPrecision fails Open if the device lacks the
	// half-precision storage/arithmetic extensions (spec.md §4.2).
	RequireHalfPrecision bool
}

// Open probes the compute runtime, opens a GL context, and selects it as
// the active device. Fatal per spec.md §7: returns a DeviceError on any
// failure (no device, missing extension).
func Open(opts Options) (*Context, error) {
	flags := uint32(0)
	if opts.Hidden {
		flags |= rl.FlagWindowHidden
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(1, 1, "lbmsolver-compute")
	if !rl.IsWindowReady() {
		return nil, &DeviceError{Op: "open", Err: fmt.Errorf("failed to create a GL context")}
	}

	vendor := rl.GetGraphicsCardVendor()
	renderer := rl.GetGraphicsCardRenderer()

	if opts.RequireVendorSubstring != "" && !contains(vendor, opts.RequireVendorSubstring) {
		rl.CloseWindow()
		return nil, &DeviceError{Op: "open", Err: fmt.Errorf("no device matching vendor filter %q (found %q)", opts.RequireVendorSubstring, vendor)}
	}

	if opts.RequireHalfPrecision && (!rl.IsGPUExtensionSupported("GL_EXT_shader_16bit_storage") ||
		!rl.IsGPUExtensionSupported("GL_EXT_shader_explicit_arithmetic_types_float16")) {
		rl.CloseWindow()
		return nil, &DeviceError{Op: "open", Err: fmt.Errorf("device %q lacks the required half-precision extension", renderer)}
	}

	return &Context{ownsWindow: true, vendor: vendor, renderer: renderer}, nil
}

// Vendor returns the GL_VENDOR string logged at Open time.
func (c *Context) Vendor() string { return c.vendor }

// Renderer returns the GL_RENDERER string logged at Open time.
func (c *Context) Renderer() string { return c.renderer }

// Close releases the GL context deterministically (spec.md §4.7 "On
// completion: release all device resources deterministically").
func (c *Context) Close() {
	if c.ownsWindow {
		rl.CloseWindow()
		c.ownsWindow = false
	}
}

func contains(s, substr string) bool {
	if substr == "" {
		return true
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
