package capi

import (
	"github.com/osdgfx/osdbuf"
)

// CreateFrameBuffer wraps a caller-owned straight-RGBA pixel slice as a
// framebuffer and returns its handle. The slice must stay alive and
// unmoved until DestroyFrameBuffer; the engine never copies it. Returns
// -1 for non-positive dimensions or a slice shorter than w*h*4.
func CreateFrameBuffer(pixels []byte, width, height int32) int32 {
	fb, err := osdbuf.NewFramebuffer(pixels, int(width), int(height))
	if err != nil {
		osdbuf.Logger().Warn("framebuffer creation failed",
			"width", width, "height", height, "error", err)
		return -1
	}
	return framebuffers.Put(&fbEntry{fb: fb})
}

// DestroyFrameBuffer invalidates the handle. The pixel memory is
// untouched and returns to the caller's exclusive control. Destroying
// an unknown handle is a no-op.
func DestroyFrameBuffer(h int32) {
	framebuffers.Remove(h)
}

// SetAntiAlias enables (non-zero) or disables (zero) anti-aliased
// rendering for subsequent operations.
func SetAntiAlias(h int32, enabled int32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.SetAntialias(enabled != 0)
	})
}

// GetAntiAlias reports the anti-alias flag: 1 enabled, 0 disabled or
// unknown handle.
func GetAntiAlias(h int32) int32 {
	var on int32
	withFB(h, func(fb *osdbuf.Framebuffer) {
		if fb.Antialias() {
			on = 1
		}
	})
	return on
}
