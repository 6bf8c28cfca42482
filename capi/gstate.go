package capi

import (
	"github.com/osdgfx/osdbuf"
)

// GStatePush saves the framebuffer's transform, clip, and global alpha.
func GStatePush(h int32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.Push()
	})
}

// GStatePop restores the most recently pushed graphics state. Popping
// with an empty stack is a no-op.
func GStatePop(h int32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.Pop()
	})
}

// SetCTM replaces the framebuffer's current transformation matrix with
// the given components.
func SetCTM(h int32, a, b, c, d, tx, ty float32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.SetCTM(osdbuf.FromComponents(
			float64(a), float64(b), float64(c),
			float64(d), float64(tx), float64(ty),
		))
	})
}

// ConcatCTM composes a registry transform onto the framebuffer's
// current matrix, so the transform applies before the existing one.
// Returns 0 on success, -1 when either handle is unknown.
func ConcatCTM(fbHandle, transformHandle int32) int32 {
	t, ok := transforms.Get(transformHandle)
	if !ok {
		return -1
	}
	if !withFB(fbHandle, func(fb *osdbuf.Framebuffer) {
		fb.ConcatCTM(matrixOf(t))
	}) {
		return -1
	}
	return 0
}

// SetGlobalAlpha sets the global alpha multiplier, clamped to [0, 1].
func SetGlobalAlpha(h int32, alpha float32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.SetGlobalAlpha(float64(alpha))
	})
}

// GetGlobalAlpha returns the global alpha multiplier, or 0 for an
// unknown handle.
func GetGlobalAlpha(h int32) float32 {
	var a float64
	withFB(h, func(fb *osdbuf.Framebuffer) {
		a = fb.GlobalAlpha()
	})
	return float32(a)
}
