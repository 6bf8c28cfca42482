package capi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osdgfx/osdbuf/capi"
)

func newFB(t *testing.T, w, h int32) int32 {
	t.Helper()
	buf := make([]byte, w*h*4)
	fb := capi.CreateFrameBuffer(buf, w, h)
	require.Greater(t, fb, int32(0))
	t.Cleanup(func() { capi.DestroyFrameBuffer(fb) })
	return fb
}

func TestCreateFrameBufferRejectsBadInput(t *testing.T) {
	assert.Equal(t, int32(-1), capi.CreateFrameBuffer(make([]byte, 8), 4, 4), "short slice")
	assert.Equal(t, int32(-1), capi.CreateFrameBuffer(make([]byte, 64), 0, 4), "zero width")
	assert.Equal(t, int32(-1), capi.CreateFrameBuffer(make([]byte, 64), 4, -2), "negative height")
}

func TestDestroyFrameBufferIdempotent(t *testing.T) {
	buf := make([]byte, 4*4*4)
	fb := capi.CreateFrameBuffer(buf, 4, 4)
	require.Greater(t, fb, int32(0))

	capi.DestroyFrameBuffer(fb)
	capi.DestroyFrameBuffer(fb) // no-op
	capi.DestroyFrameBuffer(-5) // no-op

	// A destroyed handle never resolves again.
	capi.SetPixel(fb, 0, 0, 0xFF0000FF)
	assert.Equal(t, uint32(0), capi.GetPixel(fb, 0, 0))
}

func TestOperationsOnUnknownHandle(t *testing.T) {
	// None of these may panic or write anywhere.
	capi.Fill(999999, 0xFF0000FF)
	capi.SetPixel(0, 1, 1, 0xFF0000FF)
	capi.Scroll(-1, 2, 2)
	assert.Equal(t, uint32(0), capi.GetPixel(999999, 0, 0))
	assert.Equal(t, int32(0), capi.GetAntiAlias(999999))
	assert.Equal(t, float32(0), capi.GetGlobalAlpha(999999))
}

func TestWritesLandInCallerMemory(t *testing.T) {
	buf := make([]byte, 2*2*4)
	fb := capi.CreateFrameBuffer(buf, 2, 2)
	require.Greater(t, fb, int32(0))
	defer capi.DestroyFrameBuffer(fb)

	capi.SetPixel(fb, 0, 0, 0x11223344)
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, buf[:4],
		"pixels are stored in the caller's slice, R G B A byte order")
}

func TestAntiAliasFlag(t *testing.T) {
	fb := newFB(t, 4, 4)

	assert.Equal(t, int32(1), capi.GetAntiAlias(fb), "anti-aliasing defaults on")
	capi.SetAntiAlias(fb, 0)
	assert.Equal(t, int32(0), capi.GetAntiAlias(fb))
	capi.SetAntiAlias(fb, 1)
	assert.Equal(t, int32(1), capi.GetAntiAlias(fb))
}

func TestSetGetPixel(t *testing.T) {
	fb := newFB(t, 4, 4)

	capi.SetPixel(fb, 2, 3, 0xAABBCC80)
	assert.Equal(t, uint32(0xAABBCC80), capi.GetPixel(fb, 2, 3))
	assert.Equal(t, uint32(0), capi.GetPixel(fb, -1, 0))
	assert.Equal(t, uint32(0), capi.GetPixel(fb, 4, 0))
}

func TestCenteredPixelAccess(t *testing.T) {
	fb := newFB(t, 10, 10)

	capi.CSetPixel(fb, 0, 0, 0xFF0000FF)
	assert.Equal(t, uint32(0xFF0000FF), capi.GetPixel(fb, 5, 5))

	capi.CSetPixel(fb, -2, 1, 0x00FF00FF)
	assert.Equal(t, uint32(0x00FF00FF), capi.CGetPixel(fb, -2, 1))
	assert.Equal(t, uint32(0x00FF00FF), capi.GetPixel(fb, 3, 6))
}

func TestFillAndFillOver(t *testing.T) {
	fb := newFB(t, 2, 2)

	capi.Fill(fb, 0x10203040)
	assert.Equal(t, uint32(0x10203040), capi.GetPixel(fb, 1, 1))

	capi.Fill(fb, 0x000000FF)
	capi.FillOver(fb, 0xFFFFFF80)
	got := capi.GetPixel(fb, 0, 0)
	assert.Equal(t, uint32(0xFF), got&0xFF, "result stays opaque")
	r := got >> 24
	assert.InDelta(t, 128, float64(r), 8, "half-alpha white over black is mid grey")
}

func TestScrollClearsVacated(t *testing.T) {
	fb := newFB(t, 4, 4)
	capi.Fill(fb, 0xFFFFFFFF)

	capi.Scroll(fb, 0, 1)
	assert.Equal(t, uint32(0), capi.GetPixel(fb, 0, 0), "vacated row is transparent")
	assert.Equal(t, uint32(0xFFFFFFFF), capi.GetPixel(fb, 0, 3))
}

func TestBlitRGBA(t *testing.T) {
	fb := newFB(t, 4, 4)

	src := []byte{0x12, 0x34, 0x56, 0xFF}
	capi.BlitRGBA(fb, src, 1, 1, 2, 2, 0)
	assert.Equal(t, uint32(0x123456FF), capi.GetPixel(fb, 2, 2))
	assert.Equal(t, uint32(0), capi.GetPixel(fb, 0, 0))

	// Short source is rejected entirely.
	capi.BlitRGBA(fb, []byte{1, 2}, 2, 2, 0, 0, 0)
	assert.Equal(t, uint32(0), capi.GetPixel(fb, 0, 0))
}

func TestDrawCheckerBoard(t *testing.T) {
	fb := newFB(t, 8, 8)
	capi.DrawCheckerBoard(fb, 4)

	assert.Equal(t, uint32(0xCCCCCCFF), capi.GetPixel(fb, 0, 0))
	assert.Equal(t, uint32(0x999999FF), capi.GetPixel(fb, 4, 0))
	assert.Equal(t, uint32(0x999999FF), capi.GetPixel(fb, 0, 4))
	assert.Equal(t, uint32(0xCCCCCCFF), capi.GetPixel(fb, 4, 4))
}

func TestApplyYUV422CompensationPairs(t *testing.T) {
	fb := newFB(t, 4, 1)

	capi.SetPixel(fb, 0, 0, 0xFF0000FF)
	capi.ApplyYUV422Compensation(fb, 0, 0, 4, 1)

	got := capi.GetPixel(fb, 1, 0)
	assert.Equal(t, uint32(0xFF0000), got>>8, "RGB copied from the visible half")
	assert.Equal(t, uint32(51), got&0xFF, "alpha faded to 20%")
}

func TestHLineAndRect(t *testing.T) {
	fb := newFB(t, 8, 8)

	capi.HLine(fb, 1, 1, 3, 0xFF0000FF, 0)
	assert.Equal(t, uint32(0xFF0000FF), capi.GetPixel(fb, 2, 1))
	assert.Equal(t, uint32(0), capi.GetPixel(fb, 4, 1))

	capi.Rect(fb, 0, 3, 5, 4, 0x00FF00FF, 0)
	assert.Equal(t, uint32(0x00FF00FF), capi.GetPixel(fb, 0, 4), "left edge")
	assert.Equal(t, uint32(0x00FF00FF), capi.GetPixel(fb, 2, 3), "top edge")
	assert.Equal(t, uint32(0), capi.GetPixel(fb, 2, 5), "interior stays empty")
}

func TestFillRectThroughTransform(t *testing.T) {
	fb := newFB(t, 8, 8)

	capi.SetCTM(fb, 1, 0, 0, 1, 4, 0)
	capi.FillRect(fb, 0, 0, 2, 2, 0xFF0000FF, 0)
	assert.Equal(t, uint32(0xFF0000FF), capi.GetPixel(fb, 5, 1))
	assert.Equal(t, uint32(0), capi.GetPixel(fb, 1, 1))
}
