package capi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/osdgfx/osdbuf/capi"
)

func TestRegisterFont(t *testing.T) {
	h := capi.RegisterFont(goregular.TTF)
	require.Greater(t, h, int32(0))
	defer capi.UnloadFont(h)

	assert.Equal(t, int32(-1), capi.RegisterFont([]byte("garbage")))
	assert.Equal(t, int32(-1), capi.LoadFont("/nonexistent.ttf"))
}

func TestUnloadFont(t *testing.T) {
	h := capi.RegisterFont(goregular.TTF)
	require.Greater(t, h, int32(0))

	assert.Equal(t, int32(0), capi.UnloadFont(h))
	assert.Equal(t, int32(-1), capi.UnloadFont(h), "second unload fails")
	assert.Equal(t, int32(-1), capi.UnloadFont(99999))

	// Unloaded fonts stop measuring.
	assert.Equal(t, int32(0), capi.MeasureText(h, 16, "Hello", 0))
}

func TestGetDefaultFont(t *testing.T) {
	h := capi.GetDefaultFont()
	require.Greater(t, h, int32(0))
	assert.Equal(t, h, capi.GetDefaultFont(), "default handle is stable")

	// After unloading, the next request re-registers it.
	require.Equal(t, int32(0), capi.UnloadFont(h))
	h2 := capi.GetDefaultFont()
	assert.Greater(t, h2, int32(0))
	assert.Greater(t, capi.MeasureText(h2, 16, "Hello", 0), int32(0))
}

func TestFontRegistryInventory(t *testing.T) {
	before := capi.GetFontCount()
	h := capi.RegisterFont(goregular.TTF)
	require.Greater(t, h, int32(0))
	defer capi.UnloadFont(h)

	assert.Equal(t, before+1, capi.GetFontCount())

	ids := make([]int32, capi.GetFontCount())
	n := capi.GetFontIDs(ids)
	assert.Equal(t, int32(len(ids)), n)
	assert.Contains(t, ids, h)

	assert.Equal(t, int32(0), capi.GetFontIDs(nil))
}

func TestMeasureText(t *testing.T) {
	h := capi.GetDefaultFont()

	w := capi.MeasureText(h, 16, "Hello", 0)
	assert.Greater(t, w, int32(0))

	spaced := capi.MeasureText(h, 16, "Hello", 2)
	assert.Equal(t, w+8, spaced, "spacing adds between the 5 glyphs only")

	assert.Equal(t, int32(0), capi.MeasureText(h, 16, "", 0))
	assert.Equal(t, int32(0), capi.MeasureText(99999, 16, "Hello", 0))
}

func TestDrawTextReturnsMeasuredWidth(t *testing.T) {
	fb := newFB(t, 64, 32)
	h := capi.GetDefaultFont()

	want := capi.MeasureText(h, 16, "Hi", 0)
	got := capi.DrawText(fb, h, 16, "Hi", 4, 16, 1|4, 0xFFFFFFFF, 0)
	assert.Equal(t, want, got)

	// Something landed in the buffer.
	var touched bool
	for y := int32(0); y < 32 && !touched; y++ {
		for x := int32(0); x < 64; x++ {
			if capi.GetPixel(fb, x, y) != 0 {
				touched = true
				break
			}
		}
	}
	assert.True(t, touched, "glyph coverage should reach the framebuffer")
}

func TestDrawTextDefaultFontFallback(t *testing.T) {
	fb := newFB(t, 64, 32)

	got := capi.DrawText(fb, 0, 16, "Hi", 4, 16, 1|4, 0xFFFFFFFF, 0)
	assert.Greater(t, got, int32(0), "handle 0 falls back to the default font")

	assert.Equal(t, int32(0), capi.DrawText(fb, 0, 16, "", 4, 16, 0, 0xFFFFFFFF, 0))
}

func TestGetTextMetrics(t *testing.T) {
	h := capi.GetDefaultFont()

	ascent, descent, height, ok := capi.GetTextMetrics(h, 16)
	require.Equal(t, int32(1), ok)
	assert.Greater(t, ascent, int32(0))
	assert.Less(t, descent, int32(0), "descent is below the baseline")
	assert.GreaterOrEqual(t, height, ascent-descent-1)

	_, _, _, ok = capi.GetTextMetrics(99999, 16)
	assert.Equal(t, int32(0), ok)
}

func TestGetTextHeight(t *testing.T) {
	h := capi.GetDefaultFont()

	ht := capi.GetTextHeight(h, 16)
	assert.Greater(t, ht, int32(0))
	assert.Greater(t, capi.GetTextHeight(h, 32), ht)

	assert.Equal(t, int32(-1), capi.GetTextHeight(99999, 16))
}
