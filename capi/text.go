package capi

import (
	"math"

	"github.com/osdgfx/osdbuf"
	"github.com/osdgfx/osdbuf/text"
)

// resolveFont looks up a font handle, substituting the default font for
// zero/negative handles when fallback is set.
func resolveFont(h int32, fallback bool) (*text.Font, bool) {
	if h < 1 && fallback {
		h = GetDefaultFont()
	}
	return fonts.Get(h)
}

// DrawText renders a string with its anchor point at (x, y) and returns
// the rounded measured width. The anchor bitmask combines TOP=1,
// BOTTOM=2, LEFT=4, RIGHT=8; zero centers on both axes. A zero or
// negative font handle uses the default font. Control runes are
// skipped.
func DrawText(h, fontHandle int32, size float32, s string, x, y float32, anchor uint32, color uint32, spacing float32) int32 {
	f, ok := resolveFont(fontHandle, true)
	if !ok || s == "" {
		return 0
	}
	var width float64
	withFB(h, func(fb *osdbuf.Framebuffer) {
		width = fb.DrawText(f, s, float64(size), float64(x), float64(y),
			text.Anchor(anchor), osdbuf.Color(color), float64(spacing))
	})
	return int32(math.Round(width))
}

// MeasureText returns the rounded width of s at the given size and
// letter spacing, or 0 for an unknown font handle.
func MeasureText(fontHandle int32, size float32, s string, spacing float32) int32 {
	f, ok := resolveFont(fontHandle, false)
	if !ok {
		return 0
	}
	return int32(math.Round(f.Measure(s, float64(size), float64(spacing))))
}

// GetTextMetrics returns rounded vertical metrics at the given size.
// Descent is negative (distance below the baseline). ok is 0 for an
// unknown font handle or unusable size.
func GetTextMetrics(fontHandle int32, size float32) (ascent, descent, height int32, ok int32) {
	f, found := resolveFont(fontHandle, false)
	if !found {
		return 0, 0, 0, 0
	}
	m, err := f.Metrics(float64(size))
	if err != nil {
		return 0, 0, 0, 0
	}
	return int32(math.Round(m.Ascent)),
		int32(math.Round(m.Descent)),
		int32(math.Round(m.Height)),
		1
}

// GetTextHeight returns the rounded line height at the given size, or
// -1 for an unknown font handle or unusable size.
func GetTextHeight(fontHandle int32, size float32) int32 {
	f, found := resolveFont(fontHandle, false)
	if !found {
		return -1
	}
	m, err := f.Metrics(float64(size))
	if err != nil {
		return -1
	}
	return int32(math.Round(m.Height))
}
