package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/math/fixed"
)

// GlyphMask is one rasterized glyph: an 8-bit coverage mask positioned
// in destination coordinates, plus the advance to the next glyph.
type GlyphMask struct {
	// Rect is the destination rectangle of the mask, already offset by
	// the dot the glyph was rasterized at.
	Rect image.Rectangle
	// Mask holds coverage; index it with coordinates from Rect.
	Mask *image.Alpha
	// Advance is the horizontal advance in pixels.
	Advance float64
}

// Glyph rasterizes r at the given size with the glyph origin (baseline
// dot) at (dotX, dotY). ok is false when the font has no glyph for r.
func (f *Font) Glyph(r rune, size, dotX, dotY float64) (GlyphMask, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	face, err := f.face(size)
	if err != nil {
		return GlyphMask{}, false
	}

	dot := fixed.Point26_6{X: floatToFixed(dotX), Y: floatToFixed(dotY)}
	dr, mask, maskp, advance, ok := face.Glyph(dot, r)
	if !ok || dr.Empty() {
		return GlyphMask{Advance: fixedToFloat(advance)}, ok
	}

	out := image.NewAlpha(dr)
	draw.DrawMask(out, dr, image.NewUniform(color.Alpha{A: 255}), image.Point{}, mask, maskp, draw.Src)

	return GlyphMask{Rect: dr, Mask: out, Advance: fixedToFloat(advance)}, true
}
