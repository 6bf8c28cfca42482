package osdbuf

import (
	"github.com/osdgfx/osdbuf/text"
)

// DrawText renders s with its anchor point at (x, y) and returns the
// measured text width. Glyph coverage is alpha-blended per pixel; with
// anti-aliasing disabled, coverage is thresholded at 50% instead. Text
// honors the global alpha but, like the legacy pixel primitives, ignores
// the transform and clip.
func (fb *Framebuffer) DrawText(f *text.Font, s string, size, x, y float64, anchor text.Anchor, c Color, spacing float64) float64 {
	if f == nil || s == "" || size <= 0 {
		return 0
	}

	width := f.Measure(s, size, spacing)
	m, err := f.Metrics(size)
	if err != nil {
		return 0
	}
	penX, baseY := anchor.Origin(x, y, width, m.Height, m.Ascent)

	c = c.scaleAlpha(fb.alpha)
	if c.A() == 0 {
		return width
	}

	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			continue
		}
		g, ok := f.Glyph(r, size, penX, baseY)
		if !ok {
			continue
		}
		if g.Mask != nil {
			fb.drawGlyph(g, c)
		}
		penX += g.Advance + spacing
	}
	return width
}

// drawGlyph blends one coverage mask into the buffer.
func (fb *Framebuffer) drawGlyph(g text.GlyphMask, c Color) {
	for gy := g.Rect.Min.Y; gy < g.Rect.Max.Y; gy++ {
		if gy < 0 || gy >= fb.height {
			continue
		}
		for gx := g.Rect.Min.X; gx < g.Rect.Max.X; gx++ {
			if gx < 0 || gx >= fb.width {
				continue
			}
			cov := g.Mask.AlphaAt(gx, gy).A
			if cov == 0 {
				continue
			}
			if fb.antialias {
				fb.blendPixel((gy*fb.width+gx)*4, c, float64(cov)/255, BlendOver)
			} else if cov >= 128 {
				fb.blendPixel((gy*fb.width+gx)*4, c, 1, BlendOver)
			}
		}
	}
}
