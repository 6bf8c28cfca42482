package osdbuf

import (
	"errors"
	"fmt"

	ipath "github.com/osdgfx/osdbuf/internal/path"
	"github.com/osdgfx/osdbuf/internal/raster"
	"github.com/osdgfx/osdbuf/internal/stroke"
)

// ErrShortBuffer reports a pixel slice too small for the requested
// dimensions.
var ErrShortBuffer = errors.New("osdbuf: pixel buffer too small")

// ErrBadDimensions reports non-positive framebuffer dimensions.
var ErrBadDimensions = errors.New("osdbuf: width and height must be positive")

// GState is one saved graphics state: transform, clip, and global alpha.
// Clip masks are immutable, so the snapshot shares the mask pointer.
type GState struct {
	ctm   Matrix
	clip  *ClipMask
	alpha float64
}

// Framebuffer draws into caller-owned memory: a straight (non-
// premultiplied) RGBA pixel slice, 4 bytes per pixel in row-major order.
// The framebuffer never copies or frees the slice; the caller keeps
// ownership and must keep it alive for the framebuffer's lifetime.
//
// Drawing state consists of the current transformation matrix, an
// optional clip mask, a global alpha, and the anti-aliasing flag. Shape,
// path, and text operations go through transform, clip, and alpha;
// pixel-level operations (SetPixel, Fill, Scroll, Blit) write raw bytes
// and bypass all state.
type Framebuffer struct {
	pixels []byte
	width  int
	height int

	antialias bool
	ctm       Matrix
	clip      *ClipMask
	alpha     float64
	stack     []GState

	rast *raster.Rasterizer
}

// NewFramebuffer wraps pixels as a width×height framebuffer. The slice
// must hold at least width*height*4 bytes. Anti-aliasing starts enabled,
// the transform starts as identity, and no clip is set.
func NewFramebuffer(pixels []byte, width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if len(pixels) < width*height*4 {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, width*height*4, len(pixels))
	}
	return &Framebuffer{
		pixels:    pixels[:width*height*4],
		width:     width,
		height:    height,
		antialias: true,
		ctm:       Identity(),
		alpha:     1,
		rast:      raster.New(width, height),
	}, nil
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Pixels returns the underlying pixel slice.
func (fb *Framebuffer) Pixels() []byte { return fb.pixels }

// SetAntialias switches anti-aliased rendering on or off.
func (fb *Framebuffer) SetAntialias(on bool) { fb.antialias = on }

// Antialias reports whether anti-aliased rendering is enabled.
func (fb *Framebuffer) Antialias() bool { return fb.antialias }

// SetCTM replaces the current transformation matrix.
func (fb *Framebuffer) SetCTM(m Matrix) { fb.ctm = m }

// CTM returns the current transformation matrix.
func (fb *Framebuffer) CTM() Matrix { return fb.ctm }

// ConcatCTM concatenates m onto the current transform, so m applies
// before the existing transform.
func (fb *Framebuffer) ConcatCTM(m Matrix) { fb.ctm = fb.ctm.Multiply(m) }

// SetGlobalAlpha sets the global alpha multiplier, clamped to [0, 1].
// It scales the alpha of every subsequent shape, path, and text
// operation.
func (fb *Framebuffer) SetGlobalAlpha(a float64) {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	fb.alpha = a
}

// GlobalAlpha returns the global alpha multiplier.
func (fb *Framebuffer) GlobalAlpha() float64 { return fb.alpha }

// Push saves the current transform, clip, and global alpha.
func (fb *Framebuffer) Push() {
	fb.stack = append(fb.stack, GState{ctm: fb.ctm, clip: fb.clip, alpha: fb.alpha})
}

// Pop restores the most recently pushed graphics state. Popping an empty
// stack is a no-op and returns false.
func (fb *Framebuffer) Pop() bool {
	n := len(fb.stack)
	if n == 0 {
		return false
	}
	s := fb.stack[n-1]
	fb.stack = fb.stack[:n-1]
	fb.ctm = s.ctm
	fb.clip = s.clip
	fb.alpha = s.alpha
	return true
}

// StackDepth returns the number of saved graphics states.
func (fb *Framebuffer) StackDepth() int { return len(fb.stack) }

// ClipPath intersects the current clip with the path's filled area,
// transformed through the current matrix. The clip only ever narrows;
// Pop restores the previous one.
func (fb *Framebuffer) ClipPath(p *Path) {
	polys := transformPolys(p.flatten(), fb.ctm)
	mask := newClipMask(fb.width, fb.height, polys, p.FillRule, fb.antialias)
	fb.clip = fb.clip.Intersect(mask)
}

// ClipRect intersects the current clip with a rectangle.
func (fb *Framebuffer) ClipRect(x, y, w, h float64) {
	p := NewPath()
	p.Rectangle(x, y, w, h)
	fb.ClipPath(p)
}

// FillPath fills the path through the current transform, clip, and
// global alpha, honoring the path's fill rule.
func (fb *Framebuffer) FillPath(p *Path, c Color, mode BlendMode) {
	fb.fillPolys(transformPolys(p.flatten(), fb.ctm), p.FillRule, c, mode)
}

// StrokePath strokes the path using its stored stroke parameters. The
// outline is expanded in user space, so the transform scales stroke
// width along with the geometry.
func (fb *Framebuffer) StrokePath(p *Path, c Color, mode BlendMode) {
	fb.strokePolys(p.flatten(), p.Stroke, fb.ctm, c, mode)
}

// StrokePathWith strokes the path with explicit stroke parameters,
// ignoring the path's own.
func (fb *Framebuffer) StrokePathWith(p *Path, st Stroke, c Color, mode BlendMode) {
	fb.strokePolys(p.flatten(), st, fb.ctm, c, mode)
}

// fillPolys rasterizes device-space polylines and blends the spans.
func (fb *Framebuffer) fillPolys(polys []ipath.Polyline, rule FillRule, c Color, mode BlendMode) {
	fb.fillPolysAA(polys, rule, c, mode, fb.antialias)
}

// fillPolysAA is fillPolys with an explicit anti-aliasing override, used
// by axis-aligned primitives that always render crisp.
func (fb *Framebuffer) fillPolysAA(polys []ipath.Polyline, rule FillRule, c Color, mode BlendMode, antialias bool) {
	if len(polys) == 0 {
		return
	}
	edges := fillEdges(polys)
	fb.rast.Fill(edges, rule.toRaster(), antialias, func(y, x0, x1 int, cov uint8) {
		fb.writeSpan(y, x0, x1, c, cov, mode)
	})
}

// strokePolys dashes and outlines user-space polylines, transforms the
// outline to device space, and fills it non-zero.
func (fb *Framebuffer) strokePolys(polys []ipath.Polyline, st Stroke, m Matrix, c Color, mode BlendMode) {
	if st.Dash != nil {
		polys = stroke.ApplyDash(polys, st.Dash.Intervals, st.Dash.Phase)
	}
	outline := stroke.Outline(polys, stroke.Options{
		Width:      st.Width,
		Cap:        stroke.Cap(st.Cap),
		Join:       stroke.Join(st.Join),
		MiterLimit: st.MiterLimit,
	})
	fb.fillPolys(transformPolys(outline, m), FillRuleNonZero, c, mode)
}

// writeSpan blends one coverage span, applying clip and global alpha.
func (fb *Framebuffer) writeSpan(y, x0, x1 int, c Color, cov uint8, mode BlendMode) {
	if y < 0 || y >= fb.height {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > fb.width {
		x1 = fb.width
	}
	for x := x0; x < x1; x++ {
		cv := float64(cov) / 255 * fb.alpha
		if fb.clip != nil {
			cv *= float64(fb.clip.at(x, y)) / 255
		}
		if cv <= 0 {
			continue
		}
		fb.blendPixel((y*fb.width+x)*4, c, cv, mode)
	}
}

// blendPixel composites c into the pixel at byte offset i with combined
// coverage cv in (0, 1]. Source replaces the pixel outright at full
// coverage and interpolates toward it otherwise; Over is standard
// source-over on straight alpha.
func (fb *Framebuffer) blendPixel(i int, c Color, cv float64, mode BlendMode) {
	px := fb.pixels[i : i+4 : i+4]

	if mode == BlendSource {
		if cv >= 1 {
			px[0] = c.R()
			px[1] = c.G()
			px[2] = c.B()
			px[3] = c.A()
			return
		}
		px[0] = lerp8(px[0], c.R(), cv)
		px[1] = lerp8(px[1], c.G(), cv)
		px[2] = lerp8(px[2], c.B(), cv)
		px[3] = lerp8(px[3], c.A(), cv)
		return
	}

	sa := float64(c.A()) / 255 * cv
	if sa <= 0 {
		return
	}
	da := float64(px[3]) / 255
	outA := sa + da*(1-sa)
	if outA <= 0 {
		px[0], px[1], px[2], px[3] = 0, 0, 0, 0
		return
	}
	blend := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / outA
		return clamp8(v + 0.5)
	}
	px[0] = blend(c.R(), px[0])
	px[1] = blend(c.G(), px[1])
	px[2] = blend(c.B(), px[2])
	px[3] = clamp8(outA*255 + 0.5)
}

func lerp8(d, s uint8, t float64) uint8 {
	return clamp8(float64(d) + (float64(s)-float64(d))*t + 0.5)
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// transformPolys maps polyline points through m. The identity transform
// returns the input unchanged.
func transformPolys(polys []ipath.Polyline, m Matrix) []ipath.Polyline {
	if m.IsIdentity() {
		return polys
	}
	out := make([]ipath.Polyline, len(polys))
	for i, pl := range polys {
		pts := make([]ipath.Point, len(pl.Points))
		for j, pt := range pl.Points {
			p := m.TransformPoint(Pt(pt.X, pt.Y))
			pts[j] = ipath.Point{X: p.X, Y: p.Y}
		}
		out[i] = ipath.Polyline{Points: pts, Closed: pl.Closed}
	}
	return out
}
