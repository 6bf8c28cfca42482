package osdbuf

import "math"

// Shape primitives. The float-coordinate fill and stroke variants render
// through the current transform; the integer-coordinate outline variants
// are legacy single-pixel primitives that draw in device space on pixel
// centers (the +0.5 offsets), untransformed.

// DrawLine strokes a one-pixel line between integer endpoints, centered
// on the pixels. Ignores the current transform.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color, mode BlendMode) {
	p := NewPath()
	p.MoveTo(float64(x0)+0.5, float64(y0)+0.5)
	p.LineTo(float64(x1)+0.5, float64(y1)+0.5)
	fb.strokePolys(p.flatten(), DefaultStroke(), Identity(), c, mode)
}

// StrokeLine strokes a line with explicit width, cap, and join, through
// the current transform.
func (fb *Framebuffer) StrokeLine(x0, y0, x1, y1, width float64, cap LineCap, join LineJoin, c Color, mode BlendMode) {
	p := NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	st := DefaultStroke()
	st.Width = width
	st.Cap = cap
	st.Join = join
	fb.strokePolys(p.flatten(), st, fb.ctm, c, mode)
}

// DrawHLine fills a one-pixel horizontal run. Always crisp, ignores the
// current transform.
func (fb *Framebuffer) DrawHLine(x, y, w int, c Color, mode BlendMode) {
	if w <= 0 {
		return
	}
	p := NewPath()
	p.Rectangle(float64(x), float64(y), float64(w), 1)
	fb.fillPolysAA(p.flatten(), FillRuleNonZero, c, mode, false)
}

// DrawVLine fills a one-pixel vertical run. Always crisp, ignores the
// current transform.
func (fb *Framebuffer) DrawVLine(x, y, h int, c Color, mode BlendMode) {
	if h <= 0 {
		return
	}
	p := NewPath()
	p.Rectangle(float64(x), float64(y), 1, float64(h))
	fb.fillPolysAA(p.flatten(), FillRuleNonZero, c, mode, false)
}

// DrawRect outlines a rectangle with one-pixel edges drawn inside the
// integer bounds. Ignores the current transform.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c Color, mode BlendMode) {
	if w <= 0 || h <= 0 {
		return
	}
	fb.DrawHLine(x, y, w, c, mode)
	fb.DrawHLine(x, y+h-1, w, c, mode)
	fb.DrawVLine(x, y, h, c, mode)
	fb.DrawVLine(x+w-1, y, h, c, mode)
}

// FillRect fills a rectangle through the current transform.
func (fb *Framebuffer) FillRect(x, y, w, h float64, c Color, mode BlendMode) {
	if w <= 0 || h <= 0 {
		return
	}
	p := NewPath()
	p.Rectangle(x, y, w, h)
	fb.fillPolys(transformPolys(p.flatten(), fb.ctm), FillRuleNonZero, c, mode)
}

// StrokeRect strokes a rectangle border of the given width, drawn fully
// inside the rectangle bounds, through the current transform.
func (fb *Framebuffer) StrokeRect(x, y, w, h, width float64, join LineJoin, c Color, mode BlendMode) {
	half := width / 2
	p := NewPath()
	p.Rectangle(x+half, y+half, math.Max(w-width, 0), math.Max(h-width, 0))
	st := DefaultStroke()
	st.Width = width
	st.Join = join
	fb.strokePolys(p.flatten(), st, fb.ctm, c, mode)
}

// DrawRoundedRect outlines a rounded rectangle with a one-pixel stroke
// on pixel centers. Ignores the current transform.
func (fb *Framebuffer) DrawRoundedRect(x, y, w, h, radius int, c Color, mode BlendMode) {
	p := NewPath()
	p.RoundedRectangle(float64(x)+0.5, float64(y)+0.5, float64(w)-1, float64(h)-1, float64(radius))
	fb.strokePolys(p.flatten(), DefaultStroke(), Identity(), c, mode)
}

// FillRoundedRect fills a rounded rectangle through the current
// transform.
func (fb *Framebuffer) FillRoundedRect(x, y, w, h, radius float64, c Color, mode BlendMode) {
	p := NewPath()
	p.RoundedRectangle(x, y, w, h, radius)
	fb.fillPolys(transformPolys(p.flatten(), fb.ctm), FillRuleNonZero, c, mode)
}

// StrokeRoundedRect strokes a rounded rectangle border of the given
// width, drawn fully inside the bounds, through the current transform.
// The corner radius shrinks with the inset so the outer edge keeps the
// requested curvature.
func (fb *Framebuffer) StrokeRoundedRect(x, y, w, h, radius, width float64, join LineJoin, c Color, mode BlendMode) {
	half := width / 2
	p := NewPath()
	p.RoundedRectangle(x+half, y+half, math.Max(w-width, 0), math.Max(h-width, 0), math.Max(radius-half, 0))
	st := DefaultStroke()
	st.Width = width
	st.Join = join
	fb.strokePolys(p.flatten(), st, fb.ctm, c, mode)
}

// DrawCircle outlines a circle with a one-pixel stroke on pixel centers.
// Ignores the current transform.
func (fb *Framebuffer) DrawCircle(cx, cy, r int, c Color, mode BlendMode) {
	p := NewPath()
	p.Circle(float64(cx)+0.5, float64(cy)+0.5, float64(r))
	fb.strokePolys(p.flatten(), DefaultStroke(), Identity(), c, mode)
}

// FillCircle fills a circle through the current transform.
func (fb *Framebuffer) FillCircle(cx, cy, r float64, c Color, mode BlendMode) {
	p := NewPath()
	p.Circle(cx, cy, r)
	fb.fillPolys(transformPolys(p.flatten(), fb.ctm), FillRuleNonZero, c, mode)
}

// DrawEllipse outlines an ellipse with a one-pixel stroke on pixel
// centers. Ignores the current transform.
func (fb *Framebuffer) DrawEllipse(cx, cy, rx, ry int, c Color, mode BlendMode) {
	p := NewPath()
	p.Ellipse(float64(cx)+0.5, float64(cy)+0.5, float64(rx), float64(ry))
	fb.strokePolys(p.flatten(), DefaultStroke(), Identity(), c, mode)
}

// FillEllipse fills an ellipse through the current transform.
func (fb *Framebuffer) FillEllipse(cx, cy, rx, ry float64, c Color, mode BlendMode) {
	p := NewPath()
	p.Ellipse(cx, cy, rx, ry)
	fb.fillPolys(transformPolys(p.flatten(), fb.ctm), FillRuleNonZero, c, mode)
}

// StrokeEllipse strokes an ellipse outline of the given width through
// the current transform.
func (fb *Framebuffer) StrokeEllipse(cx, cy, rx, ry, width float64, c Color, mode BlendMode) {
	p := NewPath()
	p.Ellipse(cx, cy, rx, ry)
	st := DefaultStroke()
	st.Width = width
	fb.strokePolys(p.flatten(), st, fb.ctm, c, mode)
}

// DrawEllipseArc outlines an elliptical arc with a one-pixel stroke.
// Angles are in degrees, measured clockwise from twelve o'clock, so zero
// is the top of the ellipse. Ignores the current transform.
func (fb *Framebuffer) DrawEllipseArc(cx, cy, rx, ry int, startDeg, endDeg float64, c Color, mode BlendMode) {
	p := ellipseArcPath(float64(cx), float64(cy), float64(rx), float64(ry), startDeg, endDeg)
	fb.strokePolys(p.flatten(), DefaultStroke(), Identity(), c, mode)
}

// ellipseArcPath samples an elliptical arc into a polyline path. The
// clock-face parameterization places angle t at
// (cx + rx*sin t, cy - ry*cos t); the sweep always runs clockwise from
// start to end, wrapping through a full turn when end <= start.
func ellipseArcPath(cx, cy, rx, ry, startDeg, endDeg float64) *Path {
	const pi2 = 2 * math.Pi
	normalize := func(rad float64) float64 {
		rad = math.Mod(rad, pi2)
		if rad < 0 {
			rad += pi2
		}
		return rad
	}
	s := normalize(startDeg * math.Pi / 180)
	e := normalize(endDeg * math.Pi / 180)

	sweep := e - s
	if e <= s {
		sweep += pi2
	}
	steps := int(sweep / 0.05)
	if steps < 8 {
		steps = 8
	}

	p := NewPath()
	for i := 0; i <= steps; i++ {
		t := s + sweep*float64(i)/float64(steps)
		x := cx + rx*math.Sin(t)
		y := cy - ry*math.Cos(t)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	return p
}
