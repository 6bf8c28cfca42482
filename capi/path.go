package capi

import (
	"github.com/osdgfx/osdbuf"
)

// CreatePath allocates an empty path and returns its handle.
func CreatePath() int32 {
	return paths.Put(&pathEntry{p: osdbuf.NewPath()})
}

// DestroyPath invalidates the handle. Destroying an unknown handle is a
// no-op.
func DestroyPath(h int32) {
	paths.Remove(h)
}

// PathMoveTo starts a new subpath at (x, y).
func PathMoveTo(h int32, x, y float32) {
	withPath(h, func(p *osdbuf.Path) {
		p.MoveTo(float64(x), float64(y))
	})
}

// PathLineTo appends a line to (x, y).
func PathLineTo(h int32, x, y float32) {
	withPath(h, func(p *osdbuf.Path) {
		p.LineTo(float64(x), float64(y))
	})
}

// PathAddCurve appends a cubic Bezier curve. The wire order puts the
// end point first and the control points after; the engine-level
// CubicTo takes controls first, so the arguments are reordered here.
func PathAddCurve(h int32, x, y, cp1x, cp1y, cp2x, cp2y float32) {
	withPath(h, func(p *osdbuf.Path) {
		p.CubicTo(float64(cp1x), float64(cp1y), float64(cp2x), float64(cp2y), float64(x), float64(y))
	})
}

// PathAddQuadCurve appends a quadratic Bezier curve. End point first,
// control point after, mirroring PathAddCurve.
func PathAddQuadCurve(h int32, x, y, cpx, cpy float32) {
	withPath(h, func(p *osdbuf.Path) {
		p.QuadraticTo(float64(cpx), float64(cpy), float64(x), float64(y))
	})
}

// PathAddArc appends a circular arc around (cx, cy), angles in radians.
// Non-zero clockwise sweeps in the positive angle direction.
func PathAddArc(h int32, cx, cy, r, start, end float32, clockwise int32) {
	withPath(h, func(p *osdbuf.Path) {
		p.ArcTo(float64(cx), float64(cy), float64(r), float64(start), float64(end), clockwise != 0)
	})
}

// PathClose closes the current subpath.
func PathClose(h int32) {
	withPath(h, func(p *osdbuf.Path) {
		p.Close()
	})
}

// PathAppend concatenates the commands of src onto dst. Either handle
// being unknown makes the call a no-op; appending a path to itself is
// safe.
func PathAppend(dst, src int32) {
	clone, ok := snapshotPath(src)
	if !ok {
		return
	}
	withPath(dst, func(p *osdbuf.Path) {
		p.Append(clone)
	})
}

// PathRect creates a new path containing a rectangle.
func PathRect(x, y, w, h float32) int32 {
	id := CreatePath()
	withPath(id, func(p *osdbuf.Path) {
		p.Rectangle(float64(x), float64(y), float64(w), float64(h))
	})
	return id
}

// PathOval creates a new path containing an ellipse inscribed in the
// rectangle (x, y, w, h).
func PathOval(x, y, w, h float32) int32 {
	id := CreatePath()
	withPath(id, func(p *osdbuf.Path) {
		p.Oval(float64(x), float64(y), float64(w), float64(h))
	})
	return id
}

// PathRoundedRect creates a new path containing a rounded rectangle.
func PathRoundedRect(x, y, w, h, radius float32) int32 {
	id := CreatePath()
	withPath(id, func(p *osdbuf.Path) {
		p.RoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(radius))
	})
	return id
}

// PathSetLineWidth sets the stroke width used by PathStroke.
func PathSetLineWidth(h int32, width float32) {
	withPath(h, func(p *osdbuf.Path) {
		p.Stroke.Width = float64(width)
	})
}

// PathSetLineCap sets the stroke cap code: 0 butt, 1 round, 2 square.
func PathSetLineCap(h int32, cap uint8) {
	withPath(h, func(p *osdbuf.Path) {
		p.Stroke.Cap = osdbuf.LineCapOf(cap)
	})
}

// PathSetLineJoin sets the stroke join code: 0 miter, 1 round, 2 bevel.
func PathSetLineJoin(h int32, join uint8) {
	withPath(h, func(p *osdbuf.Path) {
		p.Stroke.Join = osdbuf.LineJoinOf(join)
	})
}

// PathSetLineDash sets the dash pattern used by PathStroke. An empty
// interval list clears the pattern (solid stroke).
func PathSetLineDash(h int32, intervals []float32, phase float32) {
	withPath(h, func(p *osdbuf.Path) {
		if len(intervals) == 0 {
			p.Stroke.Dash = nil
			return
		}
		iv := make([]float64, len(intervals))
		for i, v := range intervals {
			iv[i] = float64(v)
		}
		p.Stroke.Dash = osdbuf.NewDash(iv, float64(phase))
	})
}

// PathSetEoFillRule switches the path between even-odd (non-zero value)
// and non-zero winding (zero) fills.
func PathSetEoFillRule(h int32, value int32) {
	withPath(h, func(p *osdbuf.Path) {
		if value != 0 {
			p.FillRule = osdbuf.FillRuleEvenOdd
		} else {
			p.FillRule = osdbuf.FillRuleNonZero
		}
	})
}

// PathFill fills the path into the framebuffer through its transform,
// clip, and global alpha, honoring the path's fill rule.
func PathFill(fbHandle, pathHandle int32, color uint32, blend uint8) {
	clone, ok := snapshotPath(pathHandle)
	if !ok {
		return
	}
	withFB(fbHandle, func(fb *osdbuf.Framebuffer) {
		fb.FillPath(clone, osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// PathStroke strokes the path using its stored width, cap, join, and
// dash pattern.
func PathStroke(fbHandle, pathHandle int32, color uint32, blend uint8) {
	clone, ok := snapshotPath(pathHandle)
	if !ok {
		return
	}
	withFB(fbHandle, func(fb *osdbuf.Framebuffer) {
		fb.StrokePath(clone, osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// PathHitTest reports whether (x, y) lies inside the path's own
// geometry under its fill rule: 1 inside, 0 outside or unknown handle.
func PathHitTest(h int32, x, y float32) int32 {
	clone, ok := snapshotPath(h)
	if !ok {
		return 0
	}
	if clone.Contains(float64(x), float64(y)) {
		return 1
	}
	return 0
}

// PathGetBounds returns the tight bounding box of the path's geometry.
// ok is 0 for an unknown handle or a path with no drawable geometry.
func PathGetBounds(h int32) (x, y, w, ht float32, ok int32) {
	clone, found := snapshotPath(h)
	if !found {
		return 0, 0, 0, 0, 0
	}
	bx, by, bw, bh, has := clone.Bounds()
	if !has {
		return 0, 0, 0, 0, 0
	}
	return float32(bx), float32(by), float32(bw), float32(bh), 1
}

// PathAddClip intersects the framebuffer's clip with the path's filled
// area, transformed through the current matrix. The clip only narrows;
// GStatePop restores the previous one.
func PathAddClip(fbHandle, pathHandle int32) {
	clone, ok := snapshotPath(pathHandle)
	if !ok {
		return
	}
	withFB(fbHandle, func(fb *osdbuf.Framebuffer) {
		fb.ClipPath(clone)
	})
}
