package capi

import (
	"github.com/osdgfx/osdbuf"
)

// Fill overwrites every pixel with the packed color.
func Fill(h int32, color uint32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.Fill(osdbuf.Color(color))
	})
}

// FillOver source-over blends the packed color over every pixel.
func FillOver(h int32, color uint32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.FillOver(osdbuf.Color(color))
	})
}

// SetPixel stores the packed color at (x, y). Out-of-bounds writes are
// ignored.
func SetPixel(h, x, y int32, color uint32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.SetPixel(int(x), int(y), osdbuf.Color(color))
	})
}

// GetPixel returns the packed color at (x, y), or 0 outside the bounds
// or for an unknown handle.
func GetPixel(h, x, y int32) uint32 {
	var c osdbuf.Color
	withFB(h, func(fb *osdbuf.Framebuffer) {
		c = fb.GetPixel(int(x), int(y))
	})
	return uint32(c)
}

// SetPixelOver source-over blends the packed color onto (x, y).
func SetPixelOver(h, x, y int32, color uint32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.SetPixelOver(int(x), int(y), osdbuf.Color(color))
	})
}

// CSetPixel stores the packed color at coordinates relative to the
// framebuffer center.
func CSetPixel(h, x, y int32, color uint32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.SetPixel(fb.Width()/2+int(x), fb.Height()/2+int(y), osdbuf.Color(color))
	})
}

// CGetPixel reads the packed color at coordinates relative to the
// framebuffer center.
func CGetPixel(h, x, y int32) uint32 {
	var c osdbuf.Color
	withFB(h, func(fb *osdbuf.Framebuffer) {
		c = fb.GetPixel(fb.Width()/2+int(x), fb.Height()/2+int(y))
	})
	return uint32(c)
}

// Line draws a one-pixel line between integer endpoints.
func Line(h, x0, y0, x1, y1 int32, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.DrawLine(int(x0), int(y0), int(x1), int(y1), osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// LineStroke strokes a line with explicit width, cap code (0 butt,
// 1 round, 2 square), and join code (0 miter, 1 round, 2 bevel).
func LineStroke(h int32, x0, y0, x1, y1, width float32, cap, join uint8, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.StrokeLine(float64(x0), float64(y0), float64(x1), float64(y1), float64(width),
			osdbuf.LineCapOf(cap), osdbuf.LineJoinOf(join),
			osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// HLine fills a one-pixel horizontal run of w pixels starting at (x, y).
func HLine(h, x, y, w int32, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.DrawHLine(int(x), int(y), int(w), osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// VLine fills a one-pixel vertical run of ht pixels starting at (x, y).
func VLine(h, x, y, ht int32, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.DrawVLine(int(x), int(y), int(ht), osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// Rect outlines a rectangle with one-pixel edges inside the bounds.
func Rect(h, x, y, w, ht int32, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.DrawRect(int(x), int(y), int(w), int(ht), osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// FillRect fills a rectangle through the current transform.
func FillRect(h int32, x, y, w, ht float32, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.FillRect(float64(x), float64(y), float64(w), float64(ht),
			osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// RectStroke strokes a rectangle border of the given width, inset so the
// stroke stays inside the nominal box.
func RectStroke(h int32, x, y, w, ht, width float32, join uint8, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.StrokeRect(float64(x), float64(y), float64(w), float64(ht), float64(width),
			osdbuf.LineJoinOf(join), osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// RoundedRect outlines a rounded rectangle with a one-pixel stroke.
func RoundedRect(h, x, y, w, ht, radius int32, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.DrawRoundedRect(int(x), int(y), int(w), int(ht), int(radius),
			osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// FillRoundedRect fills a rounded rectangle through the current
// transform.
func FillRoundedRect(h int32, x, y, w, ht, radius float32, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.FillRoundedRect(float64(x), float64(y), float64(w), float64(ht), float64(radius),
			osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// StrokeRoundedRect strokes a rounded rectangle border of the given
// width, inset so the stroke stays inside the nominal box.
func StrokeRoundedRect(h int32, x, y, w, ht, radius, width float32, join uint8, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.StrokeRoundedRect(float64(x), float64(y), float64(w), float64(ht),
			float64(radius), float64(width),
			osdbuf.LineJoinOf(join), osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// Circle outlines a circle with a one-pixel stroke.
func Circle(h, cx, cy, r int32, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.DrawCircle(int(cx), int(cy), int(r), osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// FillCircle fills a circle through the current transform.
func FillCircle(h int32, cx, cy, r float32, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.FillCircle(float64(cx), float64(cy), float64(r),
			osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// Ellipse outlines an ellipse with a one-pixel stroke.
func Ellipse(h, cx, cy, rx, ry int32, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.DrawEllipse(int(cx), int(cy), int(rx), int(ry),
			osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// FillEllipse fills an ellipse through the current transform.
func FillEllipse(h int32, cx, cy, rx, ry float32, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.FillEllipse(float64(cx), float64(cy), float64(rx), float64(ry),
			osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// EllipseStroke strokes an ellipse outline of the given width through
// the current transform.
func EllipseStroke(h int32, cx, cy, rx, ry, width float32, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.StrokeEllipse(float64(cx), float64(cy), float64(rx), float64(ry), float64(width),
			osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// EllipseArc outlines an elliptical arc with a one-pixel stroke. Angles
// are in degrees, clockwise from twelve o'clock.
func EllipseArc(h, cx, cy, rx, ry int32, startDeg, endDeg float64, color uint32, blend uint8) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.DrawEllipseArc(int(cx), int(cy), int(rx), int(ry), startDeg, endDeg,
			osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// FillPath decodes a byte-encoded path and fills it (non-zero rule)
// through the current transform.
func FillPath(h int32, data []byte, color uint32, blend uint8) {
	if len(data) == 0 {
		return
	}
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.FillPath(osdbuf.DecodePath(data), osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// StrokePath decodes a byte-encoded path and strokes it with explicit
// width, cap, and join codes through the current transform.
func StrokePath(h int32, data []byte, width float32, cap, join uint8, color uint32, blend uint8) {
	if len(data) == 0 {
		return
	}
	withFB(h, func(fb *osdbuf.Framebuffer) {
		st := osdbuf.DefaultStroke()
		st.Width = float64(width)
		st.Cap = osdbuf.LineCapOf(cap)
		st.Join = osdbuf.LineJoinOf(join)
		fb.StrokePathWith(osdbuf.DecodePath(data), st, osdbuf.Color(color), osdbuf.BlendModeOf(blend))
	})
}

// BlitRGBA copies a straight-RGBA image onto the framebuffer at
// (dstX, dstY), source-over blending when blend is non-zero. Short
// source slices are rejected.
func BlitRGBA(h int32, src []byte, srcW, srcH, dstX, dstY, blend int32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.Blit(src, int(srcW), int(srcH), int(dstX), int(dstY), blend != 0)
	})
}

// Scroll shifts the framebuffer content by (dx, dy); vacated areas
// become transparent.
func Scroll(h, dx, dy int32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.Scroll(int(dx), int(dy))
	})
}

// DrawCheckerBoard fills the buffer with the light/dark transparency
// checker pattern.
func DrawCheckerBoard(h, size int32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.DrawCheckerboard(int(size))
	})
}

// ApplyYUV422Compensation runs chroma-pair compensation over the given
// region. See Framebuffer.ApplyYUV422Compensation.
func ApplyYUV422Compensation(h, x, y, w, ht int32) {
	withFB(h, func(fb *osdbuf.Framebuffer) {
		fb.ApplyYUV422Compensation(int(x), int(y), int(w), int(ht))
	})
}
