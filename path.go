package osdbuf

import (
	"math"

	ipath "github.com/osdgfx/osdbuf/internal/path"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path: an ordered sequence of drawing commands
// plus path-level drawing properties. The fill rule and stroke parameters
// travel with the path, so the same path can be filled and stroked
// independently using its own stored settings.
type Path struct {
	elements []PathElement
	start    Point // starting point of current subpath
	current  Point // current point

	// FillRule selects the winding convention for fills and hit-tests.
	// The default is FillRuleNonZero.
	FillRule FillRule

	// Stroke holds the stroke parameters used by stroke operations.
	Stroke Stroke
}

// NewPath creates a new empty path with default fill rule and stroke.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
		Stroke:   DefaultStroke(),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve to (x, y) with control point
// (cx, cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve to (x, y) with control points
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// ArcTo appends a circular arc around center (cx, cy) with the given
// radius, from angle start to angle end in radians. With clockwise set,
// the sweep runs clockwise (positive angle direction in the y-down
// coordinate system). The arc is sampled into line segments and starts
// its own subpath.
func (p *Path) ArcTo(cx, cy, r, start, end float64, clockwise bool) {
	sweep := end - start
	if clockwise {
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
	} else {
		if sweep > 0 {
			sweep -= 2 * math.Pi
		}
	}

	steps := int(math.Abs(sweep) * math.Max(r, 1) / 2)
	if steps < 4 {
		steps = 4
	}
	for i := 0; i <= steps; i++ {
		t := start + sweep*float64(i)/float64(steps)
		x := cx + r*math.Cos(t)
		y := cy + r*math.Sin(t)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Append concatenates another path's commands onto this path. Fill rule
// and stroke parameters of the destination are unchanged.
func (p *Path) Append(other *Path) {
	p.elements = append(p.elements, other.elements...)
	p.start = other.start
	p.current = other.current
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Clone creates a deep copy of the path, including its fill rule and
// stroke parameters.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	result.FillRule = p.FillRule
	result.Stroke = p.Stroke.Clone()
	return result
}

// Transform returns a copy of the path with all points mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	result := p.Clone()
	result.elements = result.elements[:0]
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// kappa is the control-point offset factor approximating a quarter circle
// with a cubic Bezier: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Ellipse adds an ellipse centered at (cx, cy) with radii rx and ry.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * kappa
	oy := ry * kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Circle adds a circle centered at (cx, cy) with radius r.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Oval adds an ellipse inscribed in the rectangle (x, y, w, h).
func (p *Path) Oval(x, y, w, h float64) {
	p.Ellipse(x+w/2, y+h/2, w/2, h/2)
}

// RoundedRectangle adds a rectangle with rounded corners. The radius
// clamps to half the smaller dimension; a radius under 0.5 degrades to a
// plain rectangle.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	r = math.Max(0, math.Min(r, math.Min(w/2, h/2)))
	if r < 0.5 {
		p.Rectangle(x, y, w, h)
		return
	}
	kr := kappa * r

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+kr, y, x+w, y+r-kr, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+kr, x+w-r+kr, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-kr, y+h, x, y+h-r+kr, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-kr, x+r-kr, y, x+r, y)
	p.Close()
}

// Bounds returns the axis-aligned tight bounding box of the untransformed
// geometry (curves measured through their flattened segments). ok is
// false for a path with no drawable geometry.
func (p *Path) Bounds() (x, y, w, h float64, ok bool) {
	polys := p.flatten()
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	found := false
	for _, pl := range polys {
		for _, pt := range pl.Points {
			found = true
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if !found {
		return 0, 0, 0, 0, false
	}
	return minX, minY, maxX - minX, maxY - minY, true
}

// Contains reports whether the point (x, y) lies inside the path's own
// geometry (no transform applied), honoring the path's fill rule.
func (p *Path) Contains(x, y float64) bool {
	edges := ipath.FillEdges(p.flatten())
	winding := 0
	crossings := 0
	for _, e := range edges {
		p0, p1 := e.P0, e.P1
		dir := 1
		if p0.Y > p1.Y {
			dir = -1
			p0, p1 = p1, p0
		}
		if p0.Y <= y && y < p1.Y {
			xAt := p0.X + (y-p0.Y)*(p1.X-p0.X)/(p1.Y-p0.Y)
			if x < xAt {
				winding += dir
				crossings++
			}
		}
	}
	if p.FillRule == FillRuleEvenOdd {
		return crossings%2 != 0
	}
	return winding != 0
}

// flatten converts the path to per-subpath polylines.
func (p *Path) flatten() []ipath.Polyline {
	return ipath.Flatten(p.internalElements(), ipath.Tolerance)
}

// internalElements converts to the internal element representation used
// by the flattener and rasterizer.
func (p *Path) internalElements() []ipath.Element {
	out := make([]ipath.Element, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, ipath.MoveTo{Point: ipath.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			out = append(out, ipath.LineTo{Point: ipath.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			out = append(out, ipath.QuadTo{
				Control: ipath.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   ipath.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case CubicTo:
			out = append(out, ipath.CubicTo{
				Control1: ipath.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: ipath.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    ipath.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			out = append(out, ipath.Close{})
		}
	}
	return out
}
