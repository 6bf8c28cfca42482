// Package path provides curve flattening and subpath extraction for the
// rasterizer. Types are kept independent of the root package to avoid an
// import cycle.
package path

import "math"

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Tolerance is the default maximum distance from a flattened curve to the
// true curve, in pixels.
const Tolerance = 0.1

// Element represents one command of a path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct{ Point Point }

func (MoveTo) isElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// Polyline is one flattened subpath. Closed records whether the subpath
// ended with an explicit Close; fills treat every subpath as closed, but
// strokes cap open polylines and join closed ones all the way around.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts a path into per-subpath polylines, flattening curves to
// line segments within the given tolerance. Subpaths never share points:
// a MoveTo always starts a fresh polyline, so no connecting edge is ever
// produced between separate subpaths.
func Flatten(elements []Element, tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = Tolerance
	}

	var out []Polyline
	var cur []Point

	flush := func(closed bool) {
		if len(cur) >= 2 {
			out = append(out, Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			cur = append(cur, e.Point)

		case LineTo:
			// A LineTo without a preceding MoveTo acts as an implicit move.
			cur = append(cur, e.Point)

		case QuadTo:
			if len(cur) == 0 {
				cur = append(cur, e.Point)
				break
			}
			flattenQuadratic(cur[len(cur)-1], e.Control, e.Point, tolerance, &cur)

		case CubicTo:
			if len(cur) == 0 {
				cur = append(cur, e.Point)
				break
			}
			flattenCubic(cur[len(cur)-1], e.Control1, e.Control2, e.Point, tolerance, &cur)

		case Close:
			if len(cur) >= 2 {
				// Close back to the subpath start before flushing.
				if cur[len(cur)-1] != cur[0] {
					cur = append(cur, cur[0])
				}
				start := cur[0]
				flush(true)
				// A command after Close continues from the start point.
				cur = append(cur, start)
			}
		}
	}
	flush(false)

	return out
}

// Edge is a line segment used by the rasterizer.
type Edge struct {
	P0, P1 Point
}

// FillEdges returns the edge list for filling: every subpath is implicitly
// closed back to its own start point.
func FillEdges(polys []Polyline) []Edge {
	var edges []Edge
	for _, pl := range polys {
		pts := pl.Points
		if len(pts) < 2 {
			continue
		}
		for i := 0; i+1 < len(pts); i++ {
			edges = append(edges, Edge{P0: pts[i], P1: pts[i+1]})
		}
		if pts[len(pts)-1] != pts[0] {
			edges = append(edges, Edge{P0: pts[len(pts)-1], P1: pts[0]})
		}
	}
	return edges
}

// Helper methods for Point.

func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve,
// appending interior and end points to out.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64, out *[]Point) {
	if distanceToLine(p1, p0, p2) < tolerance {
		*out = append(*out, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, q2, tolerance, out)
	flattenQuadratic(q2, q1, p2, tolerance, out)
}

// flattenCubic recursively subdivides a cubic Bezier curve using
// de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, out *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		*out = append(*out, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, out)
	flattenCubic(s, r1, q2, p3, tolerance, out)
}

// distanceToLine calculates the perpendicular distance from point p to the
// line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)

	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}
