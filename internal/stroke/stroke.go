// Package stroke converts flattened polylines into fill polygons that
// cover the stroked area, applying width, caps, joins, and the miter
// limit. The resulting polygons are all wound counter-clockwise so that
// overlapping pieces (segment quads, join wedges, caps) union cleanly
// under the non-zero fill rule.
package stroke

import (
	"math"

	"github.com/osdgfx/osdbuf/internal/path"
)

// Cap specifies the shape of line endpoints.
type Cap int

const (
	// CapButt specifies a flat line cap.
	CapButt Cap = iota
	// CapRound specifies a rounded line cap.
	CapRound
	// CapSquare specifies a square line cap.
	CapSquare
)

// Join specifies the shape of line joins.
type Join int

const (
	// JoinMiter specifies a sharp (mitered) join.
	JoinMiter Join = iota
	// JoinRound specifies a rounded join.
	JoinRound
	// JoinBevel specifies a beveled join.
	JoinBevel
)

// Options describes a stroke style.
type Options struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// DefaultOptions returns a solid 1-pixel stroke with butt caps and miter
// joins.
func DefaultOptions() Options {
	return Options{Width: 1, Cap: CapButt, Join: JoinMiter, MiterLimit: 4}
}

// Outline expands the polylines into closed polygons whose non-zero fill
// equals the stroked area.
func Outline(polys []path.Polyline, o Options) []path.Polyline {
	hw := o.Width / 2
	if hw <= 0 {
		return nil
	}
	if o.MiterLimit < 1 {
		o.MiterLimit = 1
	}

	var out []path.Polyline
	for _, pl := range polys {
		pts := dedupe(pl.Points)
		if len(pts) < 2 {
			continue
		}
		// A closed polyline whose last point repeats the first is treated
		// as the ring without the duplicate.
		closed := pl.Closed
		if pts[0] == pts[len(pts)-1] {
			closed = true
			pts = pts[:len(pts)-1]
			if len(pts) < 2 {
				continue
			}
		}
		out = appendStroked(out, pts, closed, hw, o)
	}
	return out
}

// appendStroked emits the segment quads, joins, and caps for one subpath.
func appendStroked(out []path.Polyline, pts []path.Point, closed bool, hw float64, o Options) []path.Polyline {
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}

	for i := 0; i < segs; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		d := p1.Sub(p0)
		if d.Length() < 1e-12 {
			continue
		}
		nx, ny := normal(d)
		quad := []path.Point{
			{X: p0.X + nx*hw, Y: p0.Y + ny*hw},
			{X: p0.X - nx*hw, Y: p0.Y - ny*hw},
			{X: p1.X - nx*hw, Y: p1.Y - ny*hw},
			{X: p1.X + nx*hw, Y: p1.Y + ny*hw},
		}
		out = append(out, ring(quad))
	}

	joins := segs - 1
	if closed {
		joins = segs
	}
	for j := 0; j < joins; j++ {
		v := pts[(j+1)%n]
		prev := pts[j]
		next := pts[(j+2)%n]
		out = appendJoin(out, v, prev, next, hw, o)
	}

	if !closed {
		out = appendCap(out, pts[0], pts[1], hw, o.Cap)
		out = appendCap(out, pts[n-1], pts[n-2], hw, o.Cap)
	}
	return out
}

// appendJoin emits the wedge filling the outer corner at vertex v between
// the segments prev→v and v→next.
func appendJoin(out []path.Polyline, v, prev, next path.Point, hw float64, o Options) []path.Polyline {
	d0 := v.Sub(prev)
	d1 := next.Sub(v)
	if d0.Length() < 1e-12 || d1.Length() < 1e-12 {
		return out
	}

	cross := d0.X*d1.Y - d0.Y*d1.X
	if math.Abs(cross) < 1e-12 {
		return out // collinear, segment quads already cover the joint
	}

	// Unit normals pointing to the outer side of the turn.
	n0x, n0y := normal(d0)
	n1x, n1y := normal(d1)
	sign := 1.0
	if cross > 0 {
		sign = -1
	}
	a := path.Point{X: v.X + n0x*hw*sign, Y: v.Y + n0y*hw*sign}
	b := path.Point{X: v.X + n1x*hw*sign, Y: v.Y + n1y*hw*sign}

	switch o.Join {
	case JoinRound:
		return append(out, ring(arcWedge(v, a, b, hw)))
	case JoinMiter:
		bis := path.Point{X: n0x*sign + n1x*sign, Y: n0y*sign + n1y*sign}
		bl := bis.Length()
		if bl > 1e-12 {
			bis = bis.Mul(1 / bl)
			cosHalf := bis.X*n0x*sign + bis.Y*n0y*sign
			if cosHalf > 1e-6 && 1/cosHalf <= o.MiterLimit {
				tip := path.Point{X: v.X + bis.X*hw/cosHalf, Y: v.Y + bis.Y*hw/cosHalf}
				return append(out, ring([]path.Point{v, a, tip, b}))
			}
		}
		fallthrough
	default: // JoinBevel, or miter over the limit
		return append(out, ring([]path.Point{v, a, b}))
	}
}

// appendCap emits the cap polygon at endpoint p; q is the neighboring
// point that fixes the outgoing direction.
func appendCap(out []path.Polyline, p, q path.Point, hw float64, c Cap) []path.Polyline {
	if c == CapButt {
		return out
	}
	d := p.Sub(q)
	if d.Length() < 1e-12 {
		return out
	}
	t := d.Mul(1 / d.Length())
	nx, ny := normal(d)
	a := path.Point{X: p.X + nx*hw, Y: p.Y + ny*hw}
	b := path.Point{X: p.X - nx*hw, Y: p.Y - ny*hw}

	if c == CapSquare {
		ext := path.Point{X: t.X * hw, Y: t.Y * hw}
		return append(out, ring([]path.Point{
			a, b,
			{X: b.X + ext.X, Y: b.Y + ext.Y},
			{X: a.X + ext.X, Y: a.Y + ext.Y},
		}))
	}

	// Round cap: semicircle from a to b. The rim points are diametrically
	// opposite, so arcWedge's shortest-sweep rule cannot pick a side; the
	// sweep is fixed here to pass through the outward tangent point
	// p + t*hw rather than folding back over the segment.
	a0 := math.Atan2(a.Y-p.Y, a.X-p.X)
	steps := int(math.Floor(math.Pi/0.25)) + 2
	pts := make([]path.Point, 0, steps+2)
	pts = append(pts, p)
	for i := 0; i <= steps; i++ {
		ang := a0 - math.Pi*float64(i)/float64(steps)
		pts = append(pts, path.Point{X: p.X + hw*math.Cos(ang), Y: p.Y + hw*math.Sin(ang)})
	}
	return append(out, ring(pts))
}

// arcWedge builds a pie-slice polygon centered at c from point a to point
// b, both at radius r, sweeping the shorter way around.
func arcWedge(c, a, b path.Point, r float64) []path.Point {
	a0 := math.Atan2(a.Y-c.Y, a.X-c.X)
	a1 := math.Atan2(b.Y-c.Y, b.X-c.X)
	sweep := a1 - a0
	for sweep <= -math.Pi {
		sweep += 2 * math.Pi
	}
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}

	steps := int(math.Abs(sweep)/0.25) + 2
	pts := make([]path.Point, 0, steps+2)
	pts = append(pts, c)
	for i := 0; i <= steps; i++ {
		t := a0 + sweep*float64(i)/float64(steps)
		pts = append(pts, path.Point{X: c.X + r*math.Cos(t), Y: c.Y + r*math.Sin(t)})
	}
	return pts
}

// normal returns the unit normal of direction d.
func normal(d path.Point) (float64, float64) {
	l := d.Length()
	return -d.Y / l, d.X / l
}

// ring closes pts into a counter-clockwise polygon. Consistent winding
// lets overlapping stroke pieces union under the non-zero rule instead of
// canceling.
func ring(pts []path.Point) path.Polyline {
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return path.Polyline{Points: pts, Closed: true}
}

// signedArea returns twice the signed area of the polygon (positive when
// counter-clockwise in a y-down coordinate system with our edge rule).
func signedArea(pts []path.Point) float64 {
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum
}

// dedupe drops consecutive duplicate points.
func dedupe(pts []path.Point) []path.Point {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
