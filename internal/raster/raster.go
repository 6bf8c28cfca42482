// Package raster provides scanline rasterization for 2D paths.
//
// The rasterizer is output-agnostic: it converts an edge list into
// horizontal coverage spans and hands them to a SpanFunc. The caller
// decides what a span means — blending a color into a framebuffer,
// accumulating a clip mask, or testing coverage.
package raster

import (
	"math"
	"sort"
)

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// NonZero uses the non-zero winding rule.
	NonZero FillRule = iota
	// EvenOdd uses the even-odd rule.
	EvenOdd
)

// SpanFunc receives one horizontal run of coverage: pixels [x0, x1) on row
// y are covered with coverage cov (255 = fully inside).
type SpanFunc func(y, x0, x1 int, cov uint8)

// Edge is a non-horizontal line segment prepared for scanline traversal.
// y0 < y1 always holds; dir preserves the original direction for the
// non-zero winding rule.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    int
}

// NewEdge creates an edge from two points. Horizontal segments contribute
// nothing to scanline fills; the caller should skip them.
func NewEdge(p0, p1 Point) Edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	dy := p1.Y - p0.Y
	var dxdy float64
	if dy != 0 {
		dxdy = (p1.X - p0.X) / dy
	}

	return Edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dxdy: dxdy, dir: dir}
}

// xAt returns the x coordinate of the edge at scanline y.
func (e *Edge) xAt(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// BuildEdges converts point pairs into scanline edges, dropping
// (near-)horizontal segments.
func BuildEdges(segments [][2]Point) []Edge {
	edges := make([]Edge, 0, len(segments))
	for _, s := range segments {
		if math.Abs(s[1].Y-s[0].Y) < 1e-9 {
			continue
		}
		edges = append(edges, NewEdge(s[0], s[1]))
	}
	return edges
}

// crossing is an edge intersection with the current scanline.
type crossing struct {
	x   float64
	dir int
}

// Rasterizer converts edge lists into coverage spans for a clip rectangle
// of w×h pixels. A Rasterizer may be reused across fills but is not safe
// for concurrent use.
type Rasterizer struct {
	width  int
	height int

	crossings []crossing
	coverage  []float64 // one row of accumulated AA coverage
}

// New creates a rasterizer clipped to the given pixel dimensions.
func New(width, height int) *Rasterizer {
	return &Rasterizer{width: width, height: height}
}

// subsamples is the vertical supersampling factor for anti-aliased fills.
const subsamples = 4

// Fill rasterizes the edges with the given fill rule and delivers spans to
// blit. With antialias enabled, coverage is computed by 4x vertical
// supersampling plus fractional horizontal coverage; otherwise spans are
// emitted at full coverage using pixel-center sampling.
func (r *Rasterizer) Fill(edges []Edge, rule FillRule, antialias bool, blit SpanFunc) {
	if len(edges) == 0 || r.width <= 0 || r.height <= 0 {
		return
	}

	yMin, yMax := r.rowBounds(edges)
	if yMin >= yMax {
		return
	}

	if !antialias {
		for y := yMin; y < yMax; y++ {
			r.fillRow(edges, float64(y)+0.5, rule, func(x0, x1 float64) {
				spanInt(x0, x1, r.width, func(ix0, ix1 int) {
					blit(y, ix0, ix1, 255)
				})
			})
		}
		return
	}

	if cap(r.coverage) < r.width {
		r.coverage = make([]float64, r.width)
	}
	cov := r.coverage[:r.width]

	for y := yMin; y < yMax; y++ {
		for i := range cov {
			cov[i] = 0
		}
		touched := false

		for s := 0; s < subsamples; s++ {
			scanY := float64(y) + (float64(s)+0.5)/subsamples
			r.fillRow(edges, scanY, rule, func(x0, x1 float64) {
				touched = true
				accumulate(cov, x0, x1)
			})
		}

		if touched {
			emitRow(cov, y, blit)
		}
	}
}

// rowBounds returns the [min, max) pixel rows touched by the edges,
// clamped to the rasterizer's height.
func (r *Rasterizer) rowBounds(edges []Edge) (int, int) {
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for i := range edges {
		yMin = math.Min(yMin, edges[i].y0)
		yMax = math.Max(yMax, edges[i].y1)
	}

	lo := int(math.Floor(yMin))
	hi := int(math.Ceil(yMax))
	if lo < 0 {
		lo = 0
	}
	if hi > r.height {
		hi = r.height
	}
	return lo, hi
}

// fillRow finds the inside intervals of one scanline and reports them in
// float pixel coordinates.
func (r *Rasterizer) fillRow(edges []Edge, scanY float64, rule FillRule, span func(x0, x1 float64)) {
	r.crossings = r.crossings[:0]
	for i := range edges {
		e := &edges[i]
		if e.y0 <= scanY && scanY < e.y1 {
			r.crossings = append(r.crossings, crossing{x: e.xAt(scanY), dir: e.dir})
		}
	}
	if len(r.crossings) < 2 {
		return
	}

	sort.Slice(r.crossings, func(i, j int) bool {
		return r.crossings[i].x < r.crossings[j].x
	})

	if rule == NonZero {
		winding := 0
		var x0 float64
		for _, c := range r.crossings {
			if winding == 0 {
				x0 = c.x
			}
			winding += c.dir
			if winding == 0 {
				span(x0, c.x)
			}
		}
		return
	}

	for i := 0; i+1 < len(r.crossings); i += 2 {
		span(r.crossings[i].x, r.crossings[i+1].x)
	}
}

// accumulate adds one subsample scanline's interval [x0, x1) to the
// coverage row, with fractional coverage at the span ends.
func accumulate(cov []float64, x0, x1 float64) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > float64(len(cov)) {
		x1 = float64(len(cov))
	}
	if x0 >= x1 {
		return
	}

	const unit = 255.0 / subsamples

	first := int(x0)
	last := int(x1)
	if first == last {
		cov[first] += (x1 - x0) * unit
		return
	}

	cov[first] += (float64(first+1) - x0) * unit
	for x := first + 1; x < last; x++ {
		cov[x] += unit
	}
	if last < len(cov) {
		cov[last] += (x1 - float64(last)) * unit
	}
}

// emitRow compresses a coverage row into runs of equal coverage and
// delivers them as spans.
func emitRow(cov []float64, y int, blit SpanFunc) {
	x := 0
	for x < len(cov) {
		c := quantize(cov[x])
		if c == 0 {
			x++
			continue
		}
		run := x + 1
		for run < len(cov) && quantize(cov[run]) == c {
			run++
		}
		blit(y, x, run, c)
		x = run
	}
}

// quantize clamps accumulated coverage to an 8-bit value.
func quantize(c float64) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 254.5 {
		return 255
	}
	return uint8(c + 0.5)
}

// spanInt converts a float interval to integer pixel bounds, clipped to
// [0, width), using pixel-center rounding.
func spanInt(x0, x1 float64, width int, f func(ix0, ix1 int)) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	ix0 := int(math.Round(x0))
	ix1 := int(math.Round(x1))
	if ix0 < 0 {
		ix0 = 0
	}
	if ix1 > width {
		ix1 = width
	}
	if ix0 < ix1 {
		f(ix0, ix1)
	}
}
