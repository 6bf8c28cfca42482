package raster

import "testing"

// rect builds the four edges of an axis-aligned rectangle wound clockwise.
func rect(x0, y0, x1, y1 float64) []Edge {
	pts := []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	segs := [][2]Point{
		{pts[0], pts[1]},
		{pts[1], pts[2]},
		{pts[2], pts[3]},
		{pts[3], pts[0]},
	}
	return BuildEdges(segs)
}

// grid collects coverage into a w×h byte grid.
type grid struct {
	w, h int
	cov  []uint8
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, cov: make([]uint8, w*h)}
}

func (g *grid) span(y, x0, x1 int, cov uint8) {
	for x := x0; x < x1; x++ {
		if c := g.cov[y*g.w+x]; cov > c {
			g.cov[y*g.w+x] = cov
		}
	}
}

func (g *grid) at(x, y int) uint8 { return g.cov[y*g.w+x] }

func TestFillSquareNoAA(t *testing.T) {
	g := newGrid(5, 5)
	r := New(5, 5)
	r.Fill(rect(1, 1, 3, 3), NonZero, false, g.span)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			got := g.at(x, y)
			if inside && got != 255 {
				t.Errorf("(%d,%d) = %d, want 255", x, y, got)
			}
			if !inside && got != 0 {
				t.Errorf("(%d,%d) = %d, want 0", x, y, got)
			}
		}
	}
}

func TestFillSquareAAFullCoverage(t *testing.T) {
	// Pixel-aligned square: AA must still produce full coverage inside.
	g := newGrid(5, 5)
	r := New(5, 5)
	r.Fill(rect(1, 1, 4, 4), NonZero, true, g.span)

	if got := g.at(2, 2); got != 255 {
		t.Errorf("interior coverage = %d, want 255", got)
	}
	if got := g.at(0, 2); got != 0 {
		t.Errorf("exterior coverage = %d, want 0", got)
	}
}

func TestFillHalfPixelAA(t *testing.T) {
	// A square covering the left half of column 1 gives ~50% coverage there.
	g := newGrid(4, 4)
	r := New(4, 4)
	r.Fill(rect(1, 1, 1.5, 3), NonZero, true, g.span)

	got := g.at(1, 2)
	if got < 120 || got > 136 {
		t.Errorf("half-pixel coverage = %d, want ~128", got)
	}
}

func TestFillRuleNestedSquares(t *testing.T) {
	// Two nested squares wound the same way.
	edges := append(rect(0, 0, 8, 8), rect(2, 2, 6, 6)...)

	nz := newGrid(8, 8)
	New(8, 8).Fill(edges, NonZero, false, nz.span)
	if nz.at(4, 4) != 255 {
		t.Error("non-zero should fill the inner square")
	}

	eo := newGrid(8, 8)
	New(8, 8).Fill(edges, EvenOdd, false, eo.span)
	if eo.at(4, 4) != 0 {
		t.Error("even-odd should leave the inner square empty")
	}
	if eo.at(1, 4) != 255 {
		t.Error("even-odd should fill the ring")
	}
}

func TestFillClipsToBounds(t *testing.T) {
	g := newGrid(4, 4)
	r := New(4, 4)
	r.Fill(rect(-10, -10, 10, 10), NonZero, false, g.span)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if g.at(x, y) != 255 {
				t.Fatalf("(%d,%d) = %d, want 255", x, y, g.at(x, y))
			}
		}
	}
}

func TestBuildEdgesDropsHorizontals(t *testing.T) {
	segs := [][2]Point{
		{{0, 0}, {5, 0}},
		{{5, 0}, {5, 5}},
	}
	edges := BuildEdges(segs)
	if len(edges) != 1 {
		t.Errorf("got %d edges, want 1 (horizontal dropped)", len(edges))
	}
}

func TestFillEmptyEdges(t *testing.T) {
	g := newGrid(2, 2)
	New(2, 2).Fill(nil, NonZero, true, g.span)
	for _, c := range g.cov {
		if c != 0 {
			t.Fatal("empty edge list must not emit spans")
		}
	}
}
