package path

import (
	"math"
	"testing"
)

func TestFlattenLine(t *testing.T) {
	polys := Flatten([]Element{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
	}, Tolerance)

	if len(polys) != 1 {
		t.Fatalf("got %d polylines, want 1", len(polys))
	}
	pl := polys[0]
	if pl.Closed {
		t.Error("open subpath reported closed")
	}
	if len(pl.Points) != 2 || pl.Points[1] != (Point{10, 0}) {
		t.Errorf("points = %v", pl.Points)
	}
}

func TestFlattenCloseAppendsStart(t *testing.T) {
	polys := Flatten([]Element{
		MoveTo{Point{0, 0}},
		LineTo{Point{4, 0}},
		LineTo{Point{4, 4}},
		Close{},
	}, Tolerance)

	if len(polys) != 1 {
		t.Fatalf("got %d polylines, want 1", len(polys))
	}
	pl := polys[0]
	if !pl.Closed {
		t.Error("closed subpath reported open")
	}
	last := pl.Points[len(pl.Points)-1]
	if last != (Point{0, 0}) {
		t.Errorf("close should return to start, last = %v", last)
	}
}

func TestFlattenMoveStartsNewSubpath(t *testing.T) {
	polys := Flatten([]Element{
		MoveTo{Point{0, 0}},
		LineTo{Point{1, 1}},
		MoveTo{Point{10, 10}},
		LineTo{Point{11, 11}},
	}, Tolerance)

	if len(polys) != 2 {
		t.Fatalf("got %d polylines, want 2", len(polys))
	}
	if polys[1].Points[0] != (Point{10, 10}) {
		t.Errorf("second subpath starts at %v", polys[1].Points[0])
	}
}

func TestFlattenQuadEndpoints(t *testing.T) {
	polys := Flatten([]Element{
		MoveTo{Point{0, 0}},
		QuadTo{Control: Point{5, 10}, Point: Point{10, 0}},
	}, Tolerance)

	if len(polys) != 1 {
		t.Fatal("want one polyline")
	}
	pts := polys[0].Points
	if pts[0] != (Point{0, 0}) || pts[len(pts)-1] != (Point{10, 0}) {
		t.Errorf("endpoints not preserved: %v .. %v", pts[0], pts[len(pts)-1])
	}
	if len(pts) < 4 {
		t.Errorf("curve barely flattened: %d points", len(pts))
	}
	// Every flattened point stays within the control polygon's y range.
	for _, p := range pts {
		if p.Y < -1e-9 || p.Y > 5+1e-9 {
			t.Errorf("point %v outside curve hull", p)
		}
	}
}

func TestFlattenCubicTolerance(t *testing.T) {
	coarse := Flatten([]Element{
		MoveTo{Point{0, 0}},
		CubicTo{Point{0, 10}, Point{10, 10}, Point{10, 0}},
	}, 1.0)
	fine := Flatten([]Element{
		MoveTo{Point{0, 0}},
		CubicTo{Point{0, 10}, Point{10, 10}, Point{10, 0}},
	}, 0.01)

	if len(fine[0].Points) <= len(coarse[0].Points) {
		t.Errorf("tighter tolerance should produce more points: %d vs %d",
			len(fine[0].Points), len(coarse[0].Points))
	}
}

func TestFillEdgesImplicitClose(t *testing.T) {
	polys := []Polyline{{
		Points: []Point{{0, 0}, {4, 0}, {4, 4}},
	}}
	edges := FillEdges(polys)
	if len(edges) != 3 {
		t.Fatalf("got %d edges, want 3 (implicit close)", len(edges))
	}
	last := edges[len(edges)-1]
	if last.P0 != (Point{4, 4}) || last.P1 != (Point{0, 0}) {
		t.Errorf("closing edge = %v", last)
	}
}

func TestFillEdgesSkipsDegenerate(t *testing.T) {
	polys := []Polyline{{Points: []Point{{1, 1}}}}
	if edges := FillEdges(polys); len(edges) != 0 {
		t.Errorf("single point produced %d edges", len(edges))
	}
}

func TestPointHelpers(t *testing.T) {
	a := Point{3, 4}
	if got := a.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := a.Lerp(Point{5, 8}, 0.5); got != (Point{4, 6}) {
		t.Errorf("Lerp = %v", got)
	}
	if got := (Point{1, 0}).Dot(Point{0, 1}); got != 0 {
		t.Errorf("Dot = %v, want 0", got)
	}
}
