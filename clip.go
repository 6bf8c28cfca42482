package osdbuf

import (
	ipath "github.com/osdgfx/osdbuf/internal/path"
	"github.com/osdgfx/osdbuf/internal/raster"
)

// ClipMask is a per-pixel coverage mask the size of a framebuffer.
// 255 means fully visible, 0 fully clipped. Masks are immutable once
// built; Intersect allocates a new mask, so graphics-state snapshots can
// share mask pointers safely.
type ClipMask struct {
	width  int
	height int
	cov    []uint8
}

// newClipMask rasterizes polylines (already in device space) into a
// fresh mask.
func newClipMask(width, height int, polys []ipath.Polyline, rule FillRule, antialias bool) *ClipMask {
	m := &ClipMask{
		width:  width,
		height: height,
		cov:    make([]uint8, width*height),
	}
	edges := fillEdges(polys)
	r := raster.New(width, height)
	r.Fill(edges, rule.toRaster(), antialias, func(y, x0, x1 int, cov uint8) {
		row := m.cov[y*width : (y+1)*width]
		for x := x0; x < x1; x++ {
			if cov > row[x] {
				row[x] = cov
			}
		}
	})
	return m
}

// Intersect returns a new mask whose coverage is the per-pixel product
// of both masks. A nil receiver acts as a fully open mask.
func (m *ClipMask) Intersect(other *ClipMask) *ClipMask {
	if m == nil {
		return other
	}
	if other == nil {
		return m
	}
	out := &ClipMask{
		width:  m.width,
		height: m.height,
		cov:    make([]uint8, len(m.cov)),
	}
	for i, c := range m.cov {
		out.cov[i] = uint8((uint32(c)*uint32(other.cov[i]) + 127) / 255)
	}
	return out
}

// at returns the coverage at (x, y); a nil mask is fully open.
func (m *ClipMask) at(x, y int) uint8 {
	if m == nil {
		return 255
	}
	return m.cov[y*m.width+x]
}

// fillEdges converts polylines into rasterizer edges, implicitly closing
// every subpath.
func fillEdges(polys []ipath.Polyline) []raster.Edge {
	segs := make([][2]raster.Point, 0, 64)
	for _, e := range ipath.FillEdges(polys) {
		segs = append(segs, [2]raster.Point{
			{X: e.P0.X, Y: e.P0.Y},
			{X: e.P1.X, Y: e.P1.Y},
		})
	}
	return raster.BuildEdges(segs)
}
