package stroke

import (
	"math"

	"github.com/osdgfx/osdbuf/internal/path"
)

// ApplyDash splits polylines into the "on" runs of a dash pattern.
// intervals alternates dash and gap lengths; an odd-length pattern is
// logically duplicated ([5] behaves as [5, 5]). phase offsets the start
// of the pattern along the path. The result is a set of open polylines
// ready for Outline.
//
// A pattern with no positive length returns the input unchanged (solid).
func ApplyDash(polys []path.Polyline, intervals []float64, phase float64) []path.Polyline {
	pattern := normalizePattern(intervals)
	if pattern == nil {
		return polys
	}

	var total float64
	for _, l := range pattern {
		total += l
	}

	var out []path.Polyline
	for _, pl := range polys {
		pts := pl.Points
		if len(pts) < 2 {
			continue
		}
		if pl.Closed && pts[len(pts)-1] != pts[0] {
			pts = append(append([]path.Point{}, pts...), pts[0])
		}
		out = dashPolyline(out, pts, pattern, startState(pattern, total, phase))
	}
	return out
}

// dashState tracks the walk position inside the dash pattern.
type dashState struct {
	index     int     // current interval
	remaining float64 // length left in the current interval
}

func (s dashState) on() bool { return s.index%2 == 0 }

// startState advances the pattern by phase (modulo one cycle).
func startState(pattern []float64, total, phase float64) dashState {
	offset := math.Mod(phase, total)
	if offset < 0 {
		offset += total
	}
	s := dashState{index: 0, remaining: pattern[0]}
	for offset > 0 {
		if offset < s.remaining {
			s.remaining -= offset
			break
		}
		offset -= s.remaining
		s.index = (s.index + 1) % len(pattern)
		s.remaining = pattern[s.index]
	}
	return s
}

// dashPolyline walks one polyline, emitting an open polyline per "on" run.
func dashPolyline(out []path.Polyline, pts []path.Point, pattern []float64, s dashState) []path.Polyline {
	var cur []path.Point
	if s.on() {
		cur = append(cur, pts[0])
	}

	flush := func() []path.Polyline {
		if len(cur) >= 2 {
			out = append(out, path.Polyline{Points: cur})
		}
		cur = nil
		return out
	}

	for i := 0; i+1 < len(pts); i++ {
		p0 := pts[i]
		p1 := pts[i+1]
		segLen := p0.Distance(p1)
		if segLen < 1e-12 {
			continue
		}
		pos := 0.0
		for segLen-pos > 1e-12 {
			step := math.Min(s.remaining, segLen-pos)
			pos += step
			s.remaining -= step
			pt := p0.Lerp(p1, pos/segLen)
			if s.on() {
				cur = append(cur, pt)
			}
			if s.remaining <= 1e-12 {
				wasOn := s.on()
				s.index = (s.index + 1) % len(pattern)
				s.remaining = pattern[s.index]
				if wasOn {
					out = flush()
				}
				if s.on() {
					cur = []path.Point{pt}
				}
			}
		}
	}
	return flush()
}

// normalizePattern validates and expands the dash intervals. Returns nil
// for patterns that cannot dash (empty or no positive length).
func normalizePattern(intervals []float64) []float64 {
	if len(intervals) == 0 {
		return nil
	}
	any := false
	for _, l := range intervals {
		if l > 0 {
			any = true
			break
		}
	}
	if !any {
		return nil
	}

	out := make([]float64, 0, len(intervals)*2)
	for _, l := range intervals {
		out = append(out, math.Abs(l))
	}
	if len(out)%2 != 0 {
		out = append(out, out...)
	}
	return out
}
