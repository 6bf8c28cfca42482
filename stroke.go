package osdbuf

import "github.com/osdgfx/osdbuf/internal/raster"

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero fills areas with a non-zero winding number.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd fills areas crossed an odd number of times.
	FillRuleEvenOdd
)

func (r FillRule) toRaster() raster.FillRule {
	if r == FillRuleEvenOdd {
		return raster.EvenOdd
	}
	return raster.NonZero
}

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt ends the line flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound extends the line with a semicircle.
	LineCapRound
	// LineCapSquare extends the line with a half-square.
	LineCapSquare
)

// LineCapOf maps a wire code to a LineCap: 1 round, 2 square, anything
// else butt.
func LineCapOf(code uint8) LineCap {
	switch code {
	case 1:
		return LineCapRound
	case 2:
		return LineCapSquare
	default:
		return LineCapButt
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet.
	LineJoinMiter LineJoin = iota
	// LineJoinRound rounds the corner with an arc.
	LineJoinRound
	// LineJoinBevel cuts the corner with a straight edge.
	LineJoinBevel
)

// LineJoinOf maps a wire code to a LineJoin: 1 round, 2 bevel, anything
// else miter.
func LineJoinOf(code uint8) LineJoin {
	switch code {
	case 1:
		return LineJoinRound
	case 2:
		return LineJoinBevel
	default:
		return LineJoinMiter
	}
}

// Dash describes a dash pattern: alternating on/off lengths plus a phase
// offset into the pattern. A nil Dash, or one with no positive interval,
// means a solid stroke.
type Dash struct {
	Intervals []float64
	Phase     float64
}

// NewDash creates a dash pattern from intervals and a phase offset.
func NewDash(intervals []float64, phase float64) *Dash {
	return &Dash{Intervals: intervals, Phase: phase}
}

// Clone returns a deep copy, or nil for a nil dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	iv := make([]float64, len(d.Intervals))
	copy(iv, d.Intervals)
	return &Dash{Intervals: iv, Phase: d.Phase}
}

// Stroke holds the parameters of a stroke operation.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       *Dash
}

// DefaultStroke returns a solid 1-pixel stroke with butt caps and miter
// joins.
func DefaultStroke() Stroke {
	return Stroke{Width: 1, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 4}
}

// Clone returns a copy of the stroke with its own dash pattern.
func (s Stroke) Clone() Stroke {
	s.Dash = s.Dash.Clone()
	return s
}
