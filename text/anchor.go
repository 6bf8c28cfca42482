package text

// Anchor selects which point of a text block the (x, y) position refers
// to. Zero is the center on both axes; bits combine a vertical and a
// horizontal edge, e.g. AnchorTop|AnchorLeft pins the top-left corner.
type Anchor uint32

const (
	AnchorCenter Anchor = 0
	AnchorTop    Anchor = 1 << 0
	AnchorBottom Anchor = 1 << 1
	AnchorLeft   Anchor = 1 << 2
	AnchorRight  Anchor = 1 << 3
)

// Origin converts an anchored position into the baseline origin of the
// first glyph. width and height are the measured text dimensions, ascent
// the distance from the top of the block to the baseline. Contradictory
// bits (both top and bottom, or both left and right) fall back to
// centering on that axis.
func (a Anchor) Origin(x, y, width, height, ascent float64) (float64, float64) {
	left := a&AnchorLeft != 0
	right := a&AnchorRight != 0
	switch {
	case left && !right:
		// x unchanged
	case right && !left:
		x -= width
	default:
		x -= width / 2
	}

	top := a&AnchorTop != 0
	bottom := a&AnchorBottom != 0
	switch {
	case top && !bottom:
		y += ascent
	case bottom && !top:
		y += ascent - height
	default:
		y += ascent - height/2
	}
	return x, y
}
