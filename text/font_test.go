package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParse(t *testing.T) {
	f, err := Parse(goregular.TTF)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "Go", f.Name())
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("not a font"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFont)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/font.ttf")
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	f := Default()
	require.NotNil(t, f)
	assert.Same(t, f, Default(), "Default should return the shared instance")
}

func TestMetrics(t *testing.T) {
	f := Default()
	m, err := f.Metrics(16)
	require.NoError(t, err)

	assert.Greater(t, m.Ascent, 0.0)
	assert.Less(t, m.Descent, 0.0, "descent measures downward from the baseline")
	assert.GreaterOrEqual(t, m.Height, m.Ascent-m.Descent-0.01,
		"line height includes ascent, descent, and line gap")
}

func TestMetricsScaleWithSize(t *testing.T) {
	f := Default()
	small, err := f.Metrics(10)
	require.NoError(t, err)
	large, err := f.Metrics(30)
	require.NoError(t, err)
	assert.Greater(t, large.Ascent, small.Ascent)
}

func TestAdvance(t *testing.T) {
	f := Default()
	assert.Greater(t, f.Advance('M', 16), 0.0)
	assert.Equal(t, 0.0, f.Advance(0, 16))
}

func TestMeasure(t *testing.T) {
	f := Default()

	assert.Equal(t, 0.0, f.Measure("", 16, 0))

	w := f.Measure("Hello", 16, 0)
	assert.Greater(t, w, 0.0)

	// Extra spacing goes between glyphs only: 4 gaps for 5 runes.
	spaced := f.Measure("Hello", 16, 2)
	assert.InDelta(t, w+8, spaced, 1e-9)

	// Control runes contribute nothing.
	assert.Equal(t, w, f.Measure("He\tl\nlo", 16, 0))
}

func TestMeasureSingleRuneIgnoresSpacing(t *testing.T) {
	f := Default()
	assert.Equal(t, f.Measure("A", 16, 0), f.Measure("A", 16, 10))
}

func TestGlyph(t *testing.T) {
	f := Default()

	g, ok := f.Glyph('A', 16, 10, 20)
	require.True(t, ok)
	require.NotNil(t, g.Mask)
	assert.Greater(t, g.Advance, 0.0)
	assert.False(t, g.Rect.Empty())

	// Some coverage must be present in the mask.
	var covered bool
	for y := g.Rect.Min.Y; y < g.Rect.Max.Y && !covered; y++ {
		for x := g.Rect.Min.X; x < g.Rect.Max.X; x++ {
			if g.Mask.AlphaAt(x, y).A > 0 {
				covered = true
				break
			}
		}
	}
	assert.True(t, covered, "glyph mask should contain coverage")

	// The mask sits near the requested dot.
	assert.Less(t, g.Rect.Max.Y, 21)
	assert.GreaterOrEqual(t, g.Rect.Min.X, 9)
}

func TestGlyphSpace(t *testing.T) {
	f := Default()
	g, ok := f.Glyph(' ', 16, 0, 0)
	require.True(t, ok)
	assert.Greater(t, g.Advance, 0.0)
}

func TestAnchorOrigin(t *testing.T) {
	const (
		width  = 100.0
		height = 20.0
		ascent = 15.0
	)

	tests := []struct {
		name   string
		anchor Anchor
		wantX  float64
		wantY  float64
	}{
		{"center", AnchorCenter, -50, ascent - 10},
		{"top left", AnchorTop | AnchorLeft, 0, ascent},
		{"top right", AnchorTop | AnchorRight, -100, ascent},
		{"bottom left", AnchorBottom | AnchorLeft, 0, ascent - 20},
		{"left only", AnchorLeft, 0, ascent - 10},
		{"top only", AnchorTop, -50, ascent},
		{"contradictory vertical", AnchorTop | AnchorBottom, -50, ascent - 10},
		{"contradictory horizontal", AnchorLeft | AnchorRight, -50, ascent - 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.anchor.Origin(0, 0, width, height, ascent)
			assert.InDelta(t, tt.wantX, x, 1e-9)
			assert.InDelta(t, tt.wantY, y, 1e-9)
		})
	}
}
