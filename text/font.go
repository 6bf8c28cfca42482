// Package text loads fonts and renders glyph coverage masks for the
// framebuffer. Fonts are parsed with golang.org/x/image/font/opentype;
// shaping is per-rune with optional extra letter spacing, which is all
// the on-screen-display use case needs.
package text

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidFont reports font data that could not be parsed.
var ErrInvalidFont = errors.New("text: invalid font data")

// Font is a parsed TrueType/OpenType font plus a cache of sized faces.
// All methods are safe for concurrent use.
type Font struct {
	otf *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// Parse parses TrueType/OpenType font data.
func Parse(data []byte) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	return &Font{otf: otf, faces: make(map[float64]font.Face)}, nil
}

// Load reads and parses a font file.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	return Parse(data)
}

// Name returns the font family name, or "" when the font does not carry
// one.
func (f *Font) Name() string {
	if name, err := f.otf.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

var (
	defaultOnce sync.Once
	defaultFont *Font
)

// Default returns the built-in fallback font (Go Regular). The font is
// parsed on first use and shared afterwards.
func Default() *Font {
	defaultOnce.Do(func() {
		f, err := Parse(goregular.TTF)
		if err != nil {
			panic("text: embedded default font failed to parse: " + err.Error())
		}
		defaultFont = f
	})
	return defaultFont
}

// face returns the cached face for a size, creating it on demand.
// The caller must hold f.mu while using the face; faces from
// x/image/font/opentype are not safe for concurrent use.
func (f *Font) face(size float64) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}
	f.faces[size] = face
	return face, nil
}

// Metrics holds vertical font metrics at one size, in pixels. Descent is
// negative: it measures from the baseline downward. Height is the
// recommended line height, ascent plus descent plus line gap, and is
// never less than ascent minus descent.
type Metrics struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// Metrics returns the vertical metrics at the given pixel size.
func (f *Font) Metrics(size float64) (Metrics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	face, err := f.face(size)
	if err != nil {
		return Metrics{}, err
	}
	m := face.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	// The face rounds Height independently of Ascent and Descent, which
	// can leave it below their sum. Recover the line gap and rebuild the
	// height so it always covers ascent + descent.
	gap := fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return Metrics{
		Ascent:  ascent,
		Descent: -descent,
		Height:  ascent + descent + gap,
	}, nil
}

// Advance returns the horizontal advance of r at the given size, or 0
// when the font has no glyph for r.
func (f *Font) Advance(r rune, size float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	face, err := f.face(size)
	if err != nil {
		return 0
	}
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return fixedToFloat(adv)
}

// Measure returns the rendered width of s at the given size, with
// spacing extra pixels between adjacent glyphs. Control runes do not
// contribute.
func (f *Font) Measure(s string, size, spacing float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	face, err := f.face(size)
	if err != nil {
		return 0
	}

	var width float64
	count := 0
	for _, r := range s {
		if isControl(r) {
			continue
		}
		if adv, ok := face.GlyphAdvance(r); ok {
			width += fixedToFloat(adv)
			count++
		}
	}
	if count > 1 {
		width += spacing * float64(count-1)
	}
	return width
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x*64 + 0.5)
}
