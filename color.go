package osdbuf

// Color is a packed 32-bit color in 0xRRGGBBAA layout: red in the top byte,
// alpha in the low byte. A color written with Framebuffer.SetPixel reads
// back bit-identical through Framebuffer.GetPixel.
type Color uint32

// RGBA packs four 8-bit channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c) }

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&^0xFF | Color(a)
}

// scaleAlpha multiplies the alpha channel by f in [0, 1].
// Used to apply the graphics-state global alpha to draw calls.
func (c Color) scaleAlpha(f float64) Color {
	if f >= 1 {
		return c
	}
	if f <= 0 {
		return c.WithAlpha(0)
	}
	return c.WithAlpha(uint8(float64(c.A())*f + 0.5))
}

// BlendMode selects the compositing rule for a drawing call.
//
// Only two rules exist: source-over alpha compositing and opaque source
// overwrite. The numeric values keep compatibility with the historical
// call surface, where 0 was "normal" and 17 was "copy"; every code other
// than BlendSource behaves as BlendOver.
type BlendMode uint8

const (
	// BlendOver alpha-blends the new color over the existing pixel
	// (standard source-over compositing).
	BlendOver BlendMode = 0

	// BlendSource replaces the destination channels outright, ignoring
	// the existing pixel.
	BlendSource BlendMode = 17
)

// BlendModeOf normalizes a raw blend code from the call surface.
func BlendModeOf(code uint8) BlendMode {
	if BlendMode(code) == BlendSource {
		return BlendSource
	}
	return BlendOver
}

// Common colors.
var (
	Black       = RGBA(0, 0, 0, 255)
	White       = RGBA(255, 255, 255, 255)
	Transparent = Color(0)
)
