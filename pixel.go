package osdbuf

// Raw pixel operations. These write bytes directly and bypass the
// transform, clip, and global alpha.

// SetPixel stores c at (x, y). Out-of-bounds coordinates are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	i := (y*fb.width + x) * 4
	fb.pixels[i] = c.R()
	fb.pixels[i+1] = c.G()
	fb.pixels[i+2] = c.B()
	fb.pixels[i+3] = c.A()
}

// GetPixel returns the color at (x, y), or zero for out-of-bounds
// coordinates.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0
	}
	i := (y*fb.width + x) * 4
	return RGBA(fb.pixels[i], fb.pixels[i+1], fb.pixels[i+2], fb.pixels[i+3])
}

// SetPixelOver source-over blends c onto the pixel at (x, y).
func (fb *Framebuffer) SetPixelOver(x, y int, c Color) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height || c.A() == 0 {
		return
	}
	fb.blendPixel((y*fb.width+x)*4, c, 1, BlendOver)
}

// Fill stores c into every pixel, replacing existing content.
func (fb *Framebuffer) Fill(c Color) {
	r, g, b, a := c.R(), c.G(), c.B(), c.A()
	px := fb.pixels
	for i := 0; i < len(px); i += 4 {
		px[i] = r
		px[i+1] = g
		px[i+2] = b
		px[i+3] = a
	}
}

// FillOver source-over blends c onto every pixel. An opaque color
// degenerates to Fill.
func (fb *Framebuffer) FillOver(c Color) {
	if c.A() == 255 {
		fb.Fill(c)
		return
	}
	if c.A() == 0 {
		return
	}
	for i := 0; i < len(fb.pixels); i += 4 {
		fb.blendPixel(i, c, 1, BlendOver)
	}
}

// Clear zeroes the whole buffer (transparent black).
func (fb *Framebuffer) Clear() {
	px := fb.pixels
	for i := range px {
		px[i] = 0
	}
}

// Scroll shifts the content by (dx, dy) pixels. Positive dx moves
// content right, positive dy moves it down. Vacated areas become
// transparent. A shift of a full dimension or more clears the buffer.
func (fb *Framebuffer) Scroll(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	w, h := fb.width, fb.height
	rowSize := w * 4
	px := fb.pixels

	if dy != 0 {
		ady := dy
		if ady < 0 {
			ady = -ady
		}
		if ady >= h {
			fb.Clear()
			return
		}
		if dy > 0 {
			for y := h - 1; y >= ady; y-- {
				copy(px[y*rowSize:(y+1)*rowSize], px[(y-ady)*rowSize:(y-ady+1)*rowSize])
			}
			zero(px[:ady*rowSize])
		} else {
			for y := 0; y < h-ady; y++ {
				copy(px[y*rowSize:(y+1)*rowSize], px[(y+ady)*rowSize:(y+ady+1)*rowSize])
			}
			zero(px[(h-ady)*rowSize:])
		}
	}

	if dx != 0 {
		adx := dx
		if adx < 0 {
			adx = -adx
		}
		shift := adx * 4
		if shift >= rowSize {
			fb.Clear()
			return
		}
		for y := 0; y < h; y++ {
			row := px[y*rowSize : (y+1)*rowSize]
			if dx > 0 {
				copy(row[shift:], row[:rowSize-shift])
				zero(row[:shift])
			} else {
				copy(row[:rowSize-shift], row[shift:])
				zero(row[rowSize-shift:])
			}
		}
	}
}

// Blit copies a straight-RGBA source image of srcW×srcH pixels to
// (dstX, dstY). With blend set, pixels are source-over composited;
// otherwise they replace the destination. The copy is clipped to the
// framebuffer bounds.
func (fb *Framebuffer) Blit(src []byte, srcW, srcH, dstX, dstY int, blend bool) {
	if srcW <= 0 || srcH <= 0 || len(src) < srcW*srcH*4 {
		return
	}
	for sy := 0; sy < srcH; sy++ {
		dy := dstY + sy
		if dy < 0 || dy >= fb.height {
			continue
		}
		for sx := 0; sx < srcW; sx++ {
			dx := dstX + sx
			if dx < 0 || dx >= fb.width {
				continue
			}
			si := (sy*srcW + sx) * 4
			di := (dy*fb.width + dx) * 4
			if blend {
				c := RGBA(src[si], src[si+1], src[si+2], src[si+3])
				if c.A() > 0 {
					fb.blendPixel(di, c, 1, BlendOver)
				}
			} else {
				copy(fb.pixels[di:di+4], src[si:si+4])
			}
		}
	}
}

// Checkerboard colors.
const (
	checkerLight Color = 0xCCCCCCFF
	checkerDark  Color = 0x999999FF
)

// DrawCheckerboard fills the buffer with a light/dark checker pattern of
// square tiles. Intended for visualizing transparency in tests and
// tooling.
func (fb *Framebuffer) DrawCheckerboard(size int) {
	if size < 1 {
		size = 8
	}
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := checkerLight
			if ((y/size)+(x/size))&1 != 0 {
				c = checkerDark
			}
			i := (y*fb.width + x) * 4
			fb.pixels[i] = c.R()
			fb.pixels[i+1] = c.G()
			fb.pixels[i+2] = c.B()
			fb.pixels[i+3] = c.A()
		}
	}
}

// yuvFade is the alpha retained on the transparent half of a chroma pair
// after compensation.
const yuvFade = 0.2

// ApplyYUV422Compensation fixes chroma bleeding on displays that consume
// the buffer as YUV 4:2:2, where each horizontal pixel pair shares one
// chroma sample. Within the given region, whenever exactly one pixel of
// an even-aligned pair is transparent, it receives the visible pixel's
// RGB and a faded alpha so the shared chroma sample is not polluted by
// black.
func (fb *Framebuffer) ApplyYUV422Compensation(x, y, w, h int) {
	x1 := max(x, 0) &^ 1
	x2 := min(x+w, fb.width) &^ 1
	y1 := max(y, 0)
	y2 := min(y+h, fb.height)

	for iy := y1; iy < y2; iy++ {
		for ix := x1; ix < x2; ix += 2 {
			i1 := (iy*fb.width + ix) * 4
			i2 := i1 + 4
			a1 := fb.pixels[i1+3]
			a2 := fb.pixels[i2+3]
			if (a1 == 0) == (a2 == 0) {
				continue
			}
			vi, ti := i1, i2
			if a2 > 0 {
				vi, ti = i2, i1
			}
			fb.pixels[ti] = fb.pixels[vi]
			fb.pixels[ti+1] = fb.pixels[vi+1]
			fb.pixels[ti+2] = fb.pixels[vi+2]
			fb.pixels[ti+3] = uint8(float64(fb.pixels[vi+3]) * yuvFade)
		}
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
