package osdbuf

import (
	"encoding/binary"
	"math"
)

// Encoded path record opcodes. Each record is an opcode byte followed by
// little-endian float32 coordinates:
//
//	0x00  MoveTo   x y                        (8 bytes)
//	0x01  LineTo   x y                        (8 bytes)
//	0x02  CubicTo  c1x c1y c2x c2y x y        (24 bytes)
//	0x03  QuadTo   cx cy x y                  (16 bytes)
//	0x04  Close                               (0 bytes)
const (
	opMoveTo  = 0x00
	opLineTo  = 0x01
	opCubicTo = 0x02
	opQuadTo  = 0x03
	opClose   = 0x04
)

// DecodePath decodes a compact byte-encoded path. Decoding stops at the
// first truncated or unknown record; whatever decoded up to that point
// is returned, so a damaged tail degrades to a shorter path instead of
// an error.
func DecodePath(data []byte) *Path {
	p := NewPath()
	i := 0
	for i < len(data) {
		op := data[i]
		i++
		switch op {
		case opMoveTo:
			if i+8 > len(data) {
				return p
			}
			p.MoveTo(f32At(data, i), f32At(data, i+4))
			i += 8
		case opLineTo:
			if i+8 > len(data) {
				return p
			}
			p.LineTo(f32At(data, i), f32At(data, i+4))
			i += 8
		case opCubicTo:
			if i+24 > len(data) {
				return p
			}
			p.CubicTo(
				f32At(data, i), f32At(data, i+4),
				f32At(data, i+8), f32At(data, i+12),
				f32At(data, i+16), f32At(data, i+20),
			)
			i += 24
		case opQuadTo:
			if i+16 > len(data) {
				return p
			}
			p.QuadraticTo(
				f32At(data, i), f32At(data, i+4),
				f32At(data, i+8), f32At(data, i+12),
			)
			i += 16
		case opClose:
			p.Close()
		default:
			return p
		}
	}
	return p
}

func f32At(data []byte, i int) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(data[i : i+4])))
}
