package capi

import (
	"github.com/chewxy/math32"
	"github.com/osdgfx/osdbuf"
)

// Transforms are immutable: constructors and operators always return a
// new handle. Components follow the CoreGraphics column-vector
// convention (a, b, c, d, tx, ty) and stay in float32, the precision of
// the wire format.

// CreateTransform registers an affine transform from its six
// components and returns its handle.
func CreateTransform(a, b, c, d, tx, ty float32) int32 {
	return transforms.Put(&transformEntry{a: a, b: b, c: c, d: d, tx: tx, ty: ty})
}

// DestroyTransform invalidates the handle. Destroying an unknown handle
// is a no-op.
func DestroyTransform(h int32) {
	transforms.Remove(h)
}

// TransformRotation creates a rotation by the given angle in radians.
func TransformRotation(radians float32) int32 {
	cos := math32.Cos(radians)
	sin := math32.Sin(radians)
	return CreateTransform(cos, sin, -sin, cos, 0, 0)
}

// TransformScale creates a scale transform.
func TransformScale(sx, sy float32) int32 {
	return CreateTransform(sx, 0, 0, sy, 0, 0)
}

// TransformTranslation creates a translation transform.
func TransformTranslation(tx, ty float32) int32 {
	return CreateTransform(1, 0, 0, 1, tx, ty)
}

// TransformConcat returns a new transform equal to a×b, so b applies
// first and a second. Returns -1 when either handle is unknown.
func TransformConcat(ha, hb int32) int32 {
	t1, ok := transforms.Get(ha)
	if !ok {
		return -1
	}
	t2, ok := transforms.Get(hb)
	if !ok {
		return -1
	}
	return CreateTransform(
		t1.a*t2.a+t1.c*t2.b,
		t1.b*t2.a+t1.d*t2.b,
		t1.a*t2.c+t1.c*t2.d,
		t1.b*t2.c+t1.d*t2.d,
		t1.a*t2.tx+t1.c*t2.ty+t1.tx,
		t1.b*t2.tx+t1.d*t2.ty+t1.ty,
	)
}

// TransformInvert returns a new transform that is the inverse of h, or
// -1 for an unknown handle or a singular matrix.
func TransformInvert(h int32) int32 {
	t, ok := transforms.Get(h)
	if !ok {
		return -1
	}
	det := t.a*t.d - t.b*t.c
	if math32.Abs(det) < 1e-10 {
		return -1
	}
	inv := 1 / det
	return CreateTransform(
		t.d*inv,
		-t.b*inv,
		-t.c*inv,
		t.a*inv,
		(t.c*t.ty-t.d*t.tx)*inv,
		(t.b*t.tx-t.a*t.ty)*inv,
	)
}

// TransformGet returns the six components of a transform. ok is 0 for
// an unknown handle.
func TransformGet(h int32) (a, b, c, d, tx, ty float32, ok int32) {
	t, found := transforms.Get(h)
	if !found {
		return 0, 0, 0, 0, 0, 0, 0
	}
	return t.a, t.b, t.c, t.d, t.tx, t.ty, 1
}

// matrixOf converts a transform entry to the engine matrix type.
func matrixOf(t *transformEntry) osdbuf.Matrix {
	return osdbuf.FromComponents(
		float64(t.a), float64(t.b), float64(t.c),
		float64(t.d), float64(t.tx), float64(t.ty),
	)
}
