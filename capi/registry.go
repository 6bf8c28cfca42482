package capi

import (
	"sync"

	"github.com/osdgfx/osdbuf"
	"github.com/osdgfx/osdbuf/internal/handle"
	"github.com/osdgfx/osdbuf/text"
)

// fbEntry wraps a framebuffer with its own mutex so concurrent calls on
// the same handle serialize while different framebuffers draw in
// parallel.
type fbEntry struct {
	mu sync.Mutex
	fb *osdbuf.Framebuffer
}

// pathEntry wraps a mutable path under its own mutex.
type pathEntry struct {
	mu sync.Mutex
	p  *osdbuf.Path
}

// transformEntry is an immutable affine transform in ABI float32
// precision, components in (a, b, c, d, tx, ty) order.
type transformEntry struct {
	a, b, c, d, tx, ty float32
}

var (
	framebuffers = handle.NewRegistry[fbEntry]()
	fonts        = handle.NewRegistry[text.Font]()
	paths        = handle.NewRegistry[pathEntry]()
	transforms   = handle.NewRegistry[transformEntry]()
)

// withFB runs f with the framebuffer locked. Returns false for an
// unknown handle.
func withFB(h int32, f func(fb *osdbuf.Framebuffer)) bool {
	e, ok := framebuffers.Get(h)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	f(e.fb)
	return true
}

// withPath runs f with the path locked. Returns false for an unknown
// handle.
func withPath(h int32, f func(p *osdbuf.Path)) bool {
	e, ok := paths.Get(h)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	f(e.p)
	return true
}

// snapshotPath returns a deep copy of the path so drawing can proceed
// without holding the path lock.
func snapshotPath(h int32) (*osdbuf.Path, bool) {
	var clone *osdbuf.Path
	ok := withPath(h, func(p *osdbuf.Path) {
		clone = p.Clone()
	})
	return clone, ok
}
