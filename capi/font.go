package capi

import (
	"sync"

	"github.com/osdgfx/osdbuf"
	"github.com/osdgfx/osdbuf/text"
)

// RegisterFont parses TrueType/OpenType font data and returns its
// handle, or -1 when the data cannot be parsed.
func RegisterFont(data []byte) int32 {
	f, err := text.Parse(data)
	if err != nil {
		osdbuf.Logger().Warn("font registration failed", "error", err)
		return -1
	}
	return fonts.Put(f)
}

// LoadFont reads a font file and registers it. Returns -1 when the file
// cannot be read or parsed.
func LoadFont(path string) int32 {
	f, err := text.Load(path)
	if err != nil {
		osdbuf.Logger().Warn("font load failed", "path", path, "error", err)
		return -1
	}
	return fonts.Put(f)
}

// UnloadFont removes a font. Returns 0 on success, -1 for an unknown
// handle. The default font can be unloaded; the next GetDefaultFont
// re-registers it.
func UnloadFont(h int32) int32 {
	if !fonts.Remove(h) {
		return -1
	}
	defaultFontMu.Lock()
	if h == defaultFontID {
		defaultFontID = 0
	}
	defaultFontMu.Unlock()
	return 0
}

var (
	defaultFontMu sync.Mutex
	defaultFontID int32
)

// GetDefaultFont returns the handle of the built-in default font,
// registering it on first use.
func GetDefaultFont() int32 {
	defaultFontMu.Lock()
	defer defaultFontMu.Unlock()
	if defaultFontID > 0 {
		if _, ok := fonts.Get(defaultFontID); ok {
			return defaultFontID
		}
	}
	defaultFontID = fonts.Put(text.Default())
	return defaultFontID
}

// GetFontCount returns the number of registered fonts.
func GetFontCount() int32 {
	return int32(fonts.Len())
}

// GetFontIDs copies the live font handles into buf in ascending order
// and returns how many were written.
func GetFontIDs(buf []int32) int32 {
	if len(buf) == 0 {
		return 0
	}
	ids := fonts.IDs()
	n := copy(buf, ids)
	return int32(n)
}
