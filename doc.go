// Package osdbuf is a software 2D rendering engine that draws vector and
// raster graphics directly into caller-supplied pixel buffers.
//
// # Overview
//
// osdbuf renders into borrowed memory: a [Framebuffer] wraps a pixel slice
// owned by the caller (typically an on-screen-display plane or a window
// surface) and every drawing call synchronously mutates that memory. The
// engine never copies, reallocates, or frees the buffer, so the caller can
// hand the same address to a presentation layer after each frame.
//
// Pixels are straight (non-premultiplied) RGBA, 4 bytes per pixel in
// R, G, B, A order. Packed [Color] values are 0xRRGGBBAA.
//
// # Quick start
//
//	buf := make([]byte, 320*240*4)
//	fb, _ := osdbuf.NewFramebuffer(buf, 320, 240)
//
//	fb.Fill(osdbuf.RGBA(0, 0, 0, 255))
//	fb.FillRect(10, 10, 100, 50, osdbuf.RGBA(255, 0, 0, 255), osdbuf.BlendOver)
//
// # Handle-based API
//
// The capi subpackage exposes the same engine through a flat, handle-based
// call surface (int32 handles, packed colors, float32 geometry) suitable for
// binding across a foreign-function boundary. Resource registries, sentinel
// error conventions, and graphics-state stack semantics live there.
//
// # Logging
//
// By default osdbuf produces no log output. Call [SetLogger] to enable
// structured logging through log/slog.
package osdbuf
