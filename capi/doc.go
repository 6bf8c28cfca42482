// Package capi is the flat, handle-based call surface of the engine,
// mirroring the foreign ABI the library is consumed through: every
// resource is addressed by a positive int32 handle, colors travel as
// packed 0xRRGGBBAA words, blend modes as byte codes, and failures map
// to sentinel returns (-1 or 0) instead of errors. No function in this
// package panics for any handle, slice, or string input.
//
// Handle kinds are independent registries: framebuffers, fonts, paths,
// and transforms. Handle 0 and negative values never resolve; destroyed
// handles become invalid immediately and their slots may be reused.
package capi
