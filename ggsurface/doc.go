// Package ggsurface implements ring.Surface on top of gogpu/gg.
//
// [Raster] draws into a *gg.Context and is what most hosts want: create a
// context, wrap it, let a ring.View draw into it, then save or blit the
// context's image. [Recorder] sends the same primitives to a
// *recording.Recorder so a ring can be played back to vector backends.
//
// Both share a [Fonts] cache for the percentage label. [DefaultFonts] uses
// the Go Regular typeface bundled with golang.org/x/image, so no system
// font is needed.
//
// # Degenerate input
//
// Circles and arcs with a radius or stroke width that is not strictly
// positive, and arcs with a zero sweep, are skipped. This happens when a
// ring is laid out in a viewport smaller than its padding.
package ggsurface
