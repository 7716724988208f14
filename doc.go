// Package ring provides a circular progress indicator for the gogpu 2D stack.
//
// # Overview
//
// ring draws a background circle, a progress arc proportional to
// Progress/Max and an optional centered percentage label. It does not
// rasterize anything itself: drawing goes through the [Surface] interface,
// implemented on top of gg by the ggsurface package.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/ring"
//	    "github.com/gogpu/ring/ggsurface"
//	)
//
//	dc := gg.NewContext(200, 200)
//	surf, _ := ggsurface.NewRaster(dc)
//
//	v := ring.NewView()
//	v.Layout(200, 200, ring.Insets{})
//	v.SetProgress(40)
//	v.Draw(surf)
//
//	dc.SavePNG("ring.png")
//
// # Layout
//
// [Resolve] turns the viewport, its padding, the requested radius and the
// requested stroke width into a [Geometry]. A requested radius of 0 fills
// the available space. Resolve is pure: the requested values are never
// replaced by the resolved ones, so laying out twice gives the same result.
//
// # Angles
//
// Angles are in degrees. 0 is 3 o'clock and positive angles run clockwise
// on screen (Y grows downward). The default start angle is -90, 12 o'clock.
//
// # Invalid input
//
// Resolve and Render never fail. A Max of 0 or less renders an empty arc
// and a "0%" label, and [View] logs [ErrInvalidMax] once. Progress outside
// [0, Max] is drawn as is: sweeps past 360 degrees overdraw and negative
// sweeps run counter-clockwise.
package ring

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
