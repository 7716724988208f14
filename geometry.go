package ring

import (
	"math"

	"github.com/gogpu/gg"
)

// Insets holds the padding on each side of a viewport, in pixels.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// Uniform returns insets with the same padding on every side.
func Uniform(p float64) Insets {
	return Insets{Left: p, Top: p, Right: p, Bottom: p}
}

// PaddingMode selects which pair of insets shrinks the ring.
type PaddingMode int

const (
	// PaddingCrossAxis subtracts the padding of the axis perpendicular to
	// the constraining one: left+right for a landscape viewport, top+bottom
	// for a portrait or square one. This is the historical behavior of the
	// widget and the default.
	PaddingCrossAxis PaddingMode = iota

	// PaddingConstrainingAxis subtracts the padding of the axis that limits
	// the ring: top+bottom for a landscape viewport, left+right otherwise.
	PaddingConstrainingAxis
)

// String returns the mode name as used in configuration files.
func (m PaddingMode) String() string {
	switch m {
	case PaddingCrossAxis:
		return "cross"
	case PaddingConstrainingAxis:
		return "constraining"
	default:
		return "unknown"
	}
}

// Request is the input of Resolve. All lengths are in pixels.
type Request struct {
	// Width and Height are the full viewport size, padding included.
	Width, Height float64

	// Padding is the viewport padding.
	Padding Insets

	// Radius is the requested ring radius. Zero fills the available space.
	Radius float64

	// StrokeWidth is the requested ring stroke width.
	StrokeWidth float64

	// Mode selects the padding pair; see PaddingMode.
	Mode PaddingMode
}

// Geometry is the resolved layout of a ring.
type Geometry struct {
	// Center is the viewport midpoint.
	Center gg.Point

	// Limit is the distance from Center to the nearer viewport edge.
	Limit float64

	// Radius is the effective radius. It may be negative when padding and
	// stroke width exceed the available space.
	Radius float64

	// StrokeWidth is the effective stroke width.
	StrokeWidth float64
}

// Bounds returns the square the progress arc is inscribed in.
func (g Geometry) Bounds() gg.Rect {
	return gg.Rect{
		Min: gg.Pt(g.Center.X-g.Radius, g.Center.Y-g.Radius),
		Max: gg.Pt(g.Center.X+g.Radius, g.Center.Y+g.Radius),
	}
}

// Resolve computes the ring geometry for a viewport.
//
// The requested radius is clamped to the distance from the center to the
// nearer edge, then reduced by the padding sum selected by r.Mode and by a
// quarter of the requested stroke width. The stroke width is clamped to
// half of the resulting radius. Resolve has no side effects and accepts
// any input; degenerate input yields a degenerate geometry.
func Resolve(r Request) Geometry {
	center := gg.Pt(r.Width/2, r.Height/2)
	horizontal := center.X > center.Y

	limit := center.X
	if horizontal {
		limit = center.Y
	}

	radius := limit
	if r.Radius != 0 {
		radius = math.Min(r.Radius, limit)
	}

	radius -= paddingSum(r.Padding, r.Mode, horizontal) + r.StrokeWidth/4

	return Geometry{
		Center:      center,
		Limit:       limit,
		Radius:      radius,
		StrokeWidth: math.Min(r.StrokeWidth, radius/2),
	}
}

func paddingSum(p Insets, mode PaddingMode, horizontal bool) float64 {
	if mode == PaddingConstrainingAxis {
		horizontal = !horizontal
	}
	if horizontal {
		return p.Left + p.Right
	}
	return p.Top + p.Bottom
}
