package ring

import "github.com/gogpu/gg"

// Stroke describes how a ring primitive is outlined. Rings are never filled.
type Stroke struct {
	Width float64
	Color gg.RGBA
	Cap   gg.LineCap
}

// Surface is the drawing capability a ring renders into.
//
// Angles are in degrees, 0 at 3 o'clock, positive clockwise on screen.
// Implementations must tolerate degenerate input (negative radius or
// width, NaN) without panicking; drawing nothing is acceptable.
type Surface interface {
	// StrokeCircle outlines a full circle.
	StrokeCircle(center gg.Point, radius float64, stroke Stroke)

	// StrokeArc outlines the arc of the circle inscribed in bounds,
	// starting at startAngle and sweeping sweepAngle degrees.
	StrokeArc(bounds gg.Rect, startAngle, sweepAngle float64, stroke Stroke)

	// MeasureText returns the pixel width and height of s at size.
	MeasureText(s string, size float64) (w, h float64)

	// DrawText draws s with its left baseline at origin.
	DrawText(s string, origin gg.Point, size float64, col gg.RGBA)
}

// Paint holds the per-frame style of a ring, in pixels.
type Paint struct {
	Progress int
	Max      int

	BackgroundColor gg.RGBA
	ProgressColor   gg.RGBA
	LabelColor      gg.RGBA

	StartAngle   float64
	RoundCap     bool
	LabelVisible bool
	LabelSize    float64
}

// Render draws the track circle, then the progress arc, then the label if
// visible. It keeps no state between calls.
func Render(s Surface, g Geometry, p Paint) {
	s.StrokeCircle(g.Center, g.Radius, Stroke{
		Width: g.StrokeWidth,
		Color: p.BackgroundColor,
		Cap:   gg.LineCapButt,
	})

	arcCap := gg.LineCapButt
	if p.RoundCap {
		arcCap = gg.LineCapRound
	}
	s.StrokeArc(g.Bounds(), p.StartAngle, SweepAngle(p.Progress, p.Max), Stroke{
		Width: g.StrokeWidth,
		Color: p.ProgressColor,
		Cap:   arcCap,
	})

	if !p.LabelVisible {
		return
	}
	label := PercentText(p.Progress, p.Max)
	w, h := s.MeasureText(label, p.LabelSize)
	s.DrawText(label, gg.Pt(g.Center.X-w/2, g.Center.Y+h/2), p.LabelSize, p.LabelColor)
}
