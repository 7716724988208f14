package ggsurface

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ring"
)

// Raster draws rings into a gg.Context.
type Raster struct {
	dc    *gg.Context
	fonts *Fonts
}

var _ ring.Surface = (*Raster)(nil)

// RasterOption configures a Raster.
type RasterOption func(*Raster)

// WithFonts sets the label font cache. Without it NewRaster loads
// DefaultFonts.
func WithFonts(f *Fonts) RasterOption {
	return func(r *Raster) {
		r.fonts = f
	}
}

// NewRaster wraps dc. It fails only if the default font cannot be parsed.
//
// Example:
//
//	dc := gg.NewContext(200, 200)
//	surf, err := ggsurface.NewRaster(dc)
//	if err != nil {
//	    return err
//	}
//	view.Draw(surf)
//	dc.SavePNG("ring.png")
func NewRaster(dc *gg.Context, opts ...RasterOption) (*Raster, error) {
	r := &Raster{dc: dc}
	for _, opt := range opts {
		opt(r)
	}
	if r.fonts == nil {
		f, err := DefaultFonts()
		if err != nil {
			return nil, err
		}
		r.fonts = f
	}
	return r, nil
}

// Context returns the wrapped context.
func (r *Raster) Context() *gg.Context {
	return r.dc
}

// StrokeCircle implements ring.Surface.
func (r *Raster) StrokeCircle(center gg.Point, radius float64, stroke ring.Stroke) {
	if !positive(radius) || !positive(stroke.Width) {
		ring.Logger().Debug("ggsurface: degenerate circle skipped", "radius", radius, "width", stroke.Width)
		return
	}
	r.dc.ClearPath()
	r.applyStroke(stroke)
	r.dc.DrawCircle(center.X, center.Y, radius)
	r.stroke("circle")
}

// StrokeArc implements ring.Surface.
func (r *Raster) StrokeArc(bounds gg.Rect, start, sweep float64, stroke ring.Stroke) {
	a, ok := arcFromBounds(bounds, start, sweep)
	if !ok || !positive(stroke.Width) {
		ring.Logger().Debug("ggsurface: degenerate arc skipped", "sweep", sweep, "width", stroke.Width)
		return
	}
	r.dc.ClearPath()
	r.applyStroke(stroke)
	r.dc.DrawArc(a.cx, a.cy, a.r, a.a1, a.a2)
	r.stroke("arc")
}

// MeasureText implements ring.Surface.
func (r *Raster) MeasureText(s string, size float64) (w, h float64) {
	return r.fonts.Measure(s, size)
}

// DrawText implements ring.Surface.
func (r *Raster) DrawText(s string, origin gg.Point, size float64, col gg.RGBA) {
	if !positive(size) {
		return
	}
	r.dc.SetFont(r.fonts.Face(size))
	r.dc.SetColor(col)
	r.dc.DrawString(s, origin.X, origin.Y)
}

func (r *Raster) applyStroke(s ring.Stroke) {
	r.dc.SetColor(s.Color)
	r.dc.SetLineWidth(s.Width)
	r.dc.SetLineCap(s.Cap)
}

func (r *Raster) stroke(what string) {
	if err := r.dc.Stroke(); err != nil {
		ring.Logger().Warn("ggsurface: stroke failed", "shape", what, "err", err)
	}
}
