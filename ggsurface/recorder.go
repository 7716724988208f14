package ggsurface

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/ring"
)

// Recorder captures rings as recording commands.
//
//	rec := recording.NewRecorder(200, 200)
//	view.Draw(ggsurface.NewRecorder(rec, fonts))
//	r := rec.FinishRecording()
//	err := r.Playback(backend)
type Recorder struct {
	rec   *recording.Recorder
	fonts *Fonts
}

var _ ring.Surface = (*Recorder)(nil)

// NewRecorder wraps rec. Label faces come from fonts, which also drive
// text measurement so recorded labels are placed like rasterized ones.
func NewRecorder(rec *recording.Recorder, fonts *Fonts) *Recorder {
	return &Recorder{rec: rec, fonts: fonts}
}

// StrokeCircle implements ring.Surface.
func (r *Recorder) StrokeCircle(center gg.Point, radius float64, stroke ring.Stroke) {
	if !positive(radius) || !positive(stroke.Width) {
		return
	}
	r.rec.ClearPath()
	r.applyStroke(stroke)
	r.rec.DrawCircle(center.X, center.Y, radius)
	r.rec.Stroke()
}

// StrokeArc implements ring.Surface.
func (r *Recorder) StrokeArc(bounds gg.Rect, start, sweep float64, stroke ring.Stroke) {
	a, ok := arcFromBounds(bounds, start, sweep)
	if !ok || !positive(stroke.Width) {
		return
	}
	r.rec.ClearPath()
	r.applyStroke(stroke)
	r.rec.DrawArc(a.cx, a.cy, a.r, a.a1, a.a2)
	r.rec.Stroke()
}

// MeasureText implements ring.Surface.
func (r *Recorder) MeasureText(s string, size float64) (w, h float64) {
	return r.fonts.Measure(s, size)
}

// DrawText implements ring.Surface.
func (r *Recorder) DrawText(s string, origin gg.Point, size float64, col gg.RGBA) {
	if !positive(size) {
		return
	}
	r.rec.SetFont(r.fonts.Face(size))
	r.rec.SetFontSize(size)
	r.rec.SetColor(col)
	r.rec.DrawString(s, origin.X, origin.Y)
}

func (r *Recorder) applyStroke(s ring.Stroke) {
	r.rec.SetColor(s.Color)
	r.rec.SetLineWidth(s.Width)
	r.rec.SetLineCapGG(s.Cap)
}
