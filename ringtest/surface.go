// Package ringtest provides a ring.Surface that records calls instead of
// drawing, for testing hosts and renderers.
package ringtest

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ring"
)

// OpKind identifies a recorded Surface call.
type OpKind int

const (
	OpCircle OpKind = iota
	OpArc
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpCircle:
		return "circle"
	case OpArc:
		return "arc"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call. Fields that do not apply to Kind are zero.
type Op struct {
	Kind OpKind

	Center gg.Point
	Radius float64

	Bounds gg.Rect
	Start  float64
	Sweep  float64

	Stroke ring.Stroke

	Text   string
	Origin gg.Point
	Size   float64
	Color  gg.RGBA
}

// Surface records draw calls in order. MeasureText is not recorded.
type Surface struct {
	Ops []Op

	// CharWidth and LineHeight scale MeasureText: a string of n bytes at
	// size s measures n*CharWidth*s by LineHeight*s.
	CharWidth  float64
	LineHeight float64
}

var _ ring.Surface = (*Surface)(nil)

// NewSurface returns a Surface measuring text at 0.5 em per character and
// 1 em per line.
func NewSurface() *Surface {
	return &Surface{CharWidth: 0.5, LineHeight: 1}
}

// StrokeCircle implements ring.Surface.
func (s *Surface) StrokeCircle(center gg.Point, radius float64, stroke ring.Stroke) {
	s.Ops = append(s.Ops, Op{Kind: OpCircle, Center: center, Radius: radius, Stroke: stroke})
}

// StrokeArc implements ring.Surface.
func (s *Surface) StrokeArc(bounds gg.Rect, start, sweep float64, stroke ring.Stroke) {
	s.Ops = append(s.Ops, Op{Kind: OpArc, Bounds: bounds, Start: start, Sweep: sweep, Stroke: stroke})
}

// MeasureText implements ring.Surface.
func (s *Surface) MeasureText(text string, size float64) (w, h float64) {
	return float64(len(text)) * s.CharWidth * size, s.LineHeight * size
}

// DrawText implements ring.Surface.
func (s *Surface) DrawText(text string, origin gg.Point, size float64, col gg.RGBA) {
	s.Ops = append(s.Ops, Op{Kind: OpText, Text: text, Origin: origin, Size: size, Color: col})
}

// Kinds returns the kinds of the recorded calls in order.
func (s *Surface) Kinds() []OpKind {
	kinds := make([]OpKind, len(s.Ops))
	for i, op := range s.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Reset drops the recorded calls.
func (s *Surface) Reset() {
	s.Ops = s.Ops[:0]
}
