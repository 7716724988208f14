package ggsurface

import (
	"math"

	"github.com/gogpu/gg"
)

const fullTurn = 360.0

// arc is a circular arc in gg's terms: center, radius and a pair of
// angles in radians with a1 < a2.
type arc struct {
	cx, cy, r float64
	a1, a2    float64
}

// arcFromBounds converts a ring arc (degrees, signed sweep) into gg's
// increasing angle pair. A sweep of a full turn or more is drawn as one
// full turn. A negative sweep covers the same points as the positive sweep
// ending at start, so the angles are swapped. ok is false when there is
// nothing to draw.
func arcFromBounds(bounds gg.Rect, startDeg, sweepDeg float64) (a arc, ok bool) {
	if sweepDeg == 0 || math.IsNaN(sweepDeg) || math.IsInf(sweepDeg, 0) {
		return arc{}, false
	}
	a.r = bounds.Width() / 2
	if !positive(a.r) {
		return arc{}, false
	}
	a.cx = (bounds.Min.X + bounds.Max.X) / 2
	a.cy = (bounds.Min.Y + bounds.Max.Y) / 2

	sweepDeg = math.Copysign(math.Min(math.Abs(sweepDeg), fullTurn), sweepDeg)
	a.a1 = radians(startDeg)
	a.a2 = radians(startDeg + sweepDeg)
	if sweepDeg < 0 {
		a.a1, a.a2 = a.a2, a.a1
	}
	return a, true
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// positive reports whether v is a usable length: strictly positive and
// finite.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
