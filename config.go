package ring

import (
	"errors"

	"github.com/gogpu/gg"
)

// Default style values.
var (
	DefaultBackgroundColor = gg.Hex("#F2F2F2")
	DefaultProgressColor   = gg.Hex("#73B2FF")
	DefaultLabelColor      = gg.Hex("#222222")
)

// Default progress and sizes. Sizes are device-independent.
const (
	DefaultProgress    = 65
	DefaultMax         = 100
	DefaultStrokeWidth = 20.0
	DefaultLabelSize   = 14.0
	DefaultStartAngle  = -90.0
)

// Config holds the style and progress state of a ring.
//
// StrokeWidth and LabelSize are device-independent and get multiplied by
// Density when drawing. Radius is in pixels.
type Config struct {
	Progress int
	Max      int

	BackgroundColor gg.RGBA
	ProgressColor   gg.RGBA
	LabelColor      gg.RGBA

	StrokeWidth float64
	Radius      float64
	StartAngle  float64

	LabelVisible   bool
	LabelSize      float64
	StrokeCapRound bool

	Density     float64
	PaddingMode PaddingMode
}

// DefaultConfig returns a 65% ring with a 20dp light grey track, a blue
// arc starting at 12 o'clock and a 14dp label.
func DefaultConfig() Config {
	return Config{
		Progress:        DefaultProgress,
		Max:             DefaultMax,
		BackgroundColor: DefaultBackgroundColor,
		ProgressColor:   DefaultProgressColor,
		LabelColor:      DefaultLabelColor,
		StrokeWidth:     DefaultStrokeWidth,
		StartAngle:      DefaultStartAngle,
		LabelVisible:    true,
		LabelSize:       DefaultLabelSize,
		Density:         1,
		PaddingMode:     PaddingCrossAxis,
	}
}

// Validate reports every field that would render a degenerate ring.
// The returned error matches the relevant sentinels with errors.Is.
func (c Config) Validate() error {
	var errs []error
	if c.Max <= 0 {
		errs = append(errs, ErrInvalidMax)
	}
	if c.StrokeWidth < 0 {
		errs = append(errs, ErrNegativeStrokeWidth)
	}
	if c.Radius < 0 {
		errs = append(errs, ErrNegativeRadius)
	}
	if !(c.LabelSize > 0) {
		errs = append(errs, ErrInvalidLabelSize)
	}
	if !(c.Density > 0) {
		errs = append(errs, ErrInvalidDensity)
	}
	return errors.Join(errs...)
}

// Request builds the layout request for a viewport.
func (c Config) Request(width, height float64, padding Insets) Request {
	return Request{
		Width:       width,
		Height:      height,
		Padding:     padding,
		Radius:      c.Radius,
		StrokeWidth: c.StrokeWidth * c.Density,
		Mode:        c.PaddingMode,
	}
}

// Paint returns the drawing parameters in pixels.
func (c Config) Paint() Paint {
	return Paint{
		Progress:        c.Progress,
		Max:             c.Max,
		BackgroundColor: c.BackgroundColor,
		ProgressColor:   c.ProgressColor,
		LabelColor:      c.LabelColor,
		StartAngle:      c.StartAngle,
		RoundCap:        c.StrokeCapRound,
		LabelVisible:    c.LabelVisible,
		LabelSize:       c.LabelSize * c.Density,
	}
}
