package ring

import "github.com/gogpu/gg"

// View is a circular progress indicator bound to a viewport.
//
// The host calls Layout whenever the viewport or its padding changes and
// Draw whenever it repaints. Setters update the state and then call the
// invalidator so the host can schedule a repaint. Only the setters that
// feed the layout (stroke width, radius, density, padding mode) resolve
// the geometry again.
//
// A View is not safe for concurrent use.
type View struct {
	cfg        Config
	invalidate func()

	width, height float64
	padding       Insets
	laidOut       bool
	geom          Geometry

	// maxReported is set once ErrInvalidMax has been logged for the
	// current Max.
	maxReported bool
}

// NewView creates a View with the default configuration unless
// WithConfig is given.
func NewView(opts ...ViewOption) *View {
	o := defaultViewOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &View{
		cfg:        o.config,
		invalidate: o.invalidate,
	}
}

// Layout records the viewport size and padding and resolves the geometry.
func (v *View) Layout(width, height float64, padding Insets) {
	v.width, v.height, v.padding = width, height, padding
	v.laidOut = true
	v.relayout()
}

func (v *View) relayout() {
	if !v.laidOut {
		return
	}
	v.geom = Resolve(v.cfg.Request(v.width, v.height, v.padding))
	Logger().Debug("ring: layout",
		"width", v.width, "height", v.height,
		"radius", v.geom.Radius, "strokeWidth", v.geom.StrokeWidth)
}

// Geometry returns the last resolved geometry, or the zero Geometry if
// Layout has not been called.
func (v *View) Geometry() Geometry {
	return v.geom
}

// Config returns a copy of the current state.
func (v *View) Config() Config {
	return v.cfg
}

// Draw renders the ring into s. It does nothing before the first Layout.
func (v *View) Draw(s Surface) {
	if !v.laidOut {
		Logger().Debug("ring: draw before layout skipped")
		return
	}
	if v.cfg.Max <= 0 && !v.maxReported {
		v.maxReported = true
		Logger().Warn("ring: drawing empty progress", "max", v.cfg.Max, "err", ErrInvalidMax)
	}
	Render(s, v.geom, v.cfg.Paint())
}

// Progress returns the progress value.
func (v *View) Progress() int { return v.cfg.Progress }

// SetProgress sets the progress value. It is not clamped to [0, Max].
func (v *View) SetProgress(progress int) {
	v.cfg.Progress = progress
	v.invalidate()
}

// Max returns the progress maximum.
func (v *View) Max() int { return v.cfg.Max }

// SetMax sets the progress maximum. A value of zero or less draws an
// empty ring and is logged once.
func (v *View) SetMax(n int) {
	if n != v.cfg.Max {
		v.maxReported = false
	}
	v.cfg.Max = n
	v.invalidate()
}

// BackgroundColor returns the track color.
func (v *View) BackgroundColor() gg.RGBA { return v.cfg.BackgroundColor }

// SetBackgroundColor sets the track color.
func (v *View) SetBackgroundColor(c gg.RGBA) {
	v.cfg.BackgroundColor = c
	v.invalidate()
}

// ProgressColor returns the arc color.
func (v *View) ProgressColor() gg.RGBA { return v.cfg.ProgressColor }

// SetProgressColor sets the arc color.
func (v *View) SetProgressColor(c gg.RGBA) {
	v.cfg.ProgressColor = c
	v.invalidate()
}

// LabelColor returns the label color.
func (v *View) LabelColor() gg.RGBA { return v.cfg.LabelColor }

// SetLabelColor sets the label color.
func (v *View) SetLabelColor(c gg.RGBA) {
	v.cfg.LabelColor = c
	v.invalidate()
}

// StrokeWidth returns the requested stroke width in device-independent units.
func (v *View) StrokeWidth() float64 { return v.cfg.StrokeWidth }

// SetStrokeWidth sets the requested stroke width and resolves the layout.
func (v *View) SetStrokeWidth(w float64) {
	v.cfg.StrokeWidth = w
	v.relayout()
	v.invalidate()
}

// Radius returns the requested radius in pixels, 0 meaning auto.
func (v *View) Radius() float64 { return v.cfg.Radius }

// SetRadius sets the requested radius and resolves the layout.
func (v *View) SetRadius(r float64) {
	v.cfg.Radius = r
	v.relayout()
	v.invalidate()
}

// StartAngle returns the arc start angle in degrees.
func (v *View) StartAngle() float64 { return v.cfg.StartAngle }

// SetStartAngle sets the arc start angle in degrees.
func (v *View) SetStartAngle(deg float64) {
	v.cfg.StartAngle = deg
	v.invalidate()
}

// LabelVisible reports whether the percentage label is drawn.
func (v *View) LabelVisible() bool { return v.cfg.LabelVisible }

// SetLabelVisible shows or hides the percentage label.
func (v *View) SetLabelVisible(visible bool) {
	v.cfg.LabelVisible = visible
	v.invalidate()
}

// LabelSize returns the label size in device-independent units.
func (v *View) LabelSize() float64 { return v.cfg.LabelSize }

// SetLabelSize sets the label size.
func (v *View) SetLabelSize(size float64) {
	v.cfg.LabelSize = size
	v.invalidate()
}

// StrokeCapRound reports whether the arc has round caps.
func (v *View) StrokeCapRound() bool { return v.cfg.StrokeCapRound }

// SetStrokeCapRound switches the arc between round and butt caps.
func (v *View) SetStrokeCapRound(round bool) {
	v.cfg.StrokeCapRound = round
	v.invalidate()
}

// Density returns the device-independent to pixel scale.
func (v *View) Density() float64 { return v.cfg.Density }

// SetDensity sets the device-independent to pixel scale and resolves the
// layout.
func (v *View) SetDensity(d float64) {
	v.cfg.Density = d
	v.relayout()
	v.invalidate()
}

// PaddingMode returns the padding-axis selection.
func (v *View) PaddingMode() PaddingMode { return v.cfg.PaddingMode }

// SetPaddingMode sets the padding-axis selection and resolves the layout.
func (v *View) SetPaddingMode(m PaddingMode) {
	v.cfg.PaddingMode = m
	v.relayout()
	v.invalidate()
}
