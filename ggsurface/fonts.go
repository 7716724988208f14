package ggsurface

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts hands out label faces from a single font source, one per size.
type Fonts struct {
	source *text.FontSource
	faces  map[float64]text.Face
}

// NewFonts creates a face cache over source. The caller keeps ownership
// of source.
func NewFonts(source *text.FontSource) *Fonts {
	return &Fonts{
		source: source,
		faces:  make(map[float64]text.Face),
	}
}

// DefaultFonts returns a face cache over Go Regular.
func DefaultFonts() (*Fonts, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggsurface: load default font: %w", err)
	}
	return NewFonts(source), nil
}

// Face returns the face for size, creating it on first use. Only
// positive finite sizes are cached.
func (f *Fonts) Face(size float64) text.Face {
	if !positive(size) {
		return f.source.Face(size)
	}
	face, ok := f.faces[size]
	if !ok {
		face = f.source.Face(size)
		f.faces[size] = face
	}
	return face
}

// Measure returns the advance width of s and the height of its digits.
//
// The height is the cap height of the face, falling back to the ascent
// when the font does not report one. Label text is digits and '%', which
// sit on the baseline and reach cap height, so this is the height that
// centers the label vertically.
//
// The width is the advance width, not the ink width, so the label sits
// off center by half the difference of its side bearings.
//
// A size that is not positive and finite measures 0x0.
func (f *Fonts) Measure(s string, size float64) (w, h float64) {
	if s == "" || !positive(size) {
		return 0, 0
	}
	face := f.Face(size)
	m := face.Metrics()
	h = m.CapHeight
	if h <= 0 {
		h = m.Ascent
	}
	return face.Advance(s), h
}

// Close releases the underlying font source.
func (f *Fonts) Close() error {
	clear(f.faces)
	return f.source.Close()
}
