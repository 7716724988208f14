package ring

import "errors"

// Sentinel errors reported by Config.Validate and View.
var (
	// ErrInvalidMax is reported when Max is zero or negative.
	ErrInvalidMax = errors.New("ring: max must be positive")

	// ErrNegativeStrokeWidth is reported when StrokeWidth is negative.
	ErrNegativeStrokeWidth = errors.New("ring: stroke width must not be negative")

	// ErrNegativeRadius is reported when Radius is negative.
	ErrNegativeRadius = errors.New("ring: radius must not be negative")

	// ErrInvalidLabelSize is reported when LabelSize is zero or negative.
	ErrInvalidLabelSize = errors.New("ring: label size must be positive")

	// ErrInvalidDensity is reported when Density is zero or negative.
	ErrInvalidDensity = errors.New("ring: density must be positive")
)
