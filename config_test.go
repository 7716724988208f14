package ring

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Progress != 65 || c.Max != 100 {
		t.Errorf("progress = %d/%d, want 65/100", c.Progress, c.Max)
	}
	if c.StrokeWidth != 20 || c.LabelSize != 14 || c.Radius != 0 {
		t.Errorf("sizes = stroke %v label %v radius %v, want 20 14 0", c.StrokeWidth, c.LabelSize, c.Radius)
	}
	if c.StartAngle != -90 {
		t.Errorf("StartAngle = %v, want -90", c.StartAngle)
	}
	if !c.LabelVisible || c.StrokeCapRound {
		t.Errorf("LabelVisible = %v, StrokeCapRound = %v, want true false", c.LabelVisible, c.StrokeCapRound)
	}
	if c.ProgressColor != gg.Hex("73B2FF") {
		t.Errorf("ProgressColor = %v, want #73B2FF", c.ProgressColor)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   []error
	}{
		{"zero max", func(c *Config) { c.Max = 0 }, []error{ErrInvalidMax}},
		{"negative stroke", func(c *Config) { c.StrokeWidth = -1 }, []error{ErrNegativeStrokeWidth}},
		{"negative radius", func(c *Config) { c.Radius = -3 }, []error{ErrNegativeRadius}},
		{"zero label", func(c *Config) { c.LabelSize = 0 }, []error{ErrInvalidLabelSize}},
		{"zero density", func(c *Config) { c.Density = 0 }, []error{ErrInvalidDensity}},
		{
			"several",
			func(c *Config) { c.Max = -1; c.Density = -2 },
			[]error{ErrInvalidMax, ErrInvalidDensity},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("Validate() = %v, want it to match %v", err, want)
				}
			}
		})
	}
}

func TestConfig_DensityScaling(t *testing.T) {
	c := DefaultConfig()
	c.Density = 2

	req := c.Request(400, 400, Insets{})
	if req.StrokeWidth != 40 {
		t.Errorf("Request().StrokeWidth = %v, want 40", req.StrokeWidth)
	}
	if req.Radius != 0 {
		t.Errorf("Request().Radius = %v, want 0 (radius is already in pixels)", req.Radius)
	}
	if p := c.Paint(); p.LabelSize != 28 {
		t.Errorf("Paint().LabelSize = %v, want 28", p.LabelSize)
	}
}
