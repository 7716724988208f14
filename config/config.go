// Package config loads ring styles from files and environment variables.
//
// A style file sets any subset of the keys below; missing keys keep the
// ring.DefaultConfig values. TOML, YAML and JSON are accepted, picked by
// file extension.
//
//	progress         = 40
//	max              = 100
//	background_color = "#F2F2F2"
//	progress_color   = "#73B2FF"
//	label_color      = "#222222"
//	stroke_width     = 20
//	radius           = 0
//	start_angle      = -90
//	label_visible    = true
//	label_size       = 14
//	stroke_cap_round = false
//	density          = 1
//	padding_mode     = "cross"   # or "constraining"
//
// Every key can be overridden with a RING_ environment variable, e.g.
// RING_PROGRESS=80 or RING_PROGRESS_COLOR=#FF0000.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/ring"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "RING"

var (
	// ErrInvalidColor is returned for a color that is not #RGB, #RGBA,
	// #RRGGBB or #RRGGBBAA.
	ErrInvalidColor = errors.New("config: invalid color")

	// ErrInvalidPaddingMode is returned for an unknown padding_mode.
	ErrInvalidPaddingMode = errors.New("config: invalid padding mode")
)

// attributes mirrors ring.Config with file-friendly types.
type attributes struct {
	Progress        int     `mapstructure:"progress"`
	Max             int     `mapstructure:"max"`
	BackgroundColor string  `mapstructure:"background_color"`
	ProgressColor   string  `mapstructure:"progress_color"`
	LabelColor      string  `mapstructure:"label_color"`
	StrokeWidth     float64 `mapstructure:"stroke_width"`
	Radius          float64 `mapstructure:"radius"`
	StartAngle      float64 `mapstructure:"start_angle"`
	LabelVisible    bool    `mapstructure:"label_visible"`
	LabelSize       float64 `mapstructure:"label_size"`
	StrokeCapRound  bool    `mapstructure:"stroke_cap_round"`
	Density         float64 `mapstructure:"density"`
	PaddingMode     string  `mapstructure:"padding_mode"`
}

// Load reads a style from path, applies environment overrides and
// validates the result. An empty path loads defaults plus environment.
func Load(path string) (ring.Config, error) {
	v := viper.New()
	setDefaults(v, ring.DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return ring.Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var a attributes
	if err := v.Unmarshal(&a); err != nil {
		return ring.Config{}, fmt.Errorf("config: decode: %w", err)
	}

	cfg, err := a.config()
	if err != nil {
		return ring.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ring.Config{}, fmt.Errorf("config: %w", err)
	}

	ring.Logger().Debug("config: loaded", "path", path, "progress", cfg.Progress, "max", cfg.Max)
	return cfg, nil
}

func setDefaults(v *viper.Viper, c ring.Config) {
	v.SetDefault("progress", c.Progress)
	v.SetDefault("max", c.Max)
	v.SetDefault("background_color", FormatColor(c.BackgroundColor))
	v.SetDefault("progress_color", FormatColor(c.ProgressColor))
	v.SetDefault("label_color", FormatColor(c.LabelColor))
	v.SetDefault("stroke_width", c.StrokeWidth)
	v.SetDefault("radius", c.Radius)
	v.SetDefault("start_angle", c.StartAngle)
	v.SetDefault("label_visible", c.LabelVisible)
	v.SetDefault("label_size", c.LabelSize)
	v.SetDefault("stroke_cap_round", c.StrokeCapRound)
	v.SetDefault("density", c.Density)
	v.SetDefault("padding_mode", c.PaddingMode.String())
}

func (a attributes) config() (ring.Config, error) {
	c := ring.Config{
		Progress:       a.Progress,
		Max:            a.Max,
		StrokeWidth:    a.StrokeWidth,
		Radius:         a.Radius,
		StartAngle:     a.StartAngle,
		LabelVisible:   a.LabelVisible,
		LabelSize:      a.LabelSize,
		StrokeCapRound: a.StrokeCapRound,
		Density:        a.Density,
	}

	var err error
	if c.BackgroundColor, err = ParseColor(a.BackgroundColor); err != nil {
		return ring.Config{}, fmt.Errorf("config: background_color: %w", err)
	}
	if c.ProgressColor, err = ParseColor(a.ProgressColor); err != nil {
		return ring.Config{}, fmt.Errorf("config: progress_color: %w", err)
	}
	if c.LabelColor, err = ParseColor(a.LabelColor); err != nil {
		return ring.Config{}, fmt.Errorf("config: label_color: %w", err)
	}
	if c.PaddingMode, err = ParsePaddingMode(a.PaddingMode); err != nil {
		return ring.Config{}, fmt.Errorf("config: padding_mode: %w", err)
	}
	return c, nil
}

// ParseColor parses a hex color with an optional leading '#'.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		isHex := '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
		if !isHex {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(hex), nil
}

// FormatColor returns c as #RRGGBB, or #RRGGBBAA when c is translucent.
func FormatColor(c gg.RGBA) string {
	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	if a == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// ParsePaddingMode parses "cross" or "constraining".
func ParsePaddingMode(s string) (ring.PaddingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", ring.PaddingCrossAxis.String():
		return ring.PaddingCrossAxis, nil
	case ring.PaddingConstrainingAxis.String():
		return ring.PaddingConstrainingAxis, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPaddingMode, s)
	}
}
