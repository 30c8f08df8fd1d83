// Package config holds the settings of a conversion run,
// optionally read from a YAML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/ioutil"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/benoitkugler/hpgl/hpgldraw"
)

// Default values, matching the usual plotter setup
// (1016 units per inch) rendered at 300 dpi.
const (
	DefaultSourceResolution = 1016
	DefaultTargetResolution = 300
	DefaultStrokeWidth      = 3
	DefaultFormat           = "pdf"
)

var ErrUnknownColor = errors.New("unknown color")

// RenderConfig is read-only during a conversion run.
type RenderConfig struct {
	SourceResolution float64    // units per inch of the command stream
	TargetResolution float64    // units per inch of the output
	StrokeColor      color.NRGBA // shared by every pen
	StrokeWidth      float64    // in target units
}

// Style returns the drawing style expected by the backends.
func (c RenderConfig) Style() hpgldraw.Style {
	return hpgldraw.Style{Color: c.StrokeColor, Width: c.StrokeWidth}
}

// Validate checks the resolutions and stroke width.
func (c RenderConfig) Validate() error {
	if !(c.SourceResolution > 0) || math.IsInf(c.SourceResolution, 0) {
		return fmt.Errorf("source resolution: %w: %g", hpgldraw.ErrInvalidResolution, c.SourceResolution)
	}
	if !(c.TargetResolution > 0) || math.IsInf(c.TargetResolution, 0) {
		return fmt.Errorf("target resolution: %w: %g", hpgldraw.ErrInvalidResolution, c.TargetResolution)
	}
	if c.StrokeWidth < 0 || math.IsNaN(c.StrokeWidth) || math.IsInf(c.StrokeWidth, 0) {
		return fmt.Errorf("invalid stroke width %g", c.StrokeWidth)
	}
	return nil
}

// File is the YAML representation of a configuration.
// Zero fields keep their default value.
type File struct {
	Format           string  `yaml:"format"`
	SourceResolution float64 `yaml:"source_dpi"`
	TargetResolution float64 `yaml:"target_dpi"`
	StrokeColor      string  `yaml:"stroke_color"`
	StrokeWidth      float64 `yaml:"stroke_width"`
	Charset          string  `yaml:"charset"`
	Errors           string  `yaml:"errors"`
}

// Settings is the full configuration of the converter.
type Settings struct {
	Render  RenderConfig
	Format  string
	Charset string
	Errors  string // "ignore", "warn" or "strict"
}

// Default returns the settings used without configuration file.
func Default() Settings {
	return Settings{
		Render: RenderConfig{
			SourceResolution: DefaultSourceResolution,
			TargetResolution: DefaultTargetResolution,
			StrokeColor:      color.NRGBA{A: 0xff},
			StrokeWidth:      DefaultStrokeWidth,
		},
		Format: DefaultFormat,
		Errors: "warn",
	}
}

// Apply overrides `s` with the non zero fields of `f`.
func (f File) Apply(s Settings) (Settings, error) {
	if f.Format != "" {
		s.Format = f.Format
	}
	if f.SourceResolution != 0 {
		s.Render.SourceResolution = f.SourceResolution
	}
	if f.TargetResolution != 0 {
		s.Render.TargetResolution = f.TargetResolution
	}
	if f.StrokeColor != "" {
		c, err := ParseColor(f.StrokeColor)
		if err != nil {
			return s, err
		}
		s.Render.StrokeColor = c
	}
	if f.StrokeWidth != 0 {
		s.Render.StrokeWidth = f.StrokeWidth
	}
	if f.Charset != "" {
		s.Charset = f.Charset
	}
	if f.Errors != "" {
		s.Errors = f.Errors
	}
	return s, s.Render.Validate()
}

// Parse decodes a YAML configuration on top of the defaults.
func Parse(data []byte) (Settings, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Settings{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return f.Apply(Default())
}

// Load reads the named YAML configuration file.
func Load(name string) (Settings, error) {
	data, err := ioutil.ReadFile(name)
	if err != nil {
		return Settings{}, fmt.Errorf("read %s: %w", name, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", name, err)
	}
	return s, nil
}

// ParseColor accepts a SVG color name (as in golang.org/x/image/colornames),
// or an hexadecimal #rgb, #rrggbb or #rrggbbaa value.
// The alpha channel is kept apart from the color components.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok { // opaque
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
