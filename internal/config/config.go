// Package config loads the gopoly settings file.
//
// The file is TOML. Every key is optional; missing keys keep their defaults:
//
//	[window]
//	width = 1000
//	height = 700
//
//	[shape]
//	default_radius = 100.0
//
//	[style]
//	background = "#FFFFFF"
//	fill = "#FF0000"
//	outline = "#000000"
//	outline_width = 5.0
//	marker = "#0000FF"
//	marker_size = 10.0
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/internal/layout"
	"github.com/philipparndt/gopoly/internal/logging"
)

// FileName is the name of the settings file inside the config directory
const FileName = "gopoly.toml"

// Config holds all settings
type Config struct {
	Window WindowConfig `toml:"window"`
	Shape  ShapeConfig  `toml:"shape"`
	Style  StyleConfig  `toml:"style"`
}

// WindowConfig holds the initial window size
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// ShapeConfig holds settings for newly placed shapes
type ShapeConfig struct {
	DefaultRadius float64 `toml:"default_radius"`
}

// StyleConfig holds the canvas colors (as #RRGGBB or #RRGGBBAA) and sizes
type StyleConfig struct {
	Background   string  `toml:"background"`
	Fill         string  `toml:"fill"`
	Outline      string  `toml:"outline"`
	OutlineWidth float64 `toml:"outline_width"`
	Marker       string  `toml:"marker"`
	MarkerSize   float64 `toml:"marker_size"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  layout.DefaultWindowWidth,
			Height: layout.DefaultWindowHeight,
		},
		Shape: ShapeConfig{
			DefaultRadius: editor.DefaultRadius,
		},
		Style: StyleConfig{
			Background:   "#FFFFFF",
			Fill:         "#FF0000",
			Outline:      "#000000",
			OutlineWidth: 5,
			Marker:       "#0000FF",
			MarkerSize:   10,
		},
	}
}

// DefaultPath returns the settings file location in the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "gopoly", FileName), nil
}

// Load reads the settings file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Logger().Debug("no settings file, using defaults", "path", path)
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	warnUndecoded(meta, path)

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the settings file at path, or at DefaultPath when path is
// empty, and returns the settings with the path that was used. Broken or
// unreadable settings are logged and replaced by the defaults. The returned
// path is empty only when no config directory exists.
func Resolve(path string) (Config, string) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			logging.Logger().Warn("using default settings", "error", err)
			return Default(), ""
		}
		path = p
	}

	cfg, err := Load(path)
	if err != nil {
		logging.Logger().Warn("using default settings", "error", err)
	}
	return cfg, path
}

// Parse decodes settings from TOML text on top of the defaults
func Parse(data string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse settings: %w", err)
	}
	warnUndecoded(meta, "")

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func warnUndecoded(meta toml.MetaData, path string) {
	for _, key := range meta.Undecoded() {
		logging.Logger().Warn("unknown settings key", "key", key.String(), "path", path)
	}
}

// Validate checks ranges and colors
func (c Config) Validate() error {
	if c.Window.Width < layout.PaletteWidth+layout.Padding*4 {
		return fmt.Errorf("window width %d is too small", c.Window.Width)
	}
	if c.Window.Height < layout.PaletteHeight+layout.ButtonHeight+layout.Padding*4 {
		return fmt.Errorf("window height %d is too small", c.Window.Height)
	}
	if c.Shape.DefaultRadius <= 0 {
		return fmt.Errorf("default_radius must be positive, got %v", c.Shape.DefaultRadius)
	}
	if _, err := c.Style.EditorStyle(); err != nil {
		return err
	}
	return nil
}

// EditorStyle converts the style settings to an editor style
func (s StyleConfig) EditorStyle() (editor.Style, error) {
	var style editor.Style
	var err error

	colors := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"background", s.Background, &style.Background},
		{"fill", s.Fill, &style.Fill},
		{"outline", s.Outline, &style.Outline},
		{"marker", s.Marker, &style.Marker},
	}
	for _, c := range colors {
		if *c.dst, err = ParseColor(c.value); err != nil {
			return editor.Style{}, fmt.Errorf("style.%s: %w", c.name, err)
		}
	}

	if s.OutlineWidth < 0 {
		return editor.Style{}, fmt.Errorf("style.outline_width must not be negative, got %v", s.OutlineWidth)
	}
	if s.MarkerSize <= 0 {
		return editor.Style{}, fmt.Errorf("style.marker_size must be positive, got %v", s.MarkerSize)
	}
	style.OutlineWidth = s.OutlineWidth
	style.MarkerSize = s.MarkerSize
	return style, nil
}

// ParseColor parses #RRGGBB or #RRGGBBAA. The hex alpha is straight; the
// result is alpha-premultiplied like every color.RGBA.
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("invalid color %q (want #RRGGBB or #RRGGBBAA)", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	straight := color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return color.RGBAModel.Convert(straight).(color.RGBA), nil
}
