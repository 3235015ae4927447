// Package config loads fbdraw command configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/fbdraw/fbdev"
	"github.com/gogpu/fbdraw/text"
)

// Config is the fbdraw command configuration.
type Config struct {
	// Output device
	Device string `yaml:"device"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Output string `yaml:"output"`
	Scale  int    `yaml:"scale"`

	// Fonts
	FontCache       int     `yaml:"font_cache"`
	DefaultFont     string  `yaml:"default_font"`
	DefaultFontSize float64 `yaml:"default_font_size"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Device: fbdev.DefaultPath,
		Width:  640,
		Height: 480,
		Scale:  1,

		FontCache:       text.DefaultSourceCacheSize,
		DefaultFontSize: 1,

		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file. Keys missing from the
// file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Headless reports whether rendering goes to a PNG file instead of a
// framebuffer device.
func (c Config) Headless() bool {
	return c.Output != ""
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Headless() && (c.Width <= 0 || c.Height <= 0):
		return fmt.Errorf("config: headless size %dx%d must be positive", c.Width, c.Height)
	case !c.Headless() && c.Device == "":
		return fmt.Errorf("config: no device and no output")
	case c.Scale < 1:
		return fmt.Errorf("config: scale %d must be at least 1", c.Scale)
	case c.FontCache < 0:
		return fmt.Errorf("config: font_cache %d must not be negative", c.FontCache)
	case c.DefaultFontSize < 0:
		return fmt.Errorf("config: default_font_size %v must not be negative", c.DefaultFontSize)
	}
	_, err := c.Level()
	return err
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("config: log_level: %w", err)
	}
	return l, nil
}
