// Package config loads hoverkit configuration from TOML files, with
// defaults for every setting and optional live reload.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/hoverkit/internal/hover"
	"github.com/dshills/hoverkit/internal/layout"
)

// Config is the root configuration.
type Config struct {
	Hover  HoverConfig  `toml:"hover"`
	Glyph  GlyphConfig  `toml:"glyph"`
	Layout LayoutConfig `toml:"layout"`
}

// HoverConfig configures the content hover widget.
type HoverConfig struct {
	// MaxWidth is the initial max-width style for the hover container.
	MaxWidth int `toml:"max_width"`

	// Padding is added to the measured content width.
	Padding int `toml:"padding"`

	// StealFocus moves input focus onto the hover when it is shown.
	StealFocus bool `toml:"steal_focus"`
}

// GlyphConfig configures the glyph-margin hover indicator.
type GlyphConfig struct {
	// Indicator is the text shown in the margin indicator.
	Indicator string `toml:"indicator"`
}

// LayoutConfig configures editor geometry.
type LayoutConfig struct {
	LineHeight     int `toml:"line_height"`
	MarginLeft     int `toml:"margin_left"`
	MarginWidth    int `toml:"margin_width"`
	MinMarginWidth int `toml:"min_margin_width"`
	ContentWidth   int `toml:"content_width"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	hoverDefaults := hover.DefaultConfig()
	layoutDefaults := layout.DefaultConfig()

	return Config{
		Hover: HoverConfig{
			MaxWidth:   hoverDefaults.MaxWidth,
			Padding:    hoverDefaults.Padding,
			StealFocus: false,
		},
		Glyph: GlyphConfig{
			Indicator: "?",
		},
		Layout: LayoutConfig{
			LineHeight:     layoutDefaults.LineHeight,
			MarginLeft:     layoutDefaults.MarginLeft,
			MarginWidth:    layoutDefaults.MarginWidth,
			MinMarginWidth: layoutDefaults.MinMarginWidth,
			ContentWidth:   layoutDefaults.ContentWidth,
		},
	}
}

// HoverWidget converts the hover section to a widget configuration.
func (c Config) HoverWidget() hover.Config {
	return hover.Config{
		MaxWidth: c.Hover.MaxWidth,
		Padding:  c.Hover.Padding,
	}
}

// LayoutMetrics converts the layout section to a geometry configuration.
func (c Config) LayoutMetrics() layout.Config {
	return layout.Config{
		LineHeight:     c.Layout.LineHeight,
		MarginLeft:     c.Layout.MarginLeft,
		MarginWidth:    c.Layout.MarginWidth,
		MinMarginWidth: c.Layout.MinMarginWidth,
		ContentWidth:   c.Layout.ContentWidth,
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.Hover.MaxWidth < 0 {
		return fmt.Errorf("%w: hover.max_width %d", ErrInvalidValue, c.Hover.MaxWidth)
	}
	if c.Hover.Padding < 0 {
		return fmt.Errorf("%w: hover.padding %d", ErrInvalidValue, c.Hover.Padding)
	}
	if c.Layout.LineHeight < 0 {
		return fmt.Errorf("%w: layout.line_height %d", ErrInvalidValue, c.Layout.LineHeight)
	}
	if c.Layout.ContentWidth < 0 {
		return fmt.Errorf("%w: layout.content_width %d", ErrInvalidValue, c.Layout.ContentWidth)
	}
	return nil
}

// Load reads configuration from a TOML file, overlaying defaults.
// A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return parse(path, data, config)
}

// parse decodes TOML data over base.
func parse(source string, data []byte, base Config) (Config, error) {
	config := base
	if err := toml.Unmarshal(data, &config); err != nil {
		parseErr := &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			line, col := decodeErr.Position()
			parseErr.Line = line
			parseErr.Column = col
			parseErr.Message = decodeErr.Error()
		}
		return base, parseErr
	}

	if err := config.Validate(); err != nil {
		return base, err
	}
	return config, nil
}
