// Package config loads the TOML file describing the window, the scroll
// viewer, its content and the colour theme.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/OpticalFlyer/strata/layout"
	"github.com/OpticalFlyer/strata/theme"
)

// Config is the whole configuration file.
type Config struct {
	Window  Window      `toml:"window"`
	Viewer  Viewer      `toml:"viewer"`
	Content Content     `toml:"content"`
	Theme   theme.Theme `toml:"theme"`
}

// Window is the host window.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Viewer is the scroll viewer's viewport and per-axis scroll policy.
type Viewer struct {
	X          float64           `toml:"x"`
	Y          float64           `toml:"y"`
	Width      float64           `toml:"width"`
	Height     float64           `toml:"height"`
	Horizontal layout.ScrollMode `toml:"horizontal"`
	Vertical   layout.ScrollMode `toml:"vertical"`
}

// Mode returns the viewer's scroll policy.
func (v Viewer) Mode() layout.ScrollViewerMode {
	return layout.ScrollViewerMode{Horizontal: v.Horizontal, Vertical: v.Vertical}
}

// Content describes the rows placed inside the viewer.
type Content struct {
	Rows      int     `toml:"rows"`
	RowWidth  float64 `toml:"row_width"`
	RowHeight float64 `toml:"row_height"`
	RowGap    float64 `toml:"row_gap"`
	// Shapefile, when set, supplies one row per record of its attribute
	// table instead of generated rows.
	Shapefile string `toml:"shapefile"`
	Field     string `toml:"field"`
}

// Default returns a complete configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "strata",
		},
		Viewer: Viewer{
			X:          10,
			Y:          10,
			Width:      320,
			Height:     240,
			Horizontal: layout.ScrollAuto,
			Vertical:   layout.ScrollAuto,
		},
		Content: Content{
			Rows:      40,
			RowWidth:  420,
			RowHeight: 24,
			RowGap:    2,
		},
		Theme: theme.Default(),
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s failed: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults.
func Decode(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config failed: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %s", undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects sizes and counts the scene cannot be built from.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewer size %gx%g must be positive", c.Viewer.Width, c.Viewer.Height))
	}
	if c.Content.Rows < 0 {
		errs = append(errs, fmt.Errorf("content rows %d must not be negative", c.Content.Rows))
	}
	if c.Content.RowWidth <= 0 || c.Content.RowHeight <= 0 {
		errs = append(errs, fmt.Errorf("row size %gx%g must be positive", c.Content.RowWidth, c.Content.RowHeight))
	}
	if c.Content.RowGap < 0 {
		errs = append(errs, fmt.Errorf("row gap %g must not be negative", c.Content.RowGap))
	}
	if err := c.Theme.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
