// Package theme holds the colour palette handed through the layout pass to
// the renderers.
package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Theme names a colour for every kind of box the renderers draw. Colours are
// "#rrggbb" or "#rrggbbaa".
type Theme struct {
	Name       string `toml:"name"`
	Background string `toml:"background"`
	Panel      string `toml:"panel"`
	TitleBar   string `toml:"title_bar"`
	Viewport   string `toml:"viewport"`
	Content    string `toml:"content"`
	Row        string `toml:"row"`
	RowAlt     string `toml:"row_alt"`
	Border     string `toml:"border"`
	Text       string `toml:"text"`
	Track      string `toml:"track"`
	Thumb      string `toml:"thumb"`
}

// Default is the dark palette used when no configuration overrides it.
func Default() Theme {
	return Theme{
		Name:       "dark",
		Background: "#1e1e1e",
		Panel:      "#646464c8",
		TitleBar:   "#3c3c3cc8",
		Viewport:   "#2a2a2a",
		Content:    "#303845",
		Row:        "#3b4a5e",
		RowAlt:     "#34404f",
		Border:     "#000000",
		Text:       "#e6e6e6",
		Track:      "#00000050",
		Thumb:      "#b4b4b4",
	}
}

// Validate reports the first colour that does not parse.
func (t Theme) Validate() error {
	for _, c := range []struct{ key, value string }{
		{"background", t.Background},
		{"panel", t.Panel},
		{"title_bar", t.TitleBar},
		{"viewport", t.Viewport},
		{"content", t.Content},
		{"row", t.Row},
		{"row_alt", t.RowAlt},
		{"border", t.Border},
		{"text", t.Text},
		{"track", t.Track},
		{"thumb", t.Thumb},
	} {
		if _, err := ParseColor(c.value); err != nil {
			return fmt.Errorf("theme %s: %w", c.key, err)
		}
	}
	return nil
}

// Color parses s, falling back to opaque magenta so a bad palette entry is
// visible instead of fatal.
func Color(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.RGBA{R: 255, B: 255, A: 255}
	}
	return c
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("colour %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
