// Package palette implements the color arithmetic behind makedot themes:
// luminance shifting, interpolation and the mapping of RGB values onto the xterm 256-color table.
package palette

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Step is the luminance delta applied by Darken and Lighten.
const Step = 0.1

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Color is an immutable RGB color. Every derivation returns a new value.
type Color struct {
	rgb colorful.Color
}

// Parse reads a #rgb or #rrggbb hex string. The leading '#' is optional.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !hexPattern.MatchString(s) {
		return Color{}, fmt.Errorf("invalid color %q: expected #rgb or #rrggbb", s)
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return Color{rgb: c}, nil
}

// MustParse is like Parse but panics on malformed input. Meant for built-in constants.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the lowercase #rrggbb form.
func (c Color) Hex() string {
	return c.rgb.Clamped().Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the color as its hex form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a hex color.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// RGB returns the channels in the [0, 1] range.
func (c Color) RGB() (r, g, b float64) {
	return c.rgb.R, c.rgb.G, c.rgb.B
}

// Luminance is the HSL lightness of the color, in [0, 1].
func (c Color) Luminance() float64 {
	_, _, l := c.rgb.Hsl()
	return l
}

// WithLuminance returns the color with its HSL lightness replaced, hue and saturation kept.
// The value is clamped to [0, 1].
func (c Color) WithLuminance(l float64) Color {
	h, s, _ := c.rgb.Hsl()
	return Color{rgb: colorful.Hsl(h, s, clamp(l))}
}

// Shift lowers the luminance by sep. A negative sep lightens.
func (c Color) Shift(sep float64) Color {
	return c.WithLuminance(c.Luminance() - sep)
}

// Darken lowers the luminance by one Step.
func (c Color) Darken() Color {
	return c.Shift(Step)
}

// Lighten raises the luminance by one Step.
func (c Color) Lighten() Color {
	return c.Shift(-Step)
}

// Xterm returns the closest xterm 256-color index.
func (c Color) Xterm() int {
	r, g, b := c.RGB()
	return XtermIndex(r, g, b)
}

func clamp(v float64) float64 {
	return max(0, min(1, v))
}
