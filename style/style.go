// Package style provides a functional API for composing and applying lipgloss-based styles.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/makedot/makedot/color"
	"github.com/makedot/makedot/palette"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Standard text transformations.
var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Swatch renders a padded block filled with c, labelled with its hex value.
func Swatch(c palette.Color) string {
	return Colored(color.Contrast(c), color.Of(c)).Padding(0, 1).Render(c.Hex())
}

// SwatchWithIndex renders a swatch followed by the color's xterm 256 index.
func SwatchWithIndex(c palette.Color) string {
	return fmt.Sprintf("%s %s", Swatch(c), Faint(fmt.Sprintf("%3d", c.Xterm())))
}
