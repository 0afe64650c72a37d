// Package color provides the colors used for CLI output.
package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/makedot/makedot/palette"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Of converts a palette color for display.
func Of(c palette.Color) lipgloss.Color {
	return New(c.Hex())
}

// Contrast picks black or white, whichever reads better on top of c.
func Contrast(c palette.Color) lipgloss.Color {
	if c.Luminance() > 0.5 {
		return New("#000000")
	}
	return New("#ffffff")
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
)

// HiPurple is the high-intensity variant of Purple, used for headings.
var HiPurple = New("13")
