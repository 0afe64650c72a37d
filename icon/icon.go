// Package icon provides a multi-variant rendering engine for feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, or Unicode squares depending on user preference.
package icon

import (
	"github.com/makedot/makedot/color"
	"github.com/makedot/makedot/key"
	"github.com/makedot/makedot/style"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Template
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    style.Fg(color.Red)("\uf00d"),
		plain:   style.Fg(color.Red)("✖"),
		squares: style.Fg(color.Red)("▇"),
	},
	Success: {
		emoji:   "🎉",
		nerd:    style.Fg(color.Green)("\uf00c"),
		plain:   style.Fg(color.Green)("✔"),
		squares: style.Fg(color.Green)("▇"),
	},
	Progress: {
		emoji:   "⏳",
		nerd:    style.Fg(color.Blue)("\uf254"),
		plain:   style.Fg(color.Blue)("…"),
		squares: style.Fg(color.Blue)("▇"),
	},
	Template: {
		emoji:   "🎨",
		nerd:    style.Fg(color.Purple)("\uf53f"),
		plain:   style.Fg(color.Purple)("→"),
		squares: style.Fg(color.Purple)("▇"),
	},
}

// Get retrieves the representation for the receiver based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
