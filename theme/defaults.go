package theme

// Names of the structural colors.
const (
	White = "white"
	Black = "black"
	Light = "light"
	Dark  = "dark"
)

// LightSuffix marks an accent color that fills a bright slot of the terminal table.
const LightSuffix = "_light"

// AccentNames lists the built-in accent colors in terminal order (slots 1 to 6).
var AccentNames = []string{"red", "green", "yellow", "blue", "magenta", "cyan"}

// DefaultBase returns a fresh copy of the built-in structural colors.
func DefaultBase() map[string]string {
	return map[string]string{
		White: "#ffffff",
		Black: "#000000",
		Light: "#eeeeee",
		Dark:  "#111111",
	}
}

// DefaultColors returns a fresh copy of the built-in accent colors.
func DefaultColors() map[string]string {
	return map[string]string{
		"red":     "#aa0000",
		"green":   "#00aa00",
		"yellow":  "#aaaa00",
		"blue":    "#0000aa",
		"magenta": "#aa00aa",
		"cyan":    "#00aaaa",
	}
}
