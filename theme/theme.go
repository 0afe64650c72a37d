// Package theme turns a palette configuration into a fully resolved theme:
// defaults merged with user overrides, and the 16 color terminal tables derived where missing.
package theme

import (
	"fmt"
	"slices"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/makedot/makedot/palette"
	"github.com/samber/lo"
)

// Table is a 16 color terminal palette. Slots 0-7 are the normal colors, 8-15 the bright ones.
type Table [16]palette.Color

// Hexes returns the table as a list of hex strings indexed by slot.
func (t Table) Hexes() []string {
	return palette.Hexes(t[:])
}

// Theme is a fully resolved configuration, ready for template rendering.
type Theme struct {
	Base       map[string]palette.Color
	Colors     map[string]palette.Color
	XtermNames []string
	XtermDark  Table
	XtermLight Table
	Extra      map[string]any
}

// Resolve merges the built-in defaults with the user's file and derives the terminal tables.
func Resolve(file *File) (*Theme, error) {
	if file == nil {
		file = &File{}
	}

	base, err := merge("base", DefaultBase(), file.Base)
	if err != nil {
		return nil, err
	}

	colors, err := merge("colors", DefaultColors(), file.Colors)
	if err != nil {
		return nil, err
	}

	names := file.XtermNames
	if names == nil {
		names = slices.Clone(AccentNames)
	}

	if len(names) != len(AccentNames) {
		return nil, fmt.Errorf("xterm_names: expected %d names, got %d", len(AccentNames), len(names))
	}

	for _, name := range names {
		if _, ok := colors[name]; !ok {
			return nil, unknownColor(name, colors)
		}
	}

	t := &Theme{
		Base:       base,
		Colors:     colors,
		XtermNames: names,
		Extra:      lo.Assign(file.Extra),
	}

	if file.XtermDark != nil {
		if t.XtermDark, err = parseTable("xterm_dark", file.XtermDark); err != nil {
			return nil, err
		}
	} else {
		t.XtermDark = t.derive(true)
	}

	if file.XtermLight != nil {
		if t.XtermLight, err = parseTable("xterm_light", file.XtermLight); err != nil {
			return nil, err
		}
	} else {
		t.XtermLight = t.derive(false)
	}

	return t, nil
}

// derive synthesizes a terminal table. Dark tables lighten the derived bright slots, light tables darken them.
func (t *Theme) derive(dark bool) Table {
	var (
		table Table
		shift = func(c palette.Color) palette.Color { return c.Darken().Darken() }
	)

	if dark {
		shift = func(c palette.Color) palette.Color { return c.Lighten().Lighten() }
		table[0] = t.Base[Black]
		table[8] = t.Base[Dark].Lighten().Lighten()
		table[7] = t.Base[Light].Darken().Darken()
		table[15] = t.Base[White]
	} else {
		table[0] = t.Base[White]
		table[8] = t.Base[Light].Darken().Darken()
		table[7] = t.Base[Dark].Lighten().Lighten()
		table[15] = t.Base[Black]
	}

	for i, name := range t.XtermNames {
		accent := t.Colors[name]
		table[i+1] = accent

		bright, ok := t.Colors[name+LightSuffix]
		if !ok {
			bright = shift(accent)
		}
		table[i+9] = bright
	}

	return table
}

// Vars returns the template variables: every extra key of the file plus the resolved colors as hex strings.
func (t *Theme) Vars() map[string]any {
	vars := lo.Assign(t.Extra)

	hexes := func(m map[string]palette.Color) map[string]string {
		return lo.MapValues(m, func(c palette.Color, _ string) string { return c.Hex() })
	}

	vars["base"] = hexes(t.Base)
	vars["colors"] = hexes(t.Colors)
	vars["xterm_names"] = slices.Clone(t.XtermNames)
	vars["xterm_dark"] = t.XtermDark.Hexes()
	vars["xterm_light"] = t.XtermLight.Hexes()

	return vars
}

func merge(group string, defaults, overrides map[string]string) (map[string]palette.Color, error) {
	merged := lo.Assign(defaults, overrides)
	colors := make(map[string]palette.Color, len(merged))

	for name, value := range merged {
		c, err := palette.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", group, name, err)
		}
		colors[name] = c
	}

	return colors, nil
}

func parseTable(group string, raw map[string]string) (Table, error) {
	var (
		table Table
		seen  [16]bool
	)

	for slot, value := range raw {
		idx, err := strconv.Atoi(slot)
		if err != nil || idx < 0 || idx >= len(table) {
			return table, fmt.Errorf("%s: invalid slot %q, expected 0 to 15", group, slot)
		}

		c, err := palette.Parse(value)
		if err != nil {
			return table, fmt.Errorf("%s.%s: %w", group, slot, err)
		}

		table[idx] = c
		seen[idx] = true
	}

	for idx, ok := range seen {
		if !ok {
			return table, fmt.Errorf("%s: missing slot %d", group, idx)
		}
	}

	return table, nil
}

func unknownColor(name string, colors map[string]palette.Color) error {
	closest := lo.MinBy(lo.Keys(colors), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	return fmt.Errorf("xterm_names: unknown color %q, did you mean %q?", name, closest)
}
