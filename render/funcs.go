package render

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/makedot/makedot/palette"
)

// Funcs is the table of helpers every engine exposes to templates.
//
// Colors are passed around as hex strings, the form in which the theme reaches the templates.
func Funcs() map[string]any {
	return map[string]any{
		"darken":      Darken,
		"lighten":     Lighten,
		"cycle":       Cycle,
		"color_cycle": Cycle,
		"xterm":       Xterm,
		"lstrip":      LStrip,
		"rstrip":      RStrip,
		"zip":         Zip,
	}
}

// Darken lowers the luminance of a color, by palette.Step unless an amount is given.
// A negative amount lightens.
func Darken(hex string, amount ...float64) (string, error) {
	c, err := palette.Parse(hex)
	if err != nil {
		return "", err
	}

	step := palette.Step
	if len(amount) > 0 {
		step = amount[0]
	}

	return c.Shift(step).Hex(), nil
}

// Lighten raises the luminance of a color, by palette.Step unless an amount is given.
func Lighten(hex string, amount ...float64) (string, error) {
	step := palette.Step
	if len(amount) > 0 {
		step = amount[0]
	}

	return Darken(hex, -step)
}

// Cycle returns steps colors going from one color toward another. The target itself is
// only part of the result when last is true.
func Cycle(from, to string, steps int, last ...bool) ([]string, error) {
	c1, err := palette.Parse(from)
	if err != nil {
		return nil, err
	}

	c2, err := palette.Parse(to)
	if err != nil {
		return nil, err
	}

	colors, err := palette.Interpolate(c1, c2, steps, len(last) > 0 && last[0])
	if err != nil {
		return nil, err
	}

	return palette.Hexes(colors), nil
}

// Xterm returns the 256-color terminal index closest to a color.
func Xterm(hex string) (int, error) {
	c, err := palette.Parse(hex)
	if err != nil {
		return 0, err
	}

	return c.Xterm(), nil
}

// LStrip removes leading characters contained in cutset, e.g. lstrip(colors.red, "#").
func LStrip(s, cutset string) string {
	return strings.TrimLeft(s, cutset)
}

// RStrip removes trailing characters contained in cutset.
func RStrip(s, cutset string) string {
	return strings.TrimRight(s, cutset)
}

// Zip pairs up the elements of two lists, stopping at the shorter one.
// Each pair is a two element list, so {% for name, hex in zip(a, b) %} unpacks it.
func Zip(a, b any) ([][]any, error) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	for _, v := range []reflect.Value{va, vb} {
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return nil, fmt.Errorf("zip: expected lists, got %s", v.Kind())
		}
	}

	n := min(va.Len(), vb.Len())
	pairs := make([][]any, n)
	for i := 0; i < n; i++ {
		pairs[i] = []any{va.Index(i).Interface(), vb.Index(i).Interface()}
	}

	return pairs, nil
}
