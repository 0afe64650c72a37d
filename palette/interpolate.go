package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Interpolate walks linearly through HSL space from one color to another.
//
// With includeLast the result holds steps colors, both endpoints included.
// Without it, steps+1 points are produced and the final one (the target color) dropped,
// so the result still holds steps colors.
func Interpolate(from, to Color, steps int, includeLast bool) ([]Color, error) {
	points := steps
	if !includeLast {
		points++
	}

	if steps < 0 || points < 1 {
		return nil, fmt.Errorf("interpolate: invalid number of steps %d", steps)
	}

	h1, s1, l1 := from.rgb.Hsl()
	h2, s2, l2 := to.rgb.Hsl()

	colors := make([]Color, 0, points)
	for i := 0; i < points; i++ {
		var t float64
		if points > 1 {
			t = float64(i) / float64(points-1)
		}

		colors = append(colors, Color{rgb: colorful.Hsl(
			h1+(h2-h1)*t,
			s1+(s2-s1)*t,
			l1+(l2-l1)*t,
		)})
	}

	if !includeLast {
		colors = colors[:len(colors)-1]
	}

	return colors, nil
}

// Hexes converts colors to their hex strings.
func Hexes(colors []Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}
