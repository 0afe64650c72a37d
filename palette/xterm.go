package palette

// grayThreshold bounds (max-min)*(max+min) below which a color counts as gray.
const grayThreshold = 6250

// cubeWeights are the widths of the six channel buckets of the xterm color cube, summing to 256.
var cubeWeights = [6]int{47, 68, 40, 40, 40, 21}

// cubeLevel maps an 8 bit channel value onto its cube coordinate.
var cubeLevel = func() (table [256]int) {
	i := 0
	for level, width := range cubeWeights {
		for n := 0; n < width; n++ {
			table[i] = level
			i++
		}
	}
	return table
}()

// XtermIndex maps channels in [0, 1] to a 256-color terminal code.
//
// Near-gray colors go to the 232-255 grayscale ramp, everything else (pure black included)
// to the 6x6x6 cube starting at 16.
func XtermIndex(r, g, b float64) int {
	rgb := [3]int{to255(r), to255(g), to255(b)}
	hi := max(rgb[0], rgb[1], rgb[2])
	lo := min(rgb[0], rgb[1], rgb[2])

	if (hi-lo)*(hi+lo) <= grayThreshold {
		avg := (rgb[0] + rgb[1] + rgb[2]) / 3
		gray := 24 - floorDiv(252-avg, 10)
		if gray >= 0 && gray <= 25 {
			return 232 + min(gray, 23)
		}
	}

	return 16 + 36*cubeLevel[rgb[0]] + 6*cubeLevel[rgb[1]] + cubeLevel[rgb[2]]
}

func to255(c float64) int {
	return max(0, min(255, int(c*255+0.5)))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
