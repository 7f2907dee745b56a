package layout

import (
	"math"
	"sort"
)

// DefaultSpacingPercentile is the rank used by FindMinLineSpacing
const DefaultSpacingPercentile = 0.15

// FindMinLineSpacing returns the page's characteristic minimum line spacing
// using DefaultSpacingPercentile
func FindMinLineSpacing(lines []Line) float64 {
	return MinLineSpacing(lines, DefaultSpacingPercentile)
}

// MinLineSpacing returns a representative minimum gap between adjacent lines.
//
// Only strictly positive gaps count: a non-positive gap means two lines were
// placed on the same or inverted Y coordinates, which is not a line break.
// Rather than the strict minimum, the gap at the given percentile rank is
// returned, so that a few touching lines (broken signature blocks and the
// like) do not make every other gap look large. The result is 0 for fewer
// than two lines or when no gap is positive.
func MinLineSpacing(lines []Line, percentile float64) float64 {
	if len(lines) < 2 {
		return 0
	}

	spacings := make([]float64, 0, len(lines)-1)
	for i := 0; i < len(lines)-1; i++ {
		spacing := lines[i+1].TopY - lines[i].BottomY
		if spacing > 0 {
			spacings = append(spacings, spacing)
		}
	}
	if len(spacings) == 0 {
		return 0
	}

	sort.Float64s(spacings)

	idx := int(math.Round(float64(len(spacings)) * percentile))
	if idx >= len(spacings) {
		idx = len(spacings) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return spacings[idx]
}
