package layout

import (
	"github.com/tsawler/linepara/model"
	"github.com/tsawler/linepara/text"
)

// Line represents a single visual line of text on a page
type Line struct {
	// TopY is the average top of the line's glyphs
	TopY float64

	// BottomY is the average baseline of the line's glyphs
	BottomY float64

	// Glyphs are the line's glyphs in rendering order
	Glyphs []model.Glyph
}

// AssembleLine builds a Line from one glyph run.
//
// Leading and trailing blank glyphs are trimmed first. ok is false when
// nothing but blanks remain; such runs contribute nothing to the page.
func AssembleLine(run []model.Glyph) (line Line, ok bool) {
	glyphs := text.TrimRun(run)
	if len(glyphs) == 0 {
		return Line{}, false
	}

	// Averaging damps per-glyph jitter from subscripts and diacritics
	var topSum, bottomSum float64
	for _, g := range glyphs {
		topSum += g.TopY()
		bottomSum += g.Y
	}
	n := float64(len(glyphs))

	return Line{
		TopY:    topSum / n,
		BottomY: bottomSum / n,
		Glyphs:  glyphs,
	}, true
}

// Height returns the line height, used as a local unit of scale
func (l Line) Height() float64 {
	return l.BottomY - l.TopY
}

// Text returns the concatenated text of the line
func (l Line) Text() string {
	return model.GlyphText(l.Glyphs)
}

// String implements fmt.Stringer
func (l Line) String() string {
	return l.Text()
}

// LineDistance returns the absolute vertical distance between the top of curr
// and the bottom of last. The absolute value keeps misordered lines, whose
// raw gap is large but negative, comparable with ordinary ones.
func LineDistance(curr, last Line) float64 {
	return absFloat64(curr.TopY - last.BottomY)
}

func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
