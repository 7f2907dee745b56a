package text

import (
	"strings"

	"github.com/tsawler/linepara/model"
)

// TrimRun returns a copy of run without its leading and trailing blank
// glyphs. The result is nil when run holds nothing but blanks.
//
// The copy never contains a line break. An interior blank glyph holding a
// line break becomes a synthetic space, collapsed like AppendControl does,
// and line breaks inside other glyphs are replaced with spaces. Interior
// glyphs with no text at all are dropped, and blank runes at the outer edges
// of the first and last glyph texts are cut.
func TrimRun(run []model.Glyph) []model.Glyph {
	first, last := contentBounds(run)
	if first > last {
		return nil
	}

	trimmed := make([]model.Glyph, 0, last-first+1)
	for _, g := range run[first : last+1] {
		switch {
		case g.IsEmpty():
			continue
		case IsOnlyWhitespace(g.Text) && HasLineBreak(g.Text):
			trimmed = AppendControl(trimmed, Space)
			continue
		case HasLineBreak(g.Text):
			g.Text = strings.Map(breakToSpace, g.Text)
		}
		trimmed = append(trimmed, g)
	}

	trimmed[0].Text = strings.TrimLeftFunc(trimmed[0].Text, IsBlank)
	end := len(trimmed) - 1
	trimmed[end].Text = strings.TrimRightFunc(trimmed[end].Text, IsBlank)
	return trimmed
}

// IsBlankRun reports whether every glyph of run is blank
func IsBlankRun(run []model.Glyph) bool {
	first, last := contentBounds(run)
	return first > last
}

// contentBounds returns the indexes of the first and last non-blank glyphs.
// first > last when there are none.
func contentBounds(run []model.Glyph) (first, last int) {
	first, last = 0, len(run)-1
	for first <= last && IsOnlyWhitespace(run[first].Text) {
		first++
	}
	for last >= first && IsOnlyWhitespace(run[last].Text) {
		last--
	}
	return first, last
}

func breakToSpace(r rune) rune {
	if IsLineBreak(r) {
		return Space
	}
	return r
}
