package text

import "github.com/tsawler/linepara/model"

// Control characters appended between glyph sequences
const (
	Newline = '\n'
	Space   = ' '
)

// syntheticWidth keeps synthetic glyphs strictly after the glyph they follow
const syntheticWidth = 0.01

// Synthesize builds a glyph for c that continues visually from prev.
//
// Rotation, page size, font, font size, baseline and height are copied from
// prev. The new glyph starts at prev's end X and has a small non-zero width.
func Synthesize(prev model.Glyph, c rune) model.Glyph {
	return model.Glyph{
		Text:       string(c),
		X:          prev.EndX(),
		Y:          prev.Y,
		Width:      syntheticWidth,
		Height:     prev.Height,
		Rotation:   prev.Rotation,
		PageWidth:  prev.PageWidth,
		PageHeight: prev.PageHeight,
		FontName:   prev.FontName,
		FontSize:   prev.FontSize,
	}
}

// AppendControl appends a synthetic Newline or Space glyph to seq and returns
// the updated slice.
//
// Nothing is appended to an empty sequence. A newline replaces a trailing
// blank glyph. Repeats are collapsed: a newline directly after a newline and a
// space after any blank glyph are skipped. Like append, it may reuse the
// backing array of seq.
func AppendControl(seq []model.Glyph, c rune) []model.Glyph {
	if len(seq) == 0 {
		return seq
	}

	last := seq[len(seq)-1]
	if c == Newline && last.Text != string(Newline) && IsOnlyWhitespace(last.Text) {
		seq = seq[:len(seq)-1]
		if len(seq) == 0 {
			return seq
		}
		last = seq[len(seq)-1]
	}

	switch {
	case c == Newline && last.Text == string(Newline):
		return seq
	case c == Space && IsOnlyWhitespace(last.Text):
		return seq
	}

	return append(seq, Synthesize(last, c))
}
