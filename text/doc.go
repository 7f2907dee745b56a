// Package text provides glyph-level text utilities used by line and
// paragraph reconstruction.
//
// # Blank Classification
//
// [IsBlank] treats every Unicode White_Space rune, every separator
// (category Z) rune and the zero width spaces U+200B and U+FEFF as blank, so
// no-break spaces and em spaces are trimmed like ASCII spaces.
// [IsOnlyWhitespace] extends this to a glyph's whole text. [IsLineBreak]
// picks out the blanks that end a line; trimmed runs never contain one.
//
// # Trimming
//
// [TrimRun] removes leading and trailing blank glyphs from a glyph run with a
// single bounded copy; the input is never modified:
//
//	trimmed := text.TrimRun(run)
//
// # Synthetic Glyphs
//
// Lines are joined and separated with synthetic glyphs. [Synthesize] builds
// one from the glyph it follows, and [AppendControl] appends a [Space] or
// [Newline] while collapsing repeats:
//
//	para = text.AppendControl(para, text.Space)
//	para = append(para, nextLine...)
package text
