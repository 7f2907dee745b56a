package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
)

var (
	whiteSpace = runes.In(unicode.White_Space)
	separators = runes.In(unicode.Z)

	// Zero width space and zero width no-break space are format characters,
	// but decoders use them as word separators
	zeroWidth = runes.In(&unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x200b, Hi: 0x200b, Stride: 1},
			{Lo: 0xfeff, Hi: 0xfeff, Stride: 1},
		},
	})

	lineBreaks = runes.In(&unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x000a, Hi: 0x000d, Stride: 1},
			{Lo: 0x0085, Hi: 0x0085, Stride: 1},
			{Lo: 0x2028, Hi: 0x2029, Stride: 1},
		},
		LatinOffset: 2,
	})
)

// IsBlank reports whether r is white space, a Unicode separator or a zero
// width space
func IsBlank(r rune) bool {
	return whiteSpace.Contains(r) || separators.Contains(r) || zeroWidth.Contains(r)
}

// IsLineBreak reports whether r ends a line: LF, VT, FF, CR, NEL, or the
// Unicode line and paragraph separators
func IsLineBreak(r rune) bool {
	return lineBreaks.Contains(r)
}

// IsOnlyWhitespace reports whether s consists only of blank runes.
// The empty string counts as whitespace.
func IsOnlyWhitespace(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !IsBlank(r) }) < 0
}

// HasLineBreak reports whether s contains a line break rune
func HasLineBreak(s string) bool {
	return strings.IndexFunc(s, IsLineBreak) >= 0
}
