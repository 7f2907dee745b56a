package linepara

import (
	"fmt"

	"github.com/tsawler/linepara/layout"
	"github.com/tsawler/linepara/model"
)

// Handler names accepted by NewHandler, in addition to the segmenter names
// layout.StrategyStatistical and layout.StrategyAdaptive.
const (
	StrategyHinted    = "hinted"
	StrategyCharacter = "character"
)

// Handler receives the positioned glyph stream of one document from a page
// decoder.
//
// The decoder calls NextPage when a page starts and EndPage when it ends.
// Between the two it pushes glyph runs with AddPositions and may mark
// paragraph and line boundaries it knows about. Each variant uses the calls
// it needs and ignores the rest. A Handler processes exactly one document and
// is not safe for concurrent use.
type Handler interface {
	NextPage(width, height float64)
	EndPage(width, height float64)
	NextParagraph()
	EndParagraph()
	AddLineSeparator()
	AddPositions(run []model.Glyph)

	// LastTextPositions returns a copy of the glyphs most recently added
	// to the current page
	LastTextPositions() []model.Glyph
}

// DocumentHandler is a Handler that reconstructs paragraphs.
type DocumentHandler interface {
	Handler

	// Document returns the pages finished so far
	Document() *model.Document
}

// NewHandler creates the handler registered under strategy.
//
// "statistical" and "adaptive" build a ParagraphHandler with the matching
// segmenter, "hinted" builds a LineMergingHandler and "character" builds a
// CharacterHandler. An empty strategy selects "statistical".
func NewHandler(strategy string, opts ...Option) (Handler, error) {
	switch strategy {
	case "", layout.StrategyStatistical, layout.StrategyAdaptive:
		return NewParagraphHandler(strategy, opts...)
	case StrategyHinted:
		return NewLineMergingHandler(opts...), nil
	case StrategyCharacter:
		return NewCharacterHandler(opts...), nil
	default:
		return nil, fmt.Errorf("unknown handler strategy %q", strategy)
	}
}

// copyGlyphs returns an owned copy of glyphs, nil for an empty input
func copyGlyphs(glyphs []model.Glyph) []model.Glyph {
	if len(glyphs) == 0 {
		return nil
	}
	out := make([]model.Glyph, len(glyphs))
	copy(out, glyphs)
	return out
}
