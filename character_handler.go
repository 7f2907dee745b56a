package linepara

import (
	"github.com/tsawler/linepara/model"
	"github.com/tsawler/linepara/text"
)

// CharacterHandler keeps every glyph of every page in rendering order without
// building lines or paragraphs. Paragraph ends become a synthetic newline and
// line separators a synthetic space.
type CharacterHandler struct {
	opts Options

	pageNumber int
	pageWidth  float64
	pageHeight float64
	positions  map[int][]model.Glyph
}

// NewCharacterHandler creates a handler with the given options.
func NewCharacterHandler(opts ...Option) *CharacterHandler {
	return &CharacterHandler{
		opts:      buildOptions(opts),
		positions: make(map[int][]model.Glyph),
	}
}

// NextPage starts the next page.
func (h *CharacterHandler) NextPage(width, height float64) {
	h.pageNumber++
	h.pageWidth = width
	h.pageHeight = height
}

// EndPage records the finished page in the debug log.
func (h *CharacterHandler) EndPage(width, height float64) {
	h.opts.logger.Debug("page finished",
		"page", h.pageNumber,
		"glyphs", len(h.positions[h.pageNumber]))
}

// NextParagraph is a no-op.
func (h *CharacterHandler) NextParagraph() {}

// EndParagraph appends a synthetic newline to the current page.
func (h *CharacterHandler) EndParagraph() {
	h.appendControl(text.Newline)
}

// AddLineSeparator appends a synthetic space to the current page.
func (h *CharacterHandler) AddLineSeparator() {
	h.appendControl(text.Space)
}

// AddPositions appends run to the current page. Glyphs with empty text are
// skipped.
func (h *CharacterHandler) AddPositions(run []model.Glyph) {
	if h.pageNumber == 0 && len(run) > 0 {
		h.NextPage(run[0].PageWidth, run[0].PageHeight)
	}

	glyphs := h.positions[h.pageNumber]
	for _, g := range run {
		if g.IsEmpty() {
			continue
		}
		glyphs = append(glyphs, g)
	}
	if len(glyphs) > 0 {
		h.positions[h.pageNumber] = glyphs
	}
}

// LastTextPositions returns a copy of the current page's glyphs.
func (h *CharacterHandler) LastTextPositions() []model.Glyph {
	return copyGlyphs(h.positions[h.pageNumber])
}

// TextPositions returns a copy of every page's glyphs keyed by page number.
// Pages without glyphs are absent.
func (h *CharacterHandler) TextPositions() map[int][]model.Glyph {
	out := make(map[int][]model.Glyph, len(h.positions))
	for page, glyphs := range h.positions {
		out[page] = copyGlyphs(glyphs)
	}
	return out
}

// Text returns the concatenated glyph text of a page (1-indexed).
func (h *CharacterHandler) Text(page int) string {
	return model.GlyphText(h.positions[page])
}

// PageCount returns the number of pages started so far.
func (h *CharacterHandler) PageCount() int {
	return h.pageNumber
}

// PageWidth returns the width of the current page.
func (h *CharacterHandler) PageWidth() float64 {
	return h.pageWidth
}

// PageHeight returns the height of the current page.
func (h *CharacterHandler) PageHeight() float64 {
	return h.pageHeight
}

func (h *CharacterHandler) appendControl(c rune) {
	if glyphs, ok := h.positions[h.pageNumber]; ok {
		h.positions[h.pageNumber] = text.AppendControl(glyphs, c)
	}
}
