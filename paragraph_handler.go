package linepara

import (
	"context"
	"log/slog"

	"github.com/tsawler/linepara/layout"
	"github.com/tsawler/linepara/model"
)

// ParagraphHandler rebuilds paragraphs purely from geometry.
//
// Every non-blank run becomes a Line in the page buffer. When the page ends
// the buffer is handed to a layout.Segmenter and the resulting page is added
// to the document. Paragraph and line hints from the decoder are ignored.
type ParagraphHandler struct {
	opts      Options
	segmenter layout.Segmenter

	lines    []layout.Line
	rotation int
	width    float64
	height   float64
	started  bool // NextPage was called for the open page
	doc      *model.Document
}

// NewParagraphHandler creates a handler using the segmenter registered under
// strategy, or the one given with WithSegmenter.
func NewParagraphHandler(strategy string, opts ...Option) (*ParagraphHandler, error) {
	o := buildOptions(opts)

	segmenter := o.segmenter
	if segmenter == nil {
		var err error
		segmenter, err = layout.SegmenterFor(strategy, o.config)
		if err != nil {
			return nil, err
		}
	}

	return &ParagraphHandler{
		opts:      o,
		segmenter: segmenter,
		doc:       model.NewDocument(),
	}, nil
}

// NextPage records the size of the page that starts. A page left open by an
// earlier NextPage, or lines pushed without one, are finished first.
func (h *ParagraphHandler) NextPage(width, height float64) {
	if h.started || len(h.lines) > 0 {
		h.EndPage(h.width, h.height)
	}
	h.width, h.height = width, height
	h.started = true
}

// NextParagraph is a no-op.
func (h *ParagraphHandler) NextParagraph() {}

// EndParagraph is a no-op.
func (h *ParagraphHandler) EndParagraph() {}

// AddLineSeparator is a no-op; lines are joined during segmentation.
func (h *ParagraphHandler) AddLineSeparator() {}

// AddPositions adds one glyph run to the current page as a Line. Runs that
// are blank after trimming are dropped.
func (h *ParagraphHandler) AddPositions(run []model.Glyph) {
	line, ok := layout.AssembleLine(run)
	if !ok {
		h.opts.logger.Debug("dropped blank run",
			"page", h.doc.PageCount()+1,
			"glyphs", len(run))
		return
	}

	if len(h.lines) == 0 {
		h.rotation = line.Glyphs[0].Rotation
	}
	h.lines = append(h.lines, line)
}

// EndPage segments the buffered lines and appends the finished page. A zero
// size falls back to the size given to NextPage.
func (h *ParagraphHandler) EndPage(width, height float64) {
	if width <= 0 || height <= 0 {
		width, height = h.width, h.height
	}
	page := model.NewPage(width, height)
	page.Rotation = h.rotation
	page.Paragraphs = h.segmenter.Segment(h.lines)
	h.doc.AddPage(page)

	if h.opts.logger.Enabled(context.Background(), slog.LevelDebug) {
		h.opts.logger.Debug("page finished",
			"page", page.Number,
			"lines", len(h.lines),
			"paragraphs", len(page.Paragraphs),
			"min_line_spacing", layout.MinLineSpacing(h.lines, h.opts.config.SpacingPercentile))
	}

	h.lines = nil
	h.rotation = 0
	h.started = false
}

// LastTextPositions returns a copy of the last line's glyphs on the current
// page, or nil when the page has no lines yet.
func (h *ParagraphHandler) LastTextPositions() []model.Glyph {
	if len(h.lines) == 0 {
		return nil
	}
	return copyGlyphs(h.lines[len(h.lines)-1].Glyphs)
}

// Document returns the pages finished so far.
func (h *ParagraphHandler) Document() *model.Document {
	return h.doc
}

// Pages returns the finished pages in page-number order.
func (h *ParagraphHandler) Pages() []*model.Page {
	return h.doc.Pages()
}
