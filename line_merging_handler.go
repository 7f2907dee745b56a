package linepara

import (
	"github.com/tsawler/linepara/layout"
	"github.com/tsawler/linepara/model"
	"github.com/tsawler/linepara/text"
)

// LineMergingHandler builds paragraphs from the decoder's paragraph hints and
// repairs them with a local, per line pair threshold.
//
// A hinted paragraph break whose first line sits closer to the previous line
// than layout.AdaptiveThreshold is merged back into the previous paragraph.
// A gap wider than the threshold inside one hinted paragraph starts a new
// paragraph.
type LineMergingHandler struct {
	opts Options

	page       *model.Page
	paragraphs [][]model.Glyph
	lastLine   layout.Line
	hasLine    bool
	started    bool // NextPage was called for the open page
	doc        *model.Document
}

// NewLineMergingHandler creates a handler with the given options.
func NewLineMergingHandler(opts ...Option) *LineMergingHandler {
	return &LineMergingHandler{
		opts: buildOptions(opts),
		doc:  model.NewDocument(),
	}
}

// NextPage starts a new page of the given size. A page still open from an
// earlier NextPage, or one holding text, is finished first, so decoders
// that only mark page starts lose nothing.
func (h *LineMergingHandler) NextPage(width, height float64) {
	if h.page != nil && (h.started || h.hasLine) {
		h.EndPage(0, 0)
	}
	h.openPage(width, height)
	h.started = true
}

// NextParagraph opens a new paragraph unless the current one is still empty.
func (h *LineMergingHandler) NextParagraph() {
	h.ensurePage(nil)
	if n := len(h.paragraphs); n == 0 || len(h.paragraphs[n-1]) > 0 {
		h.paragraphs = append(h.paragraphs, nil)
	}
}

// EndParagraph is a no-op; paragraphs are closed by the next NextParagraph.
func (h *LineMergingHandler) EndParagraph() {}

// AddLineSeparator appends a synthetic space to the current paragraph.
func (h *LineMergingHandler) AddLineSeparator() {
	if n := len(h.paragraphs); n > 0 {
		h.paragraphs[n-1] = text.AppendControl(h.paragraphs[n-1], text.Space)
	}
}

// AddPositions adds one glyph run to the current paragraph, merging or
// splitting against the previous line as needed.
func (h *LineMergingHandler) AddPositions(run []model.Glyph) {
	line, ok := layout.AssembleLine(run)
	if !ok {
		h.opts.logger.Debug("dropped blank run",
			"page", h.doc.PageCount()+1,
			"glyphs", len(run))
		return
	}

	h.ensurePage(line.Glyphs)
	if len(h.paragraphs) == 0 {
		h.paragraphs = append(h.paragraphs, nil)
	}

	last := len(h.paragraphs) - 1
	if h.hasLine {
		distance := layout.LineDistance(line, h.lastLine)
		threshold := layout.AdaptiveThreshold(line, h.lastLine, h.opts.config)

		switch {
		case len(h.paragraphs[last]) == 0 && last > 0 && distance < threshold:
			h.opts.logger.Debug("merged hinted paragraph break",
				"page", h.doc.PageCount()+1,
				"distance", distance,
				"threshold", threshold)
			h.paragraphs = h.paragraphs[:last]
			last--
		case len(h.paragraphs[last]) > 0 && distance > threshold:
			h.opts.logger.Debug("split paragraph at wide gap",
				"page", h.doc.PageCount()+1,
				"distance", distance,
				"threshold", threshold)
			h.paragraphs = append(h.paragraphs, nil)
			last++
		}
	}

	h.paragraphs[last] = text.AppendControl(h.paragraphs[last], text.Space)
	h.paragraphs[last] = append(h.paragraphs[last], line.Glyphs...)
	h.lastLine = line
	h.hasLine = true
}

// EndPage finishes the current page and adds it to the document. Empty
// paragraphs are dropped and trailing blanks are trimmed.
func (h *LineMergingHandler) EndPage(width, height float64) {
	h.ensurePage(nil)
	if width > 0 && height > 0 {
		h.page.Width = width
		h.page.Height = height
	}

	for _, glyphs := range h.paragraphs {
		glyphs = text.TrimRun(glyphs)
		if len(glyphs) == 0 {
			continue
		}
		h.page.Paragraphs = append(h.page.Paragraphs, model.NewParagraph(glyphs))
	}
	h.doc.AddPage(h.page)

	h.opts.logger.Debug("page finished",
		"page", h.page.Number,
		"paragraphs", len(h.page.Paragraphs))

	h.page = nil
	h.paragraphs = nil
	h.hasLine = false
	h.started = false
}

// LastTextPositions returns a copy of the current paragraph's glyphs.
func (h *LineMergingHandler) LastTextPositions() []model.Glyph {
	if len(h.paragraphs) == 0 {
		return nil
	}
	return copyGlyphs(h.paragraphs[len(h.paragraphs)-1])
}

// Document returns the pages finished so far.
func (h *LineMergingHandler) Document() *model.Document {
	return h.doc
}

// Pages returns the finished pages in page-number order.
func (h *LineMergingHandler) Pages() []*model.Page {
	return h.doc.Pages()
}

// ensurePage opens a page when the decoder pushed content without calling
// NextPage first, sized from the first glyph when one is available
func (h *LineMergingHandler) ensurePage(glyphs []model.Glyph) {
	if h.page == nil {
		var width, height float64
		if len(glyphs) > 0 {
			width, height = glyphs[0].PageWidth, glyphs[0].PageHeight
		}
		h.openPage(width, height)
	}
	if len(glyphs) > 0 && !h.hasLine {
		h.page.Rotation = glyphs[0].Rotation
	}
}

func (h *LineMergingHandler) openPage(width, height float64) {
	h.page = model.NewPage(width, height)
	h.paragraphs = nil
	h.hasLine = false
}
