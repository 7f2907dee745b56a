package model

import "strings"

// Paragraph is an ordered run of glyphs forming one logical block of text.
// Lines merged into a paragraph are joined by a single synthetic space.
type Paragraph struct {
	Glyphs []Glyph
}

// NewParagraph creates a paragraph holding a copy of glyphs
func NewParagraph(glyphs []Glyph) Paragraph {
	owned := make([]Glyph, len(glyphs))
	copy(owned, glyphs)
	return Paragraph{Glyphs: owned}
}

// Text returns the concatenated glyph text
func (p *Paragraph) Text() string {
	if p == nil {
		return ""
	}
	return GlyphText(p.Glyphs)
}

// String implements fmt.Stringer
func (p Paragraph) String() string {
	return p.Text()
}

// Len returns the number of glyphs in the paragraph
func (p *Paragraph) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Glyphs)
}

// IsEmpty returns true if the paragraph has no glyphs
func (p *Paragraph) IsEmpty() bool {
	return p.Len() == 0
}

// WordCount returns an approximate word count for the paragraph
func (p *Paragraph) WordCount() int {
	return len(strings.Fields(p.Text()))
}

// BBox returns the union of all glyph boxes in the paragraph
func (p *Paragraph) BBox() BBox {
	if p.IsEmpty() {
		return BBox{}
	}
	box := p.Glyphs[0].BBox()
	for _, g := range p.Glyphs[1:] {
		box = box.Union(g.BBox())
	}
	return box
}
