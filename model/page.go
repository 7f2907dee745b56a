package model

import "strings"

// Page represents a single finished page
type Page struct {
	Number     int         // 1-indexed page number
	Width      float64     // Page width in points
	Height     float64     // Page height in points
	Rotation   int         // Rotation angle (0, 90, 180, 270)
	Paragraphs []Paragraph // Ordered paragraphs, empty for pages without text
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:      width,
		Height:     height,
		Paragraphs: make([]Paragraph, 0),
	}
}

// ParagraphCount returns the number of paragraphs on the page
func (p *Page) ParagraphCount() int {
	if p == nil {
		return 0
	}
	return len(p.Paragraphs)
}

// GetParagraph returns a paragraph by index (0-indexed)
func (p *Page) GetParagraph(index int) *Paragraph {
	if p == nil || index < 0 || index >= len(p.Paragraphs) {
		return nil
	}
	return &p.Paragraphs[index]
}

// Text returns the page's paragraphs separated by blank lines
func (p *Page) Text() string {
	if p == nil {
		return ""
	}
	parts := make([]string, len(p.Paragraphs))
	for i := range p.Paragraphs {
		parts[i] = p.Paragraphs[i].Text()
	}
	return strings.Join(parts, "\n\n")
}
