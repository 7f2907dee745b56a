package model

import "strings"

// Document accumulates finished pages in processing order
type Document struct {
	pages []*Page
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document and numbers it
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.pages) + 1
	d.pages = append(d.pages, page)
}

// Pages returns the finished pages in page-number order.
// The returned slice is a copy; appending to it does not affect the document.
func (d *Document) Pages() []*Page {
	if d == nil {
		return nil
	}
	pages := make([]*Page, len(d.pages))
	copy(pages, d.pages)
	return pages
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if d == nil || number < 1 || number > len(d.pages) {
		return nil
	}
	return d.pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.pages)
}

// ParagraphCount returns the number of paragraphs across all pages
func (d *Document) ParagraphCount() int {
	total := 0
	for _, page := range d.Pages() {
		total += page.ParagraphCount()
	}
	return total
}

// ExtractText returns all page text, pages separated by a form feed
func (d *Document) ExtractText() string {
	pages := d.Pages()
	parts := make([]string, len(pages))
	for i, page := range pages {
		parts[i] = page.Text()
	}
	return strings.Join(parts, "\n\f")
}
