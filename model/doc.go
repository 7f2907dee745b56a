// Package model provides the data records produced by line and paragraph
// reconstruction.
//
// A decoder emits positioned [Glyph] values. The layout engine groups them
// into paragraphs, and each finished page is appended to a [Document]:
//
//	doc := model.NewDocument()
//	doc.AddPage(&model.Page{Width: 595, Height: 842, Paragraphs: paragraphs})
//	for _, page := range doc.Pages() {
//	    fmt.Println(page.Number, page.ParagraphCount())
//	}
//
// # Ownership
//
// A [Paragraph] owns its glyph slice. [NewParagraph] copies its input, so
// callers may keep reusing the buffer they built the paragraph from. A
// [Document] owns its pages and only hands out copies of its page list.
//
// # Geometry
//
// Coordinates are in page space as delivered by the decoder, with Y growing
// downward. A glyph's Y is its baseline, so the top of the glyph is
// Y - Height. [BBox] follows the same convention: Y is the top edge.
package model
