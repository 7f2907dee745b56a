package model

// Glyph is one positioned character as emitted by the page decoder.
//
// Only Text and the geometry fields take part in line and paragraph
// reconstruction. Rotation, page size and font fields are carried through so
// that synthetic glyphs can be styled like their neighbours.
type Glyph struct {
	Text       string  `json:"text"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"` // baseline
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Rotation   int     `json:"rotation,omitempty"`
	PageWidth  float64 `json:"page_width,omitempty"`
	PageHeight float64 `json:"page_height,omitempty"`
	FontName   string  `json:"font,omitempty"`
	FontSize   float64 `json:"font_size,omitempty"`
}

// TopY returns the Y coordinate of the top of the glyph
func (g Glyph) TopY() float64 {
	return g.Y - g.Height
}

// EndX returns the X coordinate where the glyph ends
func (g Glyph) EndX() float64 {
	return g.X + g.Width
}

// BBox returns the glyph's bounding box
func (g Glyph) BBox() BBox {
	return BBox{X: g.X, Y: g.TopY(), Width: g.Width, Height: g.Height}
}

// IsEmpty reports whether the glyph carries no text at all
func (g Glyph) IsEmpty() bool {
	return g.Text == ""
}

// GlyphText concatenates the text of glyphs in order
func GlyphText(glyphs []Glyph) string {
	n := 0
	for _, g := range glyphs {
		n += len(g.Text)
	}
	buf := make([]byte, 0, n)
	for _, g := range glyphs {
		buf = append(buf, g.Text...)
	}
	return string(buf)
}
