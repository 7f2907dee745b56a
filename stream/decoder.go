package stream

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// maxLineSize bounds one encoded event; a long run of glyphs easily exceeds
// bufio's default token size
const maxLineSize = 16 * 1024 * 1024

// Decoder reads events from a JSON Lines stream.
type Decoder struct {
	scanner *bufio.Scanner
	line    int

	pageWidth  float64
	pageHeight float64
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Decoder{scanner: scanner}
}

// Next returns the next event, or io.EOF when the stream is exhausted.
// Blank lines are skipped.
func (d *Decoder) Next() (Event, error) {
	for d.scanner.Scan() {
		d.line++
		data := bytes.TrimSpace(d.scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			return Event{}, fmt.Errorf("line %d: failed to decode event: %w", d.line, err)
		}
		if !event.Type.Valid() {
			return Event{}, fmt.Errorf("line %d: %w %q", d.line, ErrUnknownEvent, event.Type)
		}

		switch event.Type {
		case EventPageStart:
			d.pageWidth, d.pageHeight = event.Width, event.Height
		case EventRun:
			for i := range event.Glyphs {
				g := &event.Glyphs[i]
				if g.PageWidth == 0 && g.PageHeight == 0 {
					g.PageWidth, g.PageHeight = d.pageWidth, d.pageHeight
				}
			}
		}
		return event, nil
	}

	if err := d.scanner.Err(); err != nil {
		return Event{}, fmt.Errorf("line %d: failed to read events: %w", d.line+1, err)
	}
	return Event{}, io.EOF
}

// Encoder writes events as JSON Lines.
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// Encode writes one event.
func (e *Encoder) Encode(event Event) error {
	if !event.Type.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownEvent, event.Type)
	}
	if err := e.enc.Encode(event); err != nil {
		return fmt.Errorf("encoding %s event: %w", event.Type, err)
	}
	return nil
}
