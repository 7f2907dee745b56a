// Package stream records and replays the calls a page decoder makes into a
// linepara.Handler.
//
// Events are stored as JSON Lines, one object per line:
//
//	{"type":"page_start","width":595,"height":842}
//	{"type":"paragraph_start"}
//	{"type":"run","glyphs":[{"text":"H","x":72,"y":100,"width":6,"height":10}]}
//	{"type":"line_separator"}
//	{"type":"paragraph_end"}
//	{"type":"page_end","width":595,"height":842}
//
// Glyphs that leave out the page size inherit the size given by the last
// page_start event.
package stream

import (
	"errors"

	"github.com/tsawler/linepara"
	"github.com/tsawler/linepara/model"
)

// ErrUnknownEvent is returned for events with an unrecognized type.
var ErrUnknownEvent = errors.New("unknown event type")

// EventType names one decoder call
type EventType string

// Event types, one per Handler method
const (
	EventPageStart      EventType = "page_start"
	EventPageEnd        EventType = "page_end"
	EventParagraphStart EventType = "paragraph_start"
	EventParagraphEnd   EventType = "paragraph_end"
	EventLineSeparator  EventType = "line_separator"
	EventRun            EventType = "run"
)

// Event is one recorded decoder call.
type Event struct {
	Type   EventType     `json:"type"`
	Width  float64       `json:"width,omitempty"`
	Height float64       `json:"height,omitempty"`
	Glyphs []model.Glyph `json:"glyphs,omitempty"`
}

// Apply performs the call e describes on h.
func (e Event) Apply(h linepara.Handler) error {
	switch e.Type {
	case EventPageStart:
		h.NextPage(e.Width, e.Height)
	case EventPageEnd:
		h.EndPage(e.Width, e.Height)
	case EventParagraphStart:
		h.NextParagraph()
	case EventParagraphEnd:
		h.EndParagraph()
	case EventLineSeparator:
		h.AddLineSeparator()
	case EventRun:
		h.AddPositions(e.Glyphs)
	default:
		return ErrUnknownEvent
	}
	return nil
}

// Valid reports whether t is a known event type
func (t EventType) Valid() bool {
	switch t {
	case EventPageStart, EventPageEnd, EventParagraphStart,
		EventParagraphEnd, EventLineSeparator, EventRun:
		return true
	}
	return false
}
