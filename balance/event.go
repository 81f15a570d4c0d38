package balance

import "fmt"

// Event is one structural event from the tokenizer: an open tag with
// its ordered attributes, a close tag, or a run of text.
type Event struct {
	Type EventType

	// Name is the tag name (EventOpen, EventClose).
	Name string

	// Attrs are the tag's attributes in encounter order (EventOpen).
	// An attribute written without a value carries "".
	Attrs []Attr

	// Text is the content of an EventText. The engine escapes '<'
	// and '>' at ingestion; buffered text is always escaped.
	Text string
}

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Open returns an open-tag event.
func Open(name string, attrs ...Attr) Event {
	return Event{Type: EventOpen, Name: name, Attrs: attrs}
}

// Close returns a close-tag event.
func Close(name string) Event {
	return Event{Type: EventClose, Name: name}
}

// Text returns a text event carrying raw (unescaped) content.
func Text(text string) Event {
	return Event{Type: EventText, Text: text}
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventOpen EventType = iota
	EventClose
	EventText
)

func (t EventType) String() string {
	switch t {
	case EventOpen:
		return "Open"
	case EventClose:
		return "Close"
	case EventText:
		return "Text"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"Open":  EventOpen,
		"Close": EventClose,
		"Text":  EventText,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown type %q", k)
}
