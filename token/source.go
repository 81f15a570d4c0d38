package token

import (
	"bytes"

	"golang.org/x/net/html"

	"github.com/tagmend/tagmend/balance"
	"github.com/tagmend/tagmend/tags"
)

// Source provides streaming structural events from chunked HTML text.
// It holds back the shortest suffix that could still be inside an
// unterminated construct and tokenizes the rest on every Write.
//
// The source keeps its own open-tag stack to resolve mismatched
// closes the way a SAX parser does: a close for an outer tag implies
// closes for everything opened inside it, and a close that matches
// nothing is dropped.
type Source struct {
	held   []byte
	stack  []string // open non-void tag names, oldest first
	closed bool
}

// NewSource creates a Source. One Source serves one stream.
func NewSource() *Source {
	return &Source{}
}

// Write feeds one chunk and returns the structural events it
// completed, possibly none.
func (s *Source) Write(chunk string) ([]balance.Event, error) {
	if s.closed {
		return nil, ErrSourceClosed
	}
	s.held = append(s.held, chunk...)
	cut := boundary(s.held)
	if cut == 0 {
		return nil, nil
	}
	events := s.tokenize(s.held[:cut])
	rest := copy(s.held, s.held[cut:])
	s.held = s.held[:rest]
	return events, nil
}

// Close signals end of input and returns any remaining events. A
// trailing unterminated tag fragment is dropped, matching the
// tokenizer's end-of-stream behavior; the balancing engine owns
// closing whatever is left open.
func (s *Source) Close() ([]balance.Event, error) {
	if s.closed {
		return nil, ErrSourceClosed
	}
	s.closed = true
	rest := s.held
	s.held = nil
	if len(rest) == 0 {
		return nil, nil
	}
	return s.tokenize(rest), nil
}

// tokenize runs the external tokenizer over one complete segment.
func (s *Source) tokenize(data []byte) []balance.Event {
	z := html.NewTokenizer(bytes.NewReader(data))
	var events []balance.Event
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF: segment exhausted. Anything dangling was
			// withheld by boundary or dropped at Close.
			return events
		case html.TextToken:
			events = append(events, balance.Text(string(z.Text())))
		case html.StartTagToken:
			name, attrs := tagAttrs(z)
			events = append(events, balance.Open(name, attrs...))
			if tags.IsVoid(name) {
				events = append(events, balance.Close(name))
			} else {
				s.stack = append(s.stack, name)
			}
		case html.SelfClosingTagToken:
			name, attrs := tagAttrs(z)
			events = append(events, balance.Open(name, attrs...))
			events = append(events, balance.Close(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			events = s.close(events, string(name))
		case html.CommentToken, html.DoctypeToken:
			// not structural, outside the event contract
		}
	}
}

// close resolves one close tag against the open stack: implied closes
// for everything opened above the match, nothing for no match.
func (s *Source) close(events []balance.Event, name string) []balance.Event {
	if tags.IsVoid(name) {
		// stray </br> etc.; forward for the engine to suppress
		return append(events, balance.Close(name))
	}
	at := -1
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i] == name {
			at = i
			break
		}
	}
	if at < 0 {
		return events
	}
	for i := len(s.stack) - 1; i >= at; i-- {
		events = append(events, balance.Close(s.stack[i]))
	}
	s.stack = s.stack[:at]
	return events
}

func tagAttrs(z *html.Tokenizer) (string, []balance.Attr) {
	name, more := z.TagName()
	var attrs []balance.Attr
	for more {
		var k, v []byte
		k, v, more = z.TagAttr()
		attrs = append(attrs, balance.Attr{Name: string(k), Value: string(v)})
	}
	return string(name), attrs
}
