package balance

import (
	"strings"

	"github.com/tagmend/tagmend/debug"
	"github.com/tagmend/tagmend/tags"
)

// Balancer consumes structural events and emits well-formed markup in
// flush-sized chunks. Each event first mutates state, then joins the
// pending buffer, then a flush decision runs:
//
//   - unbuffered (default): every event releases a chunk
//   - buffered: chunks are withheld while any non-void tag is open
//     and released when the open-tag depth returns to zero
//
// End closes anything still open, last-opened first.
type Balancer struct {
	cfg  config
	open []openTag // open non-void tags, oldest first
	buf  pending
}

type openTag struct {
	name     string
	stripped bool // tag suppressed by the keep filter
}

// New creates a Balancer. A Balancer serves one stream (or one
// one-shot call) and is discarded after End.
func New(opts ...Option) *Balancer {
	b := &Balancer{}
	for _, opt := range opts {
		opt(&b.cfg)
	}
	return b
}

// Depth returns the number of currently open non-void tags.
func (b *Balancer) Depth() int {
	return len(b.open)
}

// Push processes one event. It returns the chunk the event released
// and whether a flush happened; a flush never carries an empty chunk.
func (b *Balancer) Push(ev Event) (string, bool) {
	if debug.Events() {
		debug.Logf("balance: %s %q depth=%d\n", ev.Type, ev.Name, len(b.open))
	}
	switch ev.Type {
	case EventOpen:
		keep := b.cfg.keep == nil || b.cfg.keep(ev.Name, ev.Attrs)
		if !tags.IsVoid(ev.Name) {
			b.open = append(b.open, openTag{name: ev.Name, stripped: !keep})
		}
		if keep {
			b.buf.append(ev)
		}
		if !b.cfg.buffered {
			return b.flush()
		}
	case EventClose:
		if tags.IsVoid(ev.Name) {
			// A void element is complete at its open event; the
			// tokenizer-synthesized close is suppressed entirely
			// but still drives the flush decision.
			if !b.cfg.buffered || len(b.open) == 0 {
				return b.flush()
			}
			return "", false
		}
		stripped := false
		if n := len(b.open); n > 0 {
			stripped = b.open[n-1].stripped
			b.open = b.open[:n-1]
		}
		if !stripped {
			b.buf.append(ev)
		}
		if !b.cfg.buffered || len(b.open) == 0 {
			return b.flush()
		}
	case EventText:
		b.buf.append(Event{Type: EventText, Text: escapeText(ev.Text)})
		if !b.cfg.buffered || len(b.open) == 0 {
			return b.flush()
		}
	}
	return "", false
}

// End closes every tag left open, last-opened first, and performs the
// terminal flush. The Balancer must not be used afterwards.
func (b *Balancer) End() (string, bool) {
	for n := len(b.open); n > 0; n = len(b.open) {
		top := b.open[n-1]
		b.open = b.open[:n-1]
		if top.stripped {
			continue
		}
		b.buf.append(Close(top.name))
	}
	return b.flush()
}

// flush drains the pending buffer. An empty buffer is a no-op: no
// chunk, so callers never forward empty output downstream.
func (b *Balancer) flush() (string, bool) {
	if b.buf.empty() {
		return "", false
	}
	chunk := b.buf.flush()
	if debug.Flush() {
		debug.Logf("balance: flush depth=%d %q\n", len(b.open), chunk)
	}
	return chunk, true
}

var textEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
