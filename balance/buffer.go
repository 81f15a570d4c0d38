package balance

import (
	"strconv"
	"strings"

	"github.com/tagmend/tagmend/tags"
)

// pending is the queue of events awaiting serialization. It is owned
// by one Balancer: append-only until flush, which drains and renders
// the whole queue at once. It never holds a Close for a void tag.
type pending struct {
	events []Event
}

func (p *pending) append(ev Event) {
	p.events = append(p.events, ev)
}

func (p *pending) empty() bool {
	return len(p.events) == 0
}

// flush renders and removes all buffered events, in queue order.
func (p *pending) flush() string {
	var b strings.Builder
	for i := range p.events {
		renderEvent(&b, &p.events[i])
	}
	p.events = p.events[:0]
	return b.String()
}

func renderEvent(b *strings.Builder, ev *Event) {
	switch ev.Type {
	case EventOpen:
		b.WriteByte('<')
		b.WriteString(ev.Name)
		for _, a := range ev.Attrs {
			b.WriteByte(' ')
			b.WriteString(a.Name)
			b.WriteByte('=')
			b.WriteString(strconv.Quote(a.Value))
		}
		if tags.IsVoid(ev.Name) {
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
	case EventClose:
		b.WriteString("</")
		b.WriteString(ev.Name)
		b.WriteByte('>')
	case EventText:
		b.WriteString(ev.Text)
	}
}
