package balance

import (
	"strings"
	"testing"
)

func render(ev Event) string {
	var b strings.Builder
	renderEvent(&b, &ev)
	return b.String()
}

func TestRenderOpen(t *testing.T) {
	got := render(Open("div"))
	if got != "<div>" {
		t.Errorf("expected <div>, got %q", got)
	}
}

func TestRenderOpenAttrs(t *testing.T) {
	got := render(Open("a",
		Attr{Name: "href", Value: "https://example.com"},
		Attr{Name: "target", Value: "_blank"}))
	expected := `<a href="https://example.com" target="_blank">`
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestRenderOpenVoid(t *testing.T) {
	got := render(Open("br"))
	if got != "<br/>" {
		t.Errorf("expected <br/>, got %q", got)
	}
}

func TestRenderOpenVoidAttrs(t *testing.T) {
	got := render(Open("input",
		Attr{Name: "disabled"},
		Attr{Name: "checked"},
		Attr{Name: "type", Value: "checkbox"}))
	expected := `<input disabled="" checked="" type="checkbox"/>`
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestRenderAttrEscaping(t *testing.T) {
	got := render(Open("div", Attr{Name: "title", Value: "say \"hi\"\n"}))
	expected := `<div title="say \"hi\"\n">`
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestRenderClose(t *testing.T) {
	got := render(Close("div"))
	if got != "</div>" {
		t.Errorf("expected </div>, got %q", got)
	}
}

func TestPendingFlushOrder(t *testing.T) {
	p := &pending{}
	p.append(Open("div"))
	p.append(Text("hi"))
	p.append(Close("div"))
	got := p.flush()
	if got != "<div>hi</div>" {
		t.Errorf("expected <div>hi</div>, got %q", got)
	}
	if !p.empty() {
		t.Error("expected buffer empty after flush")
	}
}
