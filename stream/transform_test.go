package stream

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tagmend/tagmend/balance"
)

// collector records every chunk the transform emits.
type collector struct {
	chunks []string
}

func (c *collector) WriteChunk(chunk string) error {
	c.chunks = append(c.chunks, chunk)
	return nil
}

func TestTransformNilSink(t *testing.T) {
	if _, err := NewTransform(nil); !errors.Is(err, ErrNoSink) {
		t.Errorf("expected ErrNoSink, got %v", err)
	}
}

func TestTransformUnbuffered(t *testing.T) {
	c := &collector{}
	tr, err := NewTransform(c)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.WriteString("<div>content</div>"); err != nil {
		t.Fatal(err)
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	expected := []string{"<div>", "content", "</div>"}
	if diff := cmp.Diff(expected, c.chunks); diff != "" {
		t.Errorf("chunks mismatch (-expected +got):\n%s", diff)
	}
}

func TestTransformSynthesizedCloseChunk(t *testing.T) {
	c := &collector{}
	tr, err := NewTransform(c)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.WriteString("<div>content"); err != nil {
		t.Fatal(err)
	}
	expected := []string{"<div>", "content"}
	if diff := cmp.Diff(expected, c.chunks); diff != "" {
		t.Errorf("chunks before close mismatch (-expected +got):\n%s", diff)
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	expected = append(expected, "</div>")
	if diff := cmp.Diff(expected, c.chunks); diff != "" {
		t.Errorf("chunks mismatch (-expected +got):\n%s", diff)
	}
}

func TestTransformBufferedSingleChunk(t *testing.T) {
	c := &collector{}
	tr, err := NewTransform(c, balance.WithBuffering(true))
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.WriteString("<div><p>content"); err != nil {
		t.Fatal(err)
	}
	if len(c.chunks) != 0 {
		t.Fatalf("expected output withheld, got %v", c.chunks)
	}
	if err := tr.WriteString("</p></div>"); err != nil {
		t.Fatal(err)
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	expected := []string{"<div><p>content</p></div>"}
	if diff := cmp.Diff(expected, c.chunks); diff != "" {
		t.Errorf("chunks mismatch (-expected +got):\n%s", diff)
	}
}

func TestTransformTagSplitAcrossWrites(t *testing.T) {
	c := &collector{}
	tr, err := NewTransform(c)
	if err != nil {
		t.Fatal(err)
	}
	for _, chunk := range []string{"<di", "v>x</d", "iv>"} {
		if err := tr.WriteString(chunk); err != nil {
			t.Fatal(err)
		}
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	expected := []string{"<div>", "x", "</div>"}
	if diff := cmp.Diff(expected, c.chunks); diff != "" {
		t.Errorf("chunks mismatch (-expected +got):\n%s", diff)
	}
}

func TestTransformEmptyInput(t *testing.T) {
	c := &collector{}
	tr, err := NewTransform(c)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	if len(c.chunks) != 0 {
		t.Errorf("expected no chunks, got %v", c.chunks)
	}
}

func TestTransformWriterInterface(t *testing.T) {
	var b strings.Builder
	tr, err := NewTransform(ChunkFunc(func(chunk string) error {
		b.WriteString(chunk)
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.Copy(tr, strings.NewReader("<ul><li>a<li>b")); err != nil {
		t.Fatal(err)
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	expected := "<ul><li>a<li>b</li></li></ul>"
	if got := b.String(); got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}
}

func TestTransformSinkErrorWrapped(t *testing.T) {
	sinkErr := errors.New("closed pipe")
	tr, err := NewTransform(ChunkFunc(func(string) error { return sinkErr }))
	if err != nil {
		t.Fatal(err)
	}
	werr := tr.WriteString("<p>")
	if !errors.Is(werr, sinkErr) {
		t.Errorf("expected wrapped sink error, got %v", werr)
	}
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("<div><p>content</div>"))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	expected := "<div><p>content</p></div>"
	if string(out) != expected {
		t.Errorf("got %q, expected %q", out, expected)
	}
}

func TestReaderBuffered(t *testing.T) {
	r := NewReader(strings.NewReader("<div>content"), balance.WithBuffering(true))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	expected := "<div>content</div>"
	if string(out) != expected {
		t.Errorf("got %q, expected %q", out, expected)
	}
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty output, got %q", out)
	}
}
