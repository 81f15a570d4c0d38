package stream

import (
	"fmt"

	"github.com/tagmend/tagmend/balance"
	"github.com/tagmend/tagmend/token"
)

// ChunkSink receives balanced output chunks in order. WriteChunk is
// never called with an empty chunk.
type ChunkSink interface {
	WriteChunk(chunk string) error
}

// ChunkFunc adapts a function to a ChunkSink.
type ChunkFunc func(chunk string) error

func (f ChunkFunc) WriteChunk(chunk string) error {
	return f(chunk)
}

// Transform is a push-fed balancing transform: raw HTML text in,
// balanced chunks out. It implements io.WriteCloser so the input side
// composes with io.Copy.
type Transform struct {
	src  *token.Source
	bal  *balance.Balancer
	sink ChunkSink
}

// NewTransform creates a Transform delivering to sink, configured by
// the engine options.
func NewTransform(sink ChunkSink, opts ...balance.Option) (*Transform, error) {
	if sink == nil {
		return nil, ErrNoSink
	}
	return &Transform{
		src:  token.NewSource(),
		bal:  balance.New(opts...),
		sink: sink,
	}, nil
}

// Write feeds one chunk of raw input.
func (t *Transform) Write(p []byte) (int, error) {
	if err := t.WriteString(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString feeds one chunk of raw input, forwarding whatever
// output it releases to the sink.
func (t *Transform) WriteString(chunk string) error {
	events, err := t.src.Write(chunk)
	if err != nil {
		return err
	}
	return t.push(events)
}

// Close signals end of input. Events still held back by the
// tokenizer are processed, then the engine's synthesized closes and
// any withheld buffer go out as the final chunk.
func (t *Transform) Close() error {
	events, err := t.src.Close()
	if err != nil {
		return err
	}
	if err := t.push(events); err != nil {
		return err
	}
	if out, ok := t.bal.End(); ok {
		return t.emit(out)
	}
	return nil
}

func (t *Transform) push(events []balance.Event) error {
	for _, ev := range events {
		if out, ok := t.bal.Push(ev); ok {
			if err := t.emit(out); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Transform) emit(chunk string) error {
	if err := t.sink.WriteChunk(chunk); err != nil {
		return fmt.Errorf("stream: sink: %w", err)
	}
	return nil
}
