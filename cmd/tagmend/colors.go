package main

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/tagmend/tagmend/stream"
)

var (
	tagColor    = color.New(color.FgCyan).SprintFunc()
	insertColor = color.New(color.FgGreen).SprintFunc()
	deleteColor = color.New(color.FgRed, color.CrossedOut).SprintFunc()
)

// coloredChunkWriter colorizes markup spans on the way out. Chunks
// never split a tag, so scanning per chunk is safe.
func coloredChunkWriter(w io.Writer) stream.ChunkSink {
	return stream.ChunkFunc(func(chunk string) error {
		_, err := io.WriteString(w, colorizeMarkup(chunk))
		return err
	})
}

func colorizeMarkup(chunk string) string {
	var b strings.Builder
	for {
		lt := strings.IndexByte(chunk, '<')
		if lt < 0 {
			b.WriteString(chunk)
			return b.String()
		}
		gt := strings.IndexByte(chunk[lt:], '>')
		if gt < 0 {
			b.WriteString(chunk)
			return b.String()
		}
		b.WriteString(chunk[:lt])
		b.WriteString(tagColor(chunk[lt : lt+gt+1]))
		chunk = chunk[lt+gt+1:]
	}
}
