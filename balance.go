package tagmend

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tagmend/tagmend/stream"
)

// trailingTag matches an unterminated tag fragment at end of input.
var trailingTag = regexp.MustCompile(`<[^>]*$`)

// Balance returns html with mismatched closes resolved and every
// still-open tag closed. A trailing partial tag such as "<di" is
// removed first. Balancing an already balanced string returns it
// unchanged.
func Balance(html string) string {
	html = trailingTag.ReplaceAllString(html, "")
	var b strings.Builder
	tr, err := stream.NewTransform(stream.ChunkFunc(func(chunk string) error {
		b.WriteString(chunk)
		return nil
	}))
	if err != nil {
		panic(fmt.Sprintf("tagmend: %v", err))
	}
	if err := tr.WriteString(html); err != nil {
		panic(fmt.Sprintf("tagmend: %v", err))
	}
	if err := tr.Close(); err != nil {
		panic(fmt.Sprintf("tagmend: %v", err))
	}
	return b.String()
}
