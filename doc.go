// Package tagmend repairs unbalanced HTML.
//
// The one-shot form takes a string and returns it with every open tag
// closed, mismatched closes resolved, and trailing tag fragments
// removed:
//
//	tagmend.Balance("<div><p>content")
//	// "<div><p>content</p></div>"
//
// For streaming input, the stream subpackage offers the same repair
// as a chunked push transform or an io.Reader; the balance and token
// subpackages expose the engine and tokenizer underneath.
package tagmend
