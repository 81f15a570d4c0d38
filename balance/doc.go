// Package balance provides the incremental tag-balancing engine for
// partially written HTML.
//
// The engine consumes structural events (open tag, close tag, text),
// tracks the currently open tags, and releases serialized markup in
// flush-sized chunks. Anything left open when the stream ends is
// closed synthetically, last-opened first.
//
// # Example
//
//	b := balance.New()
//	chunk, ok := b.Push(balance.Open("div"))   // "<div>", true
//	chunk, ok = b.Push(balance.Text("hi"))     // "hi", true
//	chunk, ok = b.End()                        // "</div>", true
//
// # Example: Buffered
//
//	b := balance.New(balance.WithBuffering(true))
//	b.Push(balance.Open("div"))                // withheld
//	b.Push(balance.Text("hi"))                 // withheld
//	chunk, ok := b.Push(balance.Close("div"))  // "<div>hi</div>", true
//
// A Balancer serves exactly one stream. Instances share nothing, so
// no locking is needed; create one per stream and discard it after
// End.
//
// Events normally come from a token.Source feeding a tokenizer's
// output; the stream package wires the two together as a chunked
// text-to-text transform.
package balance
