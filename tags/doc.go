// Package tags classifies HTML tag names.
//
// # Usage
//
//	if tags.IsVoid(name) {
//	    // element has no closing tag, serialize as <name/>
//	}
//
// The void set is the HTML living standard's: area, base, br, col,
// embed, hr, img, input, link, meta, param, source, track, wbr.
//
// # Related Packages
//
//   - github.com/tagmend/tagmend/balance - balancing engine and serializer
//   - github.com/tagmend/tagmend/token - tokenizer adapter
package tags
