// Package token adapts golang.org/x/net/html's SAX-style tokenizer to
// push-fed chunked input.
//
// A Source accepts text chunks with no size or boundary guarantees (a
// tag, attribute, or single character may span chunks) and returns
// the structural events completed by each chunk: open tags with
// ordered attributes, close tags, and text, in document order.
//
// # Usage
//
//	src := token.NewSource()
//	events, _ := src.Write("<div>hel")
//	events, _ = src.Write("lo</div>")
//	events, _ = src.Close()
//
// Per the HTML5 tokenizer underneath, tag and attribute names arrive
// lowercased and text arrives with entities decoded. Comments and
// doctypes are not structural and are dropped.
//
// The source cannot carry rawtext element state (<script>, <style>)
// across a chunk boundary that splits their content around a '<'; a
// '<' inside such content then resolves as text.
package token
