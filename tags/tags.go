package tags

// voidTags is shared by every engine instance; it is never mutated
// after package init.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoid reports whether name names a void element. The match is
// exact and case sensitive; tokenizers that normalize casing must do
// so before calling.
func IsVoid(name string) bool {
	return voidTags[name]
}
