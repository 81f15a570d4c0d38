package balance

// Option configures Balancer behavior.
type Option func(*config)

type config struct {
	buffered bool
	keep     func(name string, attrs []Attr) bool
}

// WithBuffering withholds output while any non-void tag is open:
// chunks are released only when the open-tag depth returns to zero
// (and for text seen at depth zero).
func WithBuffering(v bool) Option {
	return func(c *config) {
		c.buffered = v
	}
}

// WithKeep installs an element filter. When keep returns false for an
// open tag, the element's open and close tags are dropped from the
// output; its children and text still pass through.
func WithKeep(keep func(name string, attrs []Attr) bool) Option {
	return func(c *config) {
		c.keep = keep
	}
}
