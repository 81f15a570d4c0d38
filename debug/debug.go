package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Flush  bool
	Events bool
}

var d *debug

func init() {
	d = &debug{}
	d.Flush = boolEnv("TAGMEND_DEBUG_FLUSH")
	d.Events = boolEnv("TAGMEND_DEBUG_EVENTS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Flush() bool {
	return d.Flush
}
func Events() bool {
	return d.Events
}
