package stream

import "errors"

var ErrNoSink = errors.New("stream: no sink")
