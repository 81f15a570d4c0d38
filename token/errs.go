package token

import "errors"

var ErrSourceClosed = errors.New("token source closed")
