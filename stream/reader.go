package stream

import (
	"io"

	"github.com/tagmend/tagmend/balance"
)

// Reader is the pull form of the transform: it reads raw HTML from an
// underlying reader and yields balanced output.
type Reader struct {
	r    io.Reader
	tr   *Transform
	out  []byte
	buf  [4096]byte
	done bool
	err  error
}

// NewReader wraps r in a balancing reader configured by the engine
// options.
func NewReader(r io.Reader, opts ...balance.Option) *Reader {
	br := &Reader{r: r}
	// the sink can't fail; it only grows the pending output
	br.tr, _ = NewTransform(ChunkFunc(func(chunk string) error {
		br.out = append(br.out, chunk...)
		return nil
	}), opts...)
	return br
}

func (br *Reader) Read(p []byte) (int, error) {
	for len(br.out) == 0 {
		if br.err != nil {
			return 0, br.err
		}
		if br.done {
			br.err = io.EOF
			return 0, io.EOF
		}
		n, err := br.r.Read(br.buf[:])
		if n > 0 {
			if werr := br.tr.WriteString(string(br.buf[:n])); werr != nil {
				br.err = werr
				return 0, werr
			}
		}
		switch err {
		case nil:
		case io.EOF:
			br.done = true
			if cerr := br.tr.Close(); cerr != nil {
				br.err = cerr
				return 0, cerr
			}
		default:
			br.err = err
			return 0, err
		}
	}
	n := copy(p, br.out)
	br.out = br.out[n:]
	return n, nil
}
