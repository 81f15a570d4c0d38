// Package stream wires the chunked tokenizer to the balancing engine
// behind push and pull interfaces.
//
// A Transform is the push form: feed it raw HTML text in arbitrary
// chunks and it delivers balanced output chunks to a ChunkSink as
// they become available. Close signals end of input and flushes the
// closes for anything still open.
//
//	tr, _ := stream.NewTransform(stream.ChunkFunc(func(chunk string) error {
//		_, err := w.Write([]byte(chunk))
//		return err
//	}))
//	io.Copy(tr, r)
//	tr.Close()
//
// A Reader is the pull form over an io.Reader, for pipelines that
// want balanced output through the ordinary Read interface.
//
// All of it is single-goroutine: a Write or Read does its work on
// the calling goroutine, and no value is shared across streams.
package stream
