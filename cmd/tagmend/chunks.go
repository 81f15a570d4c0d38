package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/tagmend/tagmend/stream"
)

// chunks runs the streaming transform and prints one line per output
// chunk, for seeing how input buffering and flush policy interact.
func chunks(cfg *ChunksConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Chunks.Parse(cc, args)
	if err != nil {
		cfg.Chunks.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Size <= 0 {
		return fmt.Errorf("%w: -size must be positive", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := chunksArg(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func chunksArg(cfg *ChunksConfig, cc *cli.Context, arg string) error {
	var r io.Reader
	if arg == "-" {
		r = cc.In
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	opts, err := cfg.balanceOpts()
	if err != nil {
		return err
	}
	n := 0
	tr, err := stream.NewTransform(stream.ChunkFunc(func(chunk string) error {
		_, err := fmt.Fprintf(cc.Out, "%d\t%q\n", n, chunk)
		n++
		return err
	}), opts...)
	if err != nil {
		return err
	}
	buf := make([]byte, cfg.Size)
	if _, err := io.CopyBuffer(tr, onlyReader{r}, buf); err != nil {
		return err
	}
	return tr.Close()
}

// onlyReader hides any ReadFrom/WriteTo so CopyBuffer honors -size.
type onlyReader struct {
	io.Reader
}
