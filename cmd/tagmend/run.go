package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/tagmend/tagmend/stream"
)

func tagmendMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			err := sub.Run(cc, args[1:])
			if errors.Is(err, cli.ErrUsage) {
				sub.Usage(cc, err)
				os.Exit(sub.Exit(cc, err))
			}
			return err
		}
	}
	if len(args) == 0 {
		return balanceReader(cfg, cc.Out, cc.In)
	}
	return balanceFiles(cfg, cc.Out, args)
}

func balanceFiles(cfg *MainConfig, w io.Writer, args []string) error {
	for _, arg := range args {
		if err := balanceFile(cfg, w, arg); err != nil {
			return err
		}
	}
	return nil
}

func balanceFile(cfg *MainConfig, w io.Writer, arg string) error {
	if arg == "-" {
		return balanceReader(cfg, w, os.Stdin)
	}
	f, err := os.Open(arg)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", arg, err)
	}
	defer f.Close()
	if err := balanceReader(cfg, w, f); err != nil {
		return fmt.Errorf("error balancing %s: %w", arg, err)
	}
	return nil
}

func balanceReader(cfg *MainConfig, w io.Writer, r io.Reader) error {
	opts, err := cfg.balanceOpts()
	if err != nil {
		return err
	}
	sink := chunkWriter(w)
	if cfg.colorize(w) {
		sink = coloredChunkWriter(w)
	}
	tr, err := stream.NewTransform(sink, opts...)
	if err != nil {
		return err
	}
	if _, err := io.Copy(tr, r); err != nil {
		return err
	}
	return tr.Close()
}

func chunkWriter(w io.Writer) stream.ChunkSink {
	return stream.ChunkFunc(func(chunk string) error {
		_, err := io.WriteString(w, chunk)
		return err
	})
}
