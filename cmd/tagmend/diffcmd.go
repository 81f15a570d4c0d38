package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tagmend/tagmend/stream"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	changed := false
	for _, arg := range args {
		c, err := diffArg(cfg, cc, arg)
		if err != nil {
			return err
		}
		changed = changed || c
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffArg(cfg *DiffConfig, cc *cli.Context, arg string) (bool, error) {
	var r io.Reader
	if arg == "-" {
		r = cc.In
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return false, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return false, err
	}
	out, err := balanceString(cfg.MainConfig, string(in))
	if err != nil {
		return false, err
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(in), out, false)
	colored := cfg.colorize(cc.Out)
	changed := false
	for _, d := range diffs {
		text := d.Text
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			changed = true
			if colored {
				text = insertColor(text)
			}
		case diffmatchpatch.DiffDelete:
			changed = true
			if colored {
				text = deleteColor(text)
			}
		}
		if _, err := io.WriteString(cc.Out, text); err != nil {
			return false, err
		}
	}
	if _, err := io.WriteString(cc.Out, "\n"); err != nil {
		return false, err
	}
	return changed, nil
}

func balanceString(cfg *MainConfig, in string) (string, error) {
	opts, err := cfg.balanceOpts()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	tr, err := stream.NewTransform(stream.ChunkFunc(func(chunk string) error {
		b.WriteString(chunk)
		return nil
	}), opts...)
	if err != nil {
		return "", err
	}
	if err := tr.WriteString(in); err != nil {
		return "", err
	}
	if err := tr.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}
