package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/tagmend/tagmend/balance"
)

type MainConfig struct {
	Buffer bool   `cli:"name=buffer aliases=b desc='withhold output until nesting depth returns to zero'"`
	Color  bool   `cli:"name=color desc='colorize markup in output'"`
	Keep   string `cli:"name=keep desc='expression over (name, attrs) selecting elements to keep'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// fileConfig is the yaml shape accepted by -config. Pointer fields so
// an absent key leaves the command line value alone.
type fileConfig struct {
	Buffer *bool   `yaml:"buffer"`
	Color  *bool   `yaml:"color"`
	Keep   *string `yaml:"keep"`
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	data, err := os.ReadFile(a)
	if err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", cli.ErrUsage, a, err)
	}
	if fc.Buffer != nil {
		cfg.Buffer = *fc.Buffer
	}
	if fc.Color != nil {
		cfg.Color = *fc.Color
	}
	if fc.Keep != nil {
		cfg.Keep = *fc.Keep
	}
	return nil, nil
}

func (cfg *MainConfig) balanceOpts() ([]balance.Option, error) {
	opts := []balance.Option{
		balance.WithBuffering(cfg.Buffer),
	}
	if cfg.Keep != "" {
		keep, err := compileKeep(cfg.Keep)
		if err != nil {
			return nil, fmt.Errorf("%w: -keep: %w", cli.ErrUsage, err)
		}
		opts = append(opts, balance.WithKeep(keep))
	}
	return opts, nil
}

// colorize decides whether to colorize output to w: an explicit
// -color wins, otherwise only a terminal gets color.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			// -color=false
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ChunksConfig struct {
	*MainConfig

	Size int `cli:"name=size desc='read buffer size in bytes'"`

	Chunks *cli.Command
}
