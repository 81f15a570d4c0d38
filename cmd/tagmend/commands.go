package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "config",
			Description: "yaml config file with buffer, color, keep keys",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tagmend").
		WithSynopsis("tagmend [opts] [command [opts]] [files]").
		WithDescription("tagmend repairs unbalanced HTML, from files or stdin.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tagmendMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			ChunksCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff [files]").
		WithDescription("show what balancing would change; exits 1 on any change").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ChunksCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ChunksConfig{MainConfig: mainCfg, Size: 4096}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Chunks, "chunks").
		WithAliases("c", "ch").
		WithSynopsis("chunks [-size n] [files]").
		WithDescription("trace the output chunks the streaming transform emits").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return chunks(cfg, cc, args)
		})
}
