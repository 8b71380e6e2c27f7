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
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "charfix").
		WithSynopsis("charfix [opts] command [opts]").
		WithDescription("charfix normalizes character encoding in document value trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return charfixMain(cfg, cc, args)
		}).
		WithSubs(
			FixCommand(cfg),
			DiffCommand(cfg))
}

func FixCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FixConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fix").
		WithAliases("f").
		WithSynopsis("fix -d input|output [opts] [files]").
		WithDescription("normalize character encoding of every value in documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fix(cfg, cc, args)
		})
	cfg.Fix = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff [files]").
		WithDescription("show what mixed-encoding repair would change").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
