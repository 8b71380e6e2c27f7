package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/charfix/repair"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return diffReader(cfg, cc.Out, cc.In, "stdin")
	}
	for _, file := range args {
		if err := diffFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func diffFile(cfg *DiffConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := diffReader(cfg, w, f, file); err != nil {
		return fmt.Errorf("error diffing %s: %w", file, err)
	}
	return nil
}

func diffReader(cfg *DiffConfig, w io.Writer, r io.Reader, name string) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	fixed := repair.Repair(in)
	if fixed == string(in) {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(string(in), fixed, false)
	useColor := cfg.useColor(w)
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffInsert:
			if useColor {
				fmt.Fprint(w, color.GreenString("%s", d.Text))
			} else {
				fmt.Fprintf(w, "{+%s+}", d.Text)
			}
		case diffpatch.DiffDelete:
			if useColor {
				fmt.Fprint(w, color.RedString("%s", d.Text))
			} else {
				fmt.Fprintf(w, "[-%s-]", d.Text)
			}
		case diffpatch.DiffEqual:
			fmt.Fprint(w, d.Text)
		}
	}
	return nil
}
