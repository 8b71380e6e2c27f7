package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/charfix/gomap"
	"github.com/signadot/charfix/ir"
	"github.com/signadot/charfix/norm"
)

func fix(cfg *FixConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fix.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Dir == "" {
		return fmt.Errorf("%w: fix requires -d input|output", cli.ErrUsage)
	}
	dir, err := norm.ParseDirection(cfg.Dir)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	if len(args) == 0 {
		return fixReader(cfg, dir, cc.Out, cc.In, "stdin")
	}
	for i, file := range args {
		if err := fixFile(cfg, dir, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			if err := writeDocSep(cc.Out); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeDocSep(w io.Writer) error {
	if _, err := w.Write([]byte("\n---\n")); err != nil {
		return fmt.Errorf("error writing document separator: %w", err)
	}
	return nil
}

func fixFile(cfg *FixConfig, dir norm.Direction, w io.Writer, file string) error {
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
	if err := fixReader(cfg, dir, w, f, file); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func fixReader(cfg *FixConfig, dir norm.Direction, w io.Writer, r io.Reader, name string) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	docs := bytes.Split(in, []byte("\n---\n"))
	n := len(docs)
	for i, doc := range docs {
		v, err := decodeDoc(doc, cfg.inFmt())
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		node := gomap.FromGo(v)
		var diags []norm.Diag
		if _, err := norm.Normalize(dir, node,
			norm.SkipRepair(cfg.Skip),
			norm.Diagnostics(&diags)); err != nil {
			return fmt.Errorf("error normalizing document %d: %w", i, err)
		}
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "%s: document %d: %s\n", name, i, d)
		}
		if cfg.Stats {
			fmt.Fprintf(os.Stderr, "%s: document %d: %d scalar leaves\n",
				name, i, countLeaves(node))
		}
		out, err := encodeDoc(renderable(gomap.ToGo(node)), cfg.outFmt())
		if err != nil {
			return fmt.Errorf("error encoding document %d: %w", i, err)
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("error writing document %d: %w", i, err)
		}
		if i < n-1 {
			if err := writeDocSep(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func countLeaves(node *ir.Node) int {
	res := 0
	node.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if !isPost && n.Type == ir.ScalarType {
			res++
		}
		return true, nil
	})
	return res
}

// renderable maps external byte scalars to strings so document encoders
// emit them as text rather than base64/binary forms.
func renderable(v any) any {
	switch vv := v.(type) {
	case []byte:
		return string(vv)
	case []any:
		for i, e := range vv {
			vv[i] = renderable(e)
		}
		return vv
	case map[string]any:
		for k, e := range vv {
			vv[k] = renderable(e)
		}
		return vv
	default:
		return vv
	}
}
