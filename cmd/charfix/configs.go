package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type docFormat int

const (
	yamlFormat docFormat = iota
	jsonFormat
)

func parseFormat(v string) (docFormat, error) {
	switch v {
	case "yaml", "y":
		return yamlFormat, nil
	case "json", "j":
		return jsonFormat, nil
	}
	return 0, fmt.Errorf("unknown format %q", v)
}

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y     bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Color bool `cli:"name=color desc='colorize diff output'"`

	InFormat, OutFormat *docFormat

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**docFormat) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := parseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
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

func (cfg *MainConfig) inFmt() docFormat {
	f := yamlFormat
	switch {
	case cfg.J:
		f = jsonFormat
	case cfg.Y:
		f = yamlFormat
	}
	if cfg.InFormat != nil {
		f = *cfg.InFormat
	}
	return f
}

func (cfg *MainConfig) outFmt() docFormat {
	f := cfg.inFmt()
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func decodeDoc(d []byte, f docFormat) (any, error) {
	var v any
	switch f {
	case jsonFormat:
		if err := json.Unmarshal(d, &v); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func encodeDoc(v any, f docFormat) ([]byte, error) {
	switch f {
	case jsonFormat:
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(d, '\n'), nil
	default:
		return yaml.Marshal(v)
	}
}

type FixConfig struct {
	*MainConfig

	Dir   string `cli:"name=d aliases=direction desc='direction: input or output'"`
	Skip  bool   `cli:"name=skip desc='skip mixed-encoding repair'"`
	Stats bool   `cli:"name=stats desc='report scalar leaf counts to stderr'"`

	Fix *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
