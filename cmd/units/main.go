package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/zephyrtronium/units"
	"github.com/zephyrtronium/units/unitfile"
)

func main() {
	fs := flag.NewFlagSet("units", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, os.Args[1:], nil)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	log, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	code := run(cfg, os.Stdin, os.Stdout, os.Stderr, log)
	log.Sync()
	os.Exit(code)
}

// run executes the command and returns its exit code. Every input is handled
// even if earlier ones fail.
func run(cfg Config, stdin io.Reader, stdout, stderr io.Writer, log *zap.Logger) int {
	failed := false
	fail := func(err error) {
		fmt.Fprintf(stderr, "error: %v\n", err)
		failed = true
	}

	reg := units.NewRegistry()
	file := unitfile.File{Path: cfg.UnitsFile}
	saved, err := file.Load()
	if err != nil {
		fail(err)
	}
	saved = unitfile.Apply(reg, saved, log)

	for _, d := range cfg.Defines {
		if err := define(reg, d, cfg.MaxSymbol); err != nil {
			fail(fmt.Errorf("define %s: %w", d.Symbol, err))
		}
	}
	for _, d := range cfg.Adds {
		if err := define(reg, d, cfg.MaxSymbol); err != nil {
			fail(fmt.Errorf("add %s: %w", d.Symbol, err))
			continue
		}
		if err := file.Append(d); err != nil {
			// Units that are not saved are not available either.
			reg.Unregister(d.Symbol)
			fail(fmt.Errorf("add %s: %w", d.Symbol, err))
			continue
		}
		saved = append(saved, d)
		log.Info("added custom unit", zap.String("symbol", d.Symbol), zap.String("expr", d.Expr), zap.String("file", file.Path))
	}
	for _, sym := range cfg.Deletes {
		rest, ok := unitfile.Remove(saved, sym)
		if !ok {
			fail(fmt.Errorf("delete %s: not a custom unit", sym))
			continue
		}
		reg.Unregister(sym)
		if err := file.Save(rest); err != nil {
			fail(err)
			continue
		}
		saved = rest
		log.Info("deleted custom unit", zap.String("symbol", sym), zap.String("file", file.Path))
	}
	if cfg.List {
		list(stdout, reg)
	}

	eval := func(src string) {
		q, err := units.EvalString(reg, src)
		if err != nil {
			fail(err)
			return
		}
		log.Debug("evaluated", zap.String("expr", src), zap.Stringer("result", q))
		r := describe(reg, src, q)
		if cfg.Base {
			fmt.Fprintf(stdout, "%v\t[%s]\n", r, r.Base)
		} else {
			fmt.Fprintln(stdout, r)
		}
	}

	in, err := infile(cfg.In, stdin, len(cfg.Exprs) == 0 && !cfg.actions())
	if err != nil {
		fail(err)
	}
	if in != nil {
		if f, ok := in.(*os.File); ok && f != os.Stdin {
			defer f.Close()
		}
		if cfg.Lines {
			sc := bufio.NewScanner(in)
			for sc.Scan() {
				if strings.TrimSpace(sc.Text()) == "" {
					continue
				}
				eval(sc.Text())
			}
			if err := sc.Err(); err != nil {
				fail(err)
			}
		} else {
			b, err := io.ReadAll(in)
			if err != nil {
				fail(err)
			} else {
				eval(string(b))
			}
		}
	}
	for _, src := range cfg.Exprs {
		eval(src)
	}

	if failed {
		return 1
	}
	return 0
}

// define validates and registers a unit for the rest of the run.
func define(reg *units.Registry, e unitfile.Entry, maxlen int) error {
	if err := unitfile.Check(reg, e.Symbol, maxlen); err != nil {
		return err
	}
	d, err := units.ParseDim(reg, e.Expr)
	if err != nil {
		return err
	}
	reg.Register(e.Symbol, d)
	return nil
}

// infile opens the input named by the -in flag. "-" is stdin, as is no name
// when std is true.
func infile(name string, stdin io.Reader, std bool) (io.Reader, error) {
	switch {
	case name != "" && name != "-":
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		return f, nil
	case name == "-", std:
		return stdin, nil
	}
	return nil, nil
}

// list prints every registered symbol with its name and base units.
func list(w io.Writer, reg *units.Registry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, sym := range reg.Symbols() {
		d, _ := reg.Resolve(sym)
		name, _ := reg.Name(sym)
		fmt.Fprintf(tw, "%s\t%s\t%v\n", sym, name, d)
	}
	tw.Flush()
}
