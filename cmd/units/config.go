package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/zephyrtronium/units/unitfile"
)

// Config holds command configuration.
type Config struct {
	UnitsFile string
	LogLevel  string
	LogFormat string
	MaxSymbol int

	In      string
	Lines   bool
	Base    bool
	List    bool
	Defines []unitfile.Entry
	Adds    []unitfile.Entry
	Deletes []string
	Exprs   []string
}

type envConfig struct {
	UnitsFile string `env:"UNITS_FILE"`
	LogLevel  string `env:"UNITS_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"UNITS_LOG_FORMAT" envDefault:"console"`
	MaxSymbol int    `env:"UNITS_MAX_SYMBOL" envDefault:"5"`
}

// ParseConfig parses the environment and then flags into a Config. A nil
// environ means the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var envCfg envConfig
	if err := env.ParseWithOptions(&envCfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg := Config{
		UnitsFile: envCfg.UnitsFile,
		LogLevel:  envCfg.LogLevel,
		LogFormat: envCfg.LogFormat,
		MaxSymbol: envCfg.MaxSymbol,
	}
	if cfg.UnitsFile == "" {
		p, err := unitfile.DefaultPath()
		if err != nil {
			return Config{}, fmt.Errorf("no custom unit file: %w", err)
		}
		cfg.UnitsFile = p
	}

	fs.StringVar(&cfg.In, "in", "", "input file (default stdin if no expressions or actions given)")
	fs.BoolVar(&cfg.Lines, "n", false, "evaluate separate input lines as separate expressions")
	fs.BoolVar(&cfg.Base, "base", false, "also print results in SI base units")
	fs.BoolVar(&cfg.List, "list", false, "list known unit symbols")
	fs.Func("define", "symbol=expression unit definition for this run (any number of times)", defs(&cfg.Defines))
	fs.Func("add", "symbol=expression custom unit to save (any number of times)", defs(&cfg.Adds))
	fs.Func("delete", "custom unit symbol to remove (any number of times)", func(s string) error {
		cfg.Deletes = append(cfg.Deletes, strings.TrimSpace(s))
		return nil
	})
	fs.StringVar(&cfg.UnitsFile, "units-file", cfg.UnitsFile, "custom unit file (default: UNITS_FILE or ~/.physics-unit-calculator/custom-units.txt)")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level (default: UNITS_LOG_LEVEL or warn)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Exprs = fs.Args()
	return cfg, nil
}

// defs creates a flag.Func callback that appends unit definitions to v.
func defs(v *[]unitfile.Entry) func(string) error {
	return func(s string) error {
		sym, expr, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf(`unit definitions must be "symbol=expression", not %q`, s)
		}
		*v = append(*v, unitfile.Entry{Symbol: strings.TrimSpace(sym), Expr: strings.TrimSpace(expr)})
		return nil
	}
}

// actions returns whether cfg asks for anything other than evaluating
// expressions.
func (cfg *Config) actions() bool {
	return cfg.List || len(cfg.Adds) > 0 || len(cfg.Deletes) > 0
}
