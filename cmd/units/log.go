package main

import (
	"fmt"

	"go.uber.org/zap"
)

// newLogger builds the command's logger. Logs always go to stderr so that
// results on stdout stay clean.
func newLogger(level, format string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bad log level: %w", err)
	}
	zc.Level = lvl
	switch format {
	case "console":
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	case "json":
		zc.Encoding = "json"
	default:
		return nil, fmt.Errorf("log format must be console or json, not %q", format)
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	return zc.Build()
}
