package main

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger writes console-formatted logs to out, colored when out is a
// terminal. Debug messages are only kept when verbose is set.
func newLogger(out *os.File, verbose bool) *zap.Logger {
	config := zap.NewDevelopmentEncoderConfig()

	var sink zapcore.WriteSyncer
	if isatty.IsTerminal(out.Fd()) {
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
		sink = zapcore.AddSync(colorable.NewColorable(out))
	} else {
		config.EncodeLevel = zapcore.CapitalLevelEncoder
		sink = zapcore.Lock(out)
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(config), sink, level))
}

// openLogFile appends to path, creating it and its directory as needed.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
