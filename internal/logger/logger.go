// Package logger holds the process-wide zap logger. Diagnostic logging
// goes here; query results are rendered by the CLI output formatter,
// never logged.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init builds the logger. Verbose enables debug-level development
// output; otherwise only warnings and errors reach stderr, keeping
// query output clean for piping.
func Init(verbose bool) error {
	config := zap.NewDevelopmentConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := config.Build()
	if err != nil {
		return err
	}
	log = built
	return nil
}

// Get returns the logger, falling back to a no-op logger when Init was
// never called (library use, tests).
func Get() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
