// Package logging provides loggers used throughout the tmpkeep codebase.
package logging

import (
	"context"

	"go.uber.org/zap"
)

// Logger is an interface used by tmpkeep to output logs.
type Logger = *zap.SugaredLogger

// LoggerFactory retrieves a named logger for a given module.
type LoggerFactory func(module string) Logger

var nullLogger = zap.NewNop().Sugar()

// NullLogger represents a singleton logger that discards all output.
func NullLogger() Logger { return nullLogger }

// Module returns a function that returns a logger for a given module when provided with a context.
func Module(module string) func(ctx context.Context) Logger {
	return func(ctx context.Context) Logger {
		if f, ok := ctx.Value(loggerFactoryKey).(LoggerFactory); ok && f != nil {
			return f(module)
		}

		return nullLogger
	}
}
