package logging

import "context"

type contextKey string

const loggerFactoryKey contextKey = "logger"

// WithLogger returns a derived context with associated logger factory.
func WithLogger(ctx context.Context, f LoggerFactory) context.Context {
	if f == nil {
		f = getNullLogger
	}

	return context.WithValue(ctx, loggerFactoryKey, f)
}

// WithAdditionalLogger returns a derived context where all messages are emitted to both
// the logger already associated with the context and the provided one.
func WithAdditionalLogger(ctx context.Context, f LoggerFactory) context.Context {
	base, ok := ctx.Value(loggerFactoryKey).(LoggerFactory)
	if !ok || base == nil {
		return WithLogger(ctx, f)
	}

	return WithLogger(ctx, func(module string) Logger {
		return Broadcast(base(module), f(module))
	})
}

func getNullLogger(module string) Logger {
	return nullLogger
}
