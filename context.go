package logger

import "context"

type loggerContextKey struct{}

// ContextWithLogger returns a child context carrying l. A nil l leaves ctx
// unchanged.
func ContextWithLogger(ctx context.Context, l *Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, l)
}

// FromContext extracts a Logger from ctx if present, or returns a
// discard-backed no-op Logger.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return Noop()
	}
	if l, ok := ctx.Value(loggerContextKey{}).(*Logger); ok && l != nil {
		return l
	}
	return Noop()
}
