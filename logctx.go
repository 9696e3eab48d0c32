package main

import "context"

type loggerCtxKey struct{}

// defaultLogger backs the context helpers when no logger was attached,
// so library code never has to nil-check.
var defaultLogger = NewLogger(false)

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// LoggerFromContext returns the attached logger, or the default one.
func LoggerFromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return defaultLogger
}

func LogInfo(ctx context.Context, format string, args ...interface{}) {
	LoggerFromContext(ctx).Info(format, args...)
}

func LogInfoSuccess(ctx context.Context, format string, args ...interface{}) {
	LoggerFromContext(ctx).InfoSuccess(format, args...)
}

func LogWarn(ctx context.Context, format string, args ...interface{}) {
	LoggerFromContext(ctx).Warn(format, args...)
}

func LogError(ctx context.Context, format string, args ...interface{}) {
	LoggerFromContext(ctx).Error(format, args...)
}

func LogDebug(ctx context.Context, format string, args ...interface{}) {
	LoggerFromContext(ctx).Debug(format, args...)
}

func LogDebugHTTP(ctx context.Context, format string, args ...interface{}) {
	LoggerFromContext(ctx).DebugHTTP(format, args...)
}

func LogStage(ctx context.Context, format string, args ...interface{}) {
	LoggerFromContext(ctx).Stage(format, args...)
}
