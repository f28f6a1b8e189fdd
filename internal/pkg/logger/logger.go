// Package logger provides a global, sugared zap logger that writes JSON to
// stdout. Loggers can be derived into a context so that request-scoped fields
// follow the call chain, and every entry carries the OpenTelemetry trace and
// span ids found in the context.
package logger

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKeyType struct{}

// ctxKey is the context key under which derived loggers are stored.
var ctxKey ctxKeyType

var (
	// baseLogger is the process-wide logger. It is set once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce guards the initialization of baseLogger.
	initBaseLoggerOnce sync.Once

	nopLogger = zap.NewNop().Sugar()
)

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error", "panic", "fatal"). Only the first successful call has an
// effect.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(os.Stdout),
			lvl,
		)

		baseLogger = zap.New(core).Sugar()
	})

	return nil
}

// base returns the global logger, or a no-op logger when Init was never called.
func base() *zap.SugaredLogger {
	if baseLogger == nil {
		return nopLogger
	}
	return baseLogger
}

// Sync flushes buffered log entries. Call it on shutdown.
func Sync() error {
	return base().Sync()
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) enriched
// with the trace ids of the active span and the given key/value pairs.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok || l == nil {
		l = base()
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		l = l.With(
			"trace_id", sc.TraceID().String(),
			"span_id", sc.SpanID().String(),
		)
	}

	if len(keysAndValues) > 0 {
		l = l.With(keysAndValues...)
	}

	return l
}

// Derive returns a copy of ctx carrying a logger enriched with keysAndValues.
// Entries logged with the returned context include those fields.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok || l == nil {
		l = base()
	}

	if len(keysAndValues) > 0 {
		l = l.With(keysAndValues...)
	}

	return context.WithValue(ctx, ctxKey, l)
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message and exits the process.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
