// Package logger provides a global, Sugared Zap logger that writes JSON to
// stdout and enriches every entry with the OpenTelemetry trace and span IDs
// found in the context. When telemetry is enabled, entries are also forwarded
// through the otelzap bridge. Child loggers carrying extra fields can be attached to
// a context with Derive. Entries logged before Init are discarded.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/fantoken/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the unexported type for the context key holding a derived logger.
type ctxKeyType struct{}

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once

	// ctxKey stores a derived *zap.SugaredLogger on a context.
	ctxKey = ctxKeyType{}

	// nopLogger receives every entry logged before Init.
	nopLogger = zap.NewNop().Sugar()
)

// base returns the global logger, or a no-op logger when Init was not called.
func base() *zap.SugaredLogger {
	if baseLogger == nil {
		return nopLogger
	}
	return baseLogger
}

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error", "panic", "fatal"). When telemetry.Init ran before it, every
// entry is also forwarded to the OpenTelemetry logger provider. Calling Init
// again after a successful initialization has no effect.
//
// Returns an error if parsing the log level fails.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		baseLogger = zap.New(newCore(lvl, telemetry.LoggerProvider())).Sugar()
	})

	return nil
}

// newCore returns the stdout JSON core, teed with an otelzap bridge core
// when lp is set.
func newCore(lvl zapcore.Level, lp otellog.LoggerProvider) zapcore.Core {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(os.Stdout),
		lvl,
	)
	if lp == nil {
		return core
	}

	return zapcore.NewTee(core, otelzap.NewCore(telemetry.ScopeName, otelzap.WithLoggerProvider(lp)))
}

// deriveFromCtx returns the logger stored on ctx (or the base logger), with
// the trace/span IDs of ctx and the given key/value pairs attached.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = base()
	}

	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.HasTraceID() {
		l = l.With("trace_id", spanCtx.TraceID().String())
	}
	if spanCtx.HasSpanID() {
		l = l.With("span_id", spanCtx.SpanID().String())
	}

	if len(keysAndValues) > 0 {
		l = l.With(keysAndValues...)
	}

	return l
}

// Derive returns a copy of ctx carrying a child logger with the given
// key/value pairs. Every log call made with the returned context includes them.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = base()
	}

	return context.WithValue(ctx, ctxKey, l.With(keysAndValues...))
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return base().Sync()
}

// log writes msg at level through the context-derived logger.
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

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
