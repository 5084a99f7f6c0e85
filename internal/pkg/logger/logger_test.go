package logger

import (
	"context"
	"os"
	"os/exec"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// resetLogger resets the global logger state for testing
func resetLogger() {
	baseLogger = nil
	initBaseLoggerOnce = sync.Once{}
}

// observe swaps the base logger for an in-memory observer and returns the recorded logs.
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	resetLogger()
	core, logs := observer.New(zapcore.DebugLevel)
	baseLogger = zap.New(core).Sugar()
	t.Cleanup(resetLogger)

	return logs
}

func spanContext(t *testing.T) context.Context {
	t.Helper()

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	return trace.ContextWithSpanContext(t.Context(), sc)
}

func TestInit(t *testing.T) {
	t.Run("successful initialization with valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			resetLogger()
			require.NoError(t, Init(level))
			assert.NotNil(t, baseLogger)
		}
	})

	t.Run("error with invalid level", func(t *testing.T) {
		resetLogger()
		err := Init("invalid")
		assert.Error(t, err)
		assert.Nil(t, baseLogger)
	})

	t.Run("init only once", func(t *testing.T) {
		resetLogger()

		require.NoError(t, Init("debug"))
		firstLogger := baseLogger

		require.NoError(t, Init("error"))
		assert.Equal(t, firstLogger, baseLogger, "Init() should only initialize once")
	})
}

// recordingProcessor keeps the bodies of emitted OpenTelemetry log records.
type recordingProcessor struct {
	mu     sync.Mutex
	bodies []string
}

func (p *recordingProcessor) OnEmit(_ context.Context, record *sdklog.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.bodies = append(p.bodies, record.Body().AsString())
	return nil
}

func (p *recordingProcessor) Shutdown(context.Context) error   { return nil }
func (p *recordingProcessor) ForceFlush(context.Context) error { return nil }

func (p *recordingProcessor) recorded() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]string(nil), p.bodies...)
}

func TestNewCore(t *testing.T) {
	t.Run("stdout only without a logger provider", func(t *testing.T) {
		core := newCore(zapcore.InfoLevel, nil)

		assert.True(t, core.Enabled(zapcore.InfoLevel))
		assert.False(t, core.Enabled(zapcore.DebugLevel))
	})

	t.Run("forwards entries to the logger provider", func(t *testing.T) {
		processor := &recordingProcessor{}
		lp := sdklog.NewLoggerProvider(sdklog.WithProcessor(processor))
		t.Cleanup(func() { _ = lp.Shutdown(context.Background()) })

		l := zap.New(newCore(zapcore.InfoLevel, lp)).Sugar()
		l.Infow("wallet connected", "wallet.chain_id", 1)

		assert.Equal(t, []string{"wallet connected"}, processor.recorded())
	})
}

func TestDeriveFromCtx(t *testing.T) {
	t.Run("adds trace and span ids", func(t *testing.T) {
		logs := observe(t)

		deriveFromCtx(spanContext(t), "key", "value").Info("hello")

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
		assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
		assert.Equal(t, "value", fields["key"])
	})

	t.Run("omits ids without span context", func(t *testing.T) {
		logs := observe(t)

		deriveFromCtx(t.Context()).Info("hello")

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.NotContains(t, fields, "trace_id")
		assert.NotContains(t, fields, "span_id")
	})
}

func TestDerive(t *testing.T) {
	t.Run("stores a child logger on the context", func(t *testing.T) {
		observe(t)

		ctx := Derive(t.Context(), "key", "value")

		l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
		assert.True(t, ok)
		assert.NotNil(t, l)
	})

	t.Run("derived fields accumulate", func(t *testing.T) {
		logs := observe(t)

		ctx := Derive(t.Context(), "wallet.account", "0xabc")
		ctx = Derive(ctx, "wallet.chain_id", 88888)
		Info(ctx, "connected", "extra", true)

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "0xabc", fields["wallet.account"])
		assert.EqualValues(t, 88888, fields["wallet.chain_id"])
		assert.Equal(t, true, fields["extra"])
	})
}

func TestLevels(t *testing.T) {
	logs := observe(t)
	ctx := t.Context()

	Debug(ctx, "debug message")
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)

	assert.Panics(t, func() {
		Panic(ctx, "panic message")
	}, "Panic() should panic")
}

func TestSync(t *testing.T) {
	t.Run("sync after init", func(t *testing.T) {
		resetLogger()
		require.NoError(t, Init("info"))

		assert.NotPanics(t, func() {
			Sync()
		})
	})

	t.Run("sync without init is a no-op", func(t *testing.T) {
		resetLogger()

		assert.NoError(t, Sync())
	})
}

func TestLoggingBeforeInit(t *testing.T) {
	resetLogger()

	assert.NotPanics(t, func() {
		Info(t.Context(), "discarded", "key", "value")
		_ = Derive(t.Context(), "key", "value")
	})
}

func TestFatal(t *testing.T) {
	if os.Getenv("TEST_FATAL_SUBPROCESS") == "1" {
		_ = Init("debug")
		Fatal(context.Background(), "fatal error for test")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
	cmd.Env = append(os.Environ(), "TEST_FATAL_SUBPROCESS=1")

	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode(), "logger.Fatal should terminate with exit code 1")
}
