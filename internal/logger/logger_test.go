package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"fatal": zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestFromContext_Fallback ensures the global logger is returned when the context has none.
func TestFromContext_Fallback(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestContextRoundtrip verifies a scoped logger survives ToContext/FromContext.
func TestContextRoundtrip(t *testing.T) {
	t.Parallel()

	scoped := New(zap.NewAtomicLevelAt(zap.DebugLevel))
	ctx := ToContext(context.Background(), scoped)

	require.Same(t, scoped, FromContext(ctx))

	// WithName and WithKV derive new loggers.
	named := WithName(ctx, "test")
	require.NotSame(t, scoped, FromContext(named))
}

// TestWithLevel checks the option limits a derived logger to the given level.
func TestWithLevel(t *testing.T) {
	t.Parallel()

	core, observed := newObservedCore()
	l := zap.New(core, WithLevel(zapcore.WarnLevel)).Sugar()

	l.Info("dropped")
	l.Warn("kept")

	require.Equal(t, []string{"kept"}, observed.messages())
}

// observedCore is a minimal capturing core for level tests.
type observedCore struct {
	zapcore.LevelEnabler

	// entries collects the messages written through the core.
	entries *[]string
}

func newObservedCore() (zapcore.Core, *observedCore) {
	entries := make([]string, 0, 2)
	core := &observedCore{
		LevelEnabler: zapcore.DebugLevel,
		entries:      &entries,
	}

	return core, core
}

func (c *observedCore) With([]zapcore.Field) zapcore.Core { return c }

func (c *observedCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

func (c *observedCore) Write(ent zapcore.Entry, _ []zapcore.Field) error {
	*c.entries = append(*c.entries, ent.Message)

	return nil
}

func (c *observedCore) Sync() error { return nil }

func (c *observedCore) messages() []string { return *c.entries }
