package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/amp-labs/amp-bsearch/envutil"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) { //nolint:paralleltest
	// Not parallel: swaps the global slog default.
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "true")
	ctx = envutil.WithEnvOverride(ctx, "LOG_LEVEL", "debug")

	_, err := ConfigureLogging(ctx, "bsearch-test", WithOutput(&buf))
	require.NoError(t, err)

	Get(With(t.Context(), "dataset", "abc")).Debug("hello", "n", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "bsearch-test", rec["subsystem"])
	assert.Equal(t, "abc", rec["dataset"])
	assert.InDelta(t, 3, rec["n"], 0.001)
}

func TestConfigureLogging_BadEnv(t *testing.T) {
	t.Parallel()

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_OUTPUT", "syslog")

	_, err := ConfigureLogging(ctx, "bsearch-test")
	require.ErrorIs(t, err, ErrInvalidLogOutput)

	ctx = envutil.WithEnvOverride(t.Context(), "LOG_LEVEL", "loud")

	_, err = ConfigureLogging(ctx, "bsearch-test")
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)
}

func TestGet_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	base := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithSubsystem(WithLogger(t.Context(), base), "search")

	Get(nil, ctx).Info("found", "count", 2)

	out := buf.String()
	assert.Contains(t, out, "subsystem=search")
	assert.Contains(t, out, "count=2")
}

func TestGet_Muted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := WithMuted(WithLogger(t.Context(), slog.New(slog.NewTextHandler(&buf, nil))), true)

	Get(ctx).Error("should not appear")
	assert.Empty(t, buf.String())
}

func TestWith_DoesNotShareValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	base := WithLogger(t.Context(), slog.New(slog.NewTextHandler(&buf, nil)))
	parent := With(base, "a", 1)

	_ = With(parent, "b", 2)
	Get(With(parent, "c", 3)).Info("x")

	out := buf.String()
	assert.Contains(t, out, "a=1")
	assert.Contains(t, out, "c=3")
	assert.False(t, strings.Contains(out, "b=2"))
}

func TestGet_Slogt(t *testing.T) {
	t.Parallel()

	ctx := WithSubsystem(WithLogger(t.Context(), slogt.New(t)), "slogt")

	assert.NotPanics(t, func() {
		Get(ctx).Info("routed through the test log")
	})
}
