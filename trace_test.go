package htmldom

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newTraceBuffer() (*bytes.Buffer, *slog.Logger) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return &buf, logger
}

func TestWithTraceLogger(t *testing.T) {
	buf, logger := newTraceBuffer()

	ctx := WithTraceLogger(context.Background(), logger)

	tlog := getTraceLogFromContext(ctx)
	if !TracingEnabled {
		t.Skip("Tracing disabled - skipping trace logger test")
		return
	}
	require.NotNil(t, tlog)

	tlog.Debug("test message")
	require.Contains(t, buf.String(), "test message")
}

func TestWithSpan(t *testing.T) {
	if !TracingEnabled {
		t.Skip("Tracing disabled - skipping span test")
		return
	}

	ctx := context.Background()
	ctx, span := WithSpan(ctx, "test_operation")

	require.NotEmpty(t, span.ID)
	require.Equal(t, "test_operation", span.Name)
	require.Empty(t, span.ParentID)
	require.False(t, span.Start.IsZero())

	_, span2 := WithSpan(ctx, "nested_operation")

	require.NotEmpty(t, span2.ID)
	require.Equal(t, "nested_operation", span2.Name)
	require.Equal(t, span.ID, span2.ParentID)
	require.NotEqual(t, span.ID, span2.ID)
}

func TestStartSpan(t *testing.T) {
	if !TracingEnabled {
		t.Skip("Tracing disabled - skipping StartSpan test")
		return
	}

	buf, logger := newTraceBuffer()
	ctx := WithTraceLogger(context.Background(), logger)

	_, span := StartSpan(ctx, "test_function")
	require.NotNil(t, span)
	span.End()

	output := buf.String()
	require.Contains(t, output, "span start")
	require.Contains(t, output, "span end")
	require.Contains(t, output, "test_function")
}

func TestTraceEvent(t *testing.T) {
	if !TracingEnabled {
		t.Skip("Tracing disabled - skipping event test")
		return
	}

	buf, logger := newTraceBuffer()
	ctx := WithTraceLogger(context.Background(), logger)

	TraceEvent(ctx, "something happened", slog.Int("n", 42))

	output := buf.String()
	require.Contains(t, output, "something happened")
	require.Contains(t, output, `"n":42`)
}

func TestTraceError(t *testing.T) {
	if !TracingEnabled {
		t.Skip("Tracing disabled - skipping error test")
		return
	}

	buf, logger := newTraceBuffer()
	ctx := WithTraceLogger(context.Background(), logger)

	TraceError(ctx, errors.New("boom"), "operation failed")

	output := buf.String()
	require.Contains(t, output, "operation failed")
	require.Contains(t, output, "boom")
}

func TestParseWithTraceLogger(t *testing.T) {
	if !TracingEnabled {
		t.Skip("Tracing disabled - skipping integration test")
		return
	}

	buf, logger := newTraceBuffer()
	ctx := WithTraceLogger(context.Background(), logger)

	_, err := Parse(ctx, []byte(`<p>hi</p>`))
	require.NoError(t, err, "Parse should succeed")

	output := buf.String()
	require.Contains(t, output, "htmldom.Parse", "the parse span should be traced")
	require.Contains(t, output, "ingestion complete", "completion should be traced")
}
