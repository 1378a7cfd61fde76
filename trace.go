//go:build !notrace

package htmldom

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"runtime"
	"time"
)

type traceLoggerKey struct{}
type spanIDKey struct{}

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// TracingEnabled reports whether trace output is produced. Builds with
// -tags notrace compile all tracing down to no-ops.
var TracingEnabled = true

// SetTracingEnabled allows runtime control over trace output.
func SetTracingEnabled(enabled bool) {
	TracingEnabled = enabled
}

// Span interface provides the upgrade path for future OpenTelemetry
// compatibility.
type Span interface {
	End()
}

type noOpSpan struct{}

func (s *noOpSpan) End() {}

// SpanInfo holds information about a tracing span
type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
	Tags     map[string]string
}

type logSpan struct {
	ctx  context.Context
	info *SpanInfo
}

func (s *logSpan) End() {
	tlog := getTraceLogFromContext(s.ctx)
	tlog.LogAttrs(s.ctx, slog.LevelDebug, "span end",
		slog.String("span", s.info.Name),
		slog.String("span_id", s.info.ID),
		slog.Duration("elapsed", time.Since(s.info.Start)),
	)
}

// WithTraceLogger adds a trace logger to the context.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// If the context already has a trace logger, return the context as is
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}

	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

// WithSpan creates a new span and stores it in the context. The parent
// span, if any, is recorded in the returned SpanInfo.
func WithSpan(ctx context.Context, name string) (context.Context, *SpanInfo) {
	info := &SpanInfo{
		ID:    generateSpanID(),
		Name:  name,
		Start: time.Now(),
	}
	if parent, ok := ctx.Value(spanIDKey{}).(string); ok {
		info.ParentID = parent
	}
	return context.WithValue(ctx, spanIDKey{}, info.ID), info
}

// StartSpan creates a new span and logs its beginning. The returned
// Span's End method logs the elapsed time.
func StartSpan(ctx context.Context, spanName string) (context.Context, Span) {
	if !TracingEnabled {
		return ctx, &noOpSpan{}
	}

	ctx, info := WithSpan(ctx, spanName)
	tlog := getTraceLogFromContext(ctx)
	tlog.LogAttrs(ctx, slog.LevelDebug, "span start",
		slog.String("span", info.Name),
		slog.String("span_id", info.ID),
		slog.String("parent_id", info.ParentID),
	)
	return ctx, &logSpan{ctx: ctx, info: info}
}

// TraceEvent logs a structured event against the trace logger carried in
// the context, if any.
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	if !TracingEnabled {
		return
	}
	getTraceLogFromContext(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// TraceError logs an error with additional attributes.
func TraceError(ctx context.Context, err error, msg string, attrs ...slog.Attr) {
	if !TracingEnabled {
		return
	}
	attrs = append(attrs, slog.String("error", err.Error()))
	getTraceLogFromContext(ctx).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	// If the context has a trace logger, use that
	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		// Retrieve the function name of the caller for tracing
		pc, _, _, ok := runtime.Caller(2)
		if ok {
			fn := runtime.FuncForPC(pc)
			if fn != nil {
				tlog = tlog.With(slog.String("fn", fn.Name()))
			}
		}

		return tlog
	}

	// Otherwise, return a null logger
	return nullLogger
}

func generateSpanID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(b[:])
}
