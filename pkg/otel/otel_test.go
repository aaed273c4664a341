package otel

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"shopflow/pkg/logger"
)

func TestAddSpanUsesInjectedTracer(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer tp.Shutdown(context.Background())

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	ctx, span := AddSpan(ctx, "createProduct")
	require.NotEmpty(t, GetTraceID(ctx))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "createProduct", ended[0].Name())
	require.Equal(t, ended[0].SpanContext().TraceID().String(), GetTraceID(ctx))
}

func TestGetTraceIDWithoutSpan(t *testing.T) {
	require.Equal(t, "", GetTraceID(context.Background()))
}

func TestInitTracingWithoutExporter(t *testing.T) {
	log := logger.New(io.Discard, logger.LevelInfo, "test", nil)
	tp, shutdown, err := InitTracing(log, Config{ServiceName: "test", Probability: 1})
	require.NoError(t, err)
	require.NotNil(t, tp)

	_, span := tp.Tracer("t").Start(context.Background(), "op")
	require.True(t, span.SpanContext().IsSampled())
	span.End()
	require.NoError(t, shutdown(context.Background()))
}
