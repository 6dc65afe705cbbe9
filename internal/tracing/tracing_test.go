package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInstall_SetsGlobalProvider(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	p := install(sdktrace.WithSpanProcessor(rec))
	defer func() { require.NoError(t, p.Shutdown(context.Background())) }()

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "op", ended[0].Name())

	svc, ok := ended[0].Resource().Set().Value("service.name")
	require.True(t, ok)
	require.Equal(t, ServiceName, svc.AsString())
}
