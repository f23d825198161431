package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mylegacyregistry/domain"
	"mylegacyregistry/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name            string
		cfg             Config
		expectedEnabled bool
		expectedError   string
	}{
		{name: "disabled", cfg: Config{Exporter: ExporterStdout}, expectedEnabled: false},
		{name: "enabled without exporter", cfg: Config{Enabled: true, Exporter: ExporterNone}, expectedEnabled: true},
		{name: "stdout", cfg: Config{Enabled: true, Exporter: ExporterStdout, ServiceName: "test"}, expectedEnabled: true},
		{name: "unknown exporter", cfg: Config{Enabled: true, Exporter: "otlp"}, expectedError: "unsupported exporter type: otlp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.cfg)
			if tt.expectedError != "" {
				require.EqualError(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedEnabled, p.Enabled())

			_, span := p.Tracer().Start(context.Background(), "test-span")
			span.End()
			assert.NoError(t, p.Shutdown(context.Background()))
		})
	}
}

func newRecordingProvider(t *testing.T) (*Provider, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	p := newProvider("test", sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	return p, recorder
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		handler        echo.HandlerFunc
		expectedName   string
		expectedStatus codes.Code
		expectedCode   int64
	}{
		{
			name: "routed request",
			handler: func(c echo.Context) error {
				c.Set(service.ContextKeyOperation, domain.OperationApplication)
				return c.NoContent(http.StatusOK)
			},
			expectedName:   "v1.application",
			expectedStatus: codes.Unset,
			expectedCode:   http.StatusOK,
		},
		{
			name: "server error status",
			handler: func(c echo.Context) error {
				c.Set(service.ContextKeyOperation, domain.OperationApplications)
				return c.NoContent(http.StatusInternalServerError)
			},
			expectedName:   "v1.applications",
			expectedStatus: codes.Error,
			expectedCode:   http.StatusInternalServerError,
		},
		{
			name: "returned error",
			handler: func(c echo.Context) error {
				return service.NewEntityNotFoundError("resource not found", nil)
			},
			expectedName:   "v1.request",
			expectedStatus: codes.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, recorder := newRecordingProvider(t)
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/eureka/v2/apps/WebServer", nil), rec)

			_ = p.Middleware()(tt.handler)(c)

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.expectedName, spans[0].Name())
			assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
			assert.Equal(t, tt.expectedStatus, spans[0].Status().Code)
			a := attrs(spans[0])
			assert.Equal(t, "/eureka/v2/apps/WebServer", a[AttrPath].AsString())
			assert.Equal(t, tt.expectedCode, a[AttrStatusCode].AsInt64())
		})
	}
}

func TestMiddleware_ContinuesIncomingTrace(t *testing.T) {
	p, recorder := newRecordingProvider(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/eureka/v2/apps", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	c := e.NewContext(req, httptest.NewRecorder())

	var inner trace.SpanContext
	err := p.Middleware()(func(c echo.Context) error {
		inner = trace.SpanContextFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext().TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent().SpanID().String())
	assert.Equal(t, spans[0].SpanContext().SpanID(), inner.SpanID())
}
