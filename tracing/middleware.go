package tracing

import (
	"net/http"

	"mylegacyregistry/domain"
	"mylegacyregistry/service"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	SpanPrefixRequest = "v1."

	AttrOperation  = "legacy.operation"
	AttrMethod     = "http.request.method"
	AttrPath       = "url.path"
	AttrStatusCode = "http.response.status_code"
	AttrRequestID  = "http.request.id"
)

// Middleware starts a server span per request, continuing the caller's trace when the request
// carries a traceparent header. The span is named after the routed operation.
func (p *Provider) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := otel.GetTextMapPropagator().Extract(req.Context(), propagation.HeaderCarrier(req.Header))
			ctx, span := p.tracer.Start(ctx, SpanPrefixRequest+"request",
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String(AttrMethod, req.Method),
					attribute.String(AttrPath, req.URL.EscapedPath()),
				),
			)
			defer span.End()
			c.SetRequest(req.WithContext(ctx))

			err := next(c)

			if op, ok := c.Get(service.ContextKeyOperation).(domain.Operation); ok {
				span.SetName(SpanPrefixRequest + string(op))
				span.SetAttributes(attribute.String(AttrOperation, string(op)))
			}
			if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
				span.SetAttributes(attribute.String(AttrRequestID, id))
			}

			switch {
			case err != nil:
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			case !c.Response().Committed:
				span.SetStatus(codes.Error, "response abandoned")
			default:
				status := c.Response().Status
				span.SetAttributes(attribute.Int(AttrStatusCode, status))
				if status >= http.StatusInternalServerError {
					span.SetStatus(codes.Error, http.StatusText(status))
				}
			}
			return err
		}
	}
}
