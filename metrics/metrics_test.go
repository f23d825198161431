package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mylegacyregistry/domain"
	"mylegacyregistry/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	return NewWithRegistry(registry, registry)
}

func TestObserveRefresh(t *testing.T) {
	m := newTestMetrics()

	m.ObserveRefresh(4, 2, nil)
	m.ObserveRefresh(0, 0, assert.AnError)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshesTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshesTotal.WithLabelValues("error")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.RegistryInstances))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DeltaInstances))
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name              string
		handler           echo.HandlerFunc
		expectedOperation string
		expectedStatus    string
		expectedCode      int
	}{
		{
			name: "success",
			handler: func(c echo.Context) error {
				c.Set(service.ContextKeyOperation, domain.OperationApplications)
				return c.NoContent(http.StatusOK)
			},
			expectedOperation: "applications",
			expectedStatus:    "200",
			expectedCode:      http.StatusOK,
		},
		{
			name: "handler error is rendered",
			handler: func(c echo.Context) error {
				c.Set(service.ContextKeyOperation, domain.OperationInstance)
				return service.NewEntityNotFoundError("instance not found", nil)
			},
			expectedOperation: "instance",
			expectedStatus:    "404",
			expectedCode:      http.StatusNotFound,
		},
		{
			name: "unrouted",
			handler: func(c echo.Context) error {
				return service.NewEntityNotFoundError("resource not found", nil)
			},
			expectedOperation: OperationUnrouted,
			expectedStatus:    "404",
			expectedCode:      http.StatusNotFound,
		},
		{
			name: "abandoned",
			handler: func(c echo.Context) error {
				c.Set(service.ContextKeyOperation, domain.OperationApplicationsDelta)
				return context.Canceled
			},
			expectedOperation: "applications_delta",
			expectedStatus:    StatusAbandoned,
			expectedCode:      http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMetrics()
			e := echo.New()
			e.HTTPErrorHandler = func(err error, c echo.Context) {
				if service.IsEntityNotFoundError(err) {
					_ = c.NoContent(http.StatusNotFound)
				}
			}

			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/eureka/v2/apps", nil), rec)
			require.NoError(t, m.Middleware()(tt.handler)(c))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(tt.expectedOperation, tt.expectedStatus)))
			assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
		})
	}
}

func TestHandler(t *testing.T) {
	m := newTestMetrics()
	m.ObserveRefresh(3, 1, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "legacy_registry_instances 3"))
}
