package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mylegacyregistry/domain"
	"mylegacyregistry/interfaces/mock"
	"mylegacyregistry/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServer remembers which operation was dispatched with which parameters.
type recordingServer struct {
	called string
	args   []string
}

func (s *recordingServer) record(op string, args ...string) error {
	s.called, s.args = op, args
	return nil
}

func (s *recordingServer) GetApplications(ctx echo.Context) error {
	return s.record("GetApplications")
}

func (s *recordingServer) GetApplicationsDelta(ctx echo.Context) error {
	return s.record("GetApplicationsDelta")
}

func (s *recordingServer) GetApplicationInstance(ctx echo.Context, appName string, instanceID string) error {
	return s.record("GetApplicationInstance", appName, instanceID)
}

func (s *recordingServer) GetApplication(ctx echo.Context, appName string) error {
	return s.record("GetApplication", appName)
}

func (s *recordingServer) GetApplicationsByVIP(ctx echo.Context, vip string) error {
	return s.record("GetApplicationsByVIP", vip)
}

func (s *recordingServer) GetApplicationsBySecureVIP(ctx echo.Context, secureVIP string) error {
	return s.record("GetApplicationsBySecureVIP", secureVIP)
}

func (s *recordingServer) GetInstance(ctx echo.Context, instanceID string) error {
	return s.record("GetInstance", instanceID)
}

func TestServerInterfaceWrapper_Dispatch(t *testing.T) {
	tests := []struct {
		query        domain.Query
		expectedCall string
		expectedArgs []string
	}{
		{query: domain.Query{Operation: domain.OperationApplications}, expectedCall: "GetApplications"},
		{query: domain.Query{Operation: domain.OperationApplicationsDelta}, expectedCall: "GetApplicationsDelta"},
		{query: domain.Query{Operation: domain.OperationApplicationInstance, AppName: "WebServer", InstanceID: "i-1"}, expectedCall: "GetApplicationInstance", expectedArgs: []string{"WebServer", "i-1"}},
		{query: domain.Query{Operation: domain.OperationApplication, AppName: "WebServer"}, expectedCall: "GetApplication", expectedArgs: []string{"WebServer"}},
		{query: domain.Query{Operation: domain.OperationApplicationsByVIP, VIP: "web.vip"}, expectedCall: "GetApplicationsByVIP", expectedArgs: []string{"web.vip"}},
		{query: domain.Query{Operation: domain.OperationApplicationsBySecureVIP, VIP: "secure.vip"}, expectedCall: "GetApplicationsBySecureVIP", expectedArgs: []string{"secure.vip"}},
		{query: domain.Query{Operation: domain.OperationInstance, InstanceID: "i-1"}, expectedCall: "GetInstance", expectedArgs: []string{"i-1"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.query.Operation), func(t *testing.T) {
			server := &recordingServer{}
			routes := &mock.RouteMatcherMock{
				MatchFunc: func(escapedPath string) (domain.Query, error) { return tt.query, nil },
			}
			negotiator := &mock.NegotiatorMock{
				NegotiateFunc: func(accept string) (domain.MediaType, error) { return domain.MediaTypeXML, nil },
			}
			w := &ServerInterfaceWrapper{Handler: server, Routes: routes, Negotiator: negotiator}

			req := httptest.NewRequest(http.MethodGet, "/eureka/v2/anything", nil)
			req.Header.Set(echo.HeaderAccept, "application/xml")
			c := echo.New().NewContext(req, httptest.NewRecorder())

			require.NoError(t, w.Query(c))
			assert.Equal(t, tt.expectedCall, server.called)
			assert.Equal(t, tt.expectedArgs, server.args)
			assert.Equal(t, tt.query.Operation, c.Get(service.ContextKeyOperation))
			assert.Equal(t, domain.MediaTypeXML, c.Get(service.ContextKeyMediaType))

			require.Len(t, routes.MatchCalls(), 1)
			assert.Equal(t, "/eureka/v2/anything", routes.MatchCalls()[0].EscapedPath)
			require.Len(t, negotiator.NegotiateCalls(), 1)
			assert.Equal(t, "application/xml", negotiator.NegotiateCalls()[0].Accept)
		})
	}
}

func TestServerInterfaceWrapper_Order(t *testing.T) {
	t.Run("route failure skips negotiation", func(t *testing.T) {
		server := &recordingServer{}
		negotiator := &mock.NegotiatorMock{}
		w := &ServerInterfaceWrapper{
			Handler: server,
			Routes: &mock.RouteMatcherMock{
				MatchFunc: func(escapedPath string) (domain.Query, error) {
					return domain.Query{}, service.NewEntityNotFoundError("no v1 resource", nil)
				},
			},
			Negotiator: negotiator,
		}
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/eureka/v2/peers", nil), httptest.NewRecorder())

		err := w.Query(c)
		assert.True(t, service.IsEntityNotFoundError(err))
		assert.Empty(t, negotiator.NegotiateCalls())
		assert.Empty(t, server.called)
		assert.Nil(t, c.Get(service.ContextKeyOperation))
	})

	t.Run("negotiation failure skips the handler", func(t *testing.T) {
		server := &recordingServer{}
		w := &ServerInterfaceWrapper{
			Handler: server,
			Routes: &mock.RouteMatcherMock{
				MatchFunc: func(escapedPath string) (domain.Query, error) {
					return domain.Query{Operation: domain.OperationApplications}, nil
				},
			},
			Negotiator: &mock.NegotiatorMock{
				NegotiateFunc: func(accept string) (domain.MediaType, error) {
					return "", service.NewUnsupportedMediaTypeError("unsupported Accept", nil)
				},
			},
		}
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/eureka/v2/apps", nil), httptest.NewRecorder())

		err := w.Query(c)
		assert.True(t, service.IsUnsupportedMediaTypeError(err))
		assert.Empty(t, server.called)
		assert.Equal(t, domain.OperationApplications, c.Get(service.ContextKeyOperation))
		assert.Nil(t, c.Get(service.ContextKeyMediaType))
	})

	t.Run("unknown operation", func(t *testing.T) {
		w := &ServerInterfaceWrapper{
			Handler: &recordingServer{},
			Routes: &mock.RouteMatcherMock{
				MatchFunc: func(escapedPath string) (domain.Query, error) {
					return domain.Query{Operation: "register"}, nil
				},
			},
			Negotiator: &mock.NegotiatorMock{
				NegotiateFunc: func(accept string) (domain.MediaType, error) { return domain.MediaTypeJSON, nil },
			},
		}
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/eureka/v2/apps", nil), httptest.NewRecorder())

		assert.True(t, service.IsInternalServerError(w.Query(c)))
	})
}
