package service

import (
	"errors"
	"testing"

	"mylegacyregistry/domain"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouteMatcher_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.route_matcher.go: root is required", func() {
		NewRouteMatcher("")
	})
}

func TestRouteMatcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected domain.Query
	}{
		{
			name:     "full listing",
			path:     "/eureka/v2/apps",
			expected: domain.Query{Operation: domain.OperationApplications},
		},
		{
			name:     "delta wins over an application named delta",
			path:     "/eureka/v2/apps/delta",
			expected: domain.Query{Operation: domain.OperationApplicationsDelta},
		},
		{
			name:     "instance within application",
			path:     "/eureka/v2/apps/WebServer/i-1",
			expected: domain.Query{Operation: domain.OperationApplicationInstance, AppName: "WebServer", InstanceID: "i-1"},
		},
		{
			name:     "instance within an application named delta",
			path:     "/eureka/v2/apps/delta/i-1",
			expected: domain.Query{Operation: domain.OperationApplicationInstance, AppName: "delta", InstanceID: "i-1"},
		},
		{
			name:     "single application",
			path:     "/eureka/v2/apps/WebServer",
			expected: domain.Query{Operation: domain.OperationApplication, AppName: "WebServer"},
		},
		{
			name:     "by vip",
			path:     "/eureka/v2/vips/web.vip",
			expected: domain.Query{Operation: domain.OperationApplicationsByVIP, VIP: "web.vip"},
		},
		{
			name:     "by secure vip",
			path:     "/eureka/v2/svips/web.svip",
			expected: domain.Query{Operation: domain.OperationApplicationsBySecureVIP, VIP: "web.svip"},
		},
		{
			name:     "instance by id",
			path:     "/eureka/v2/instances/i-1",
			expected: domain.Query{Operation: domain.OperationInstance, InstanceID: "i-1"},
		},
		{
			name:     "segments are percent-decoded",
			path:     "/eureka/v2/apps/Web%20Server/i%2F1",
			expected: domain.Query{Operation: domain.OperationApplicationInstance, AppName: "Web Server", InstanceID: "i/1"},
		},
		{
			name:     "names keep their case",
			path:     "/eureka/v2/apps/webserver",
			expected: domain.Query{Operation: domain.OperationApplication, AppName: "webserver"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRouteMatcher("/eureka/v2").Match(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRouteMatcher_Match_Errors(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		expectedCode string
		requestError bool
	}{
		{name: "root only", path: "/eureka/v2", expectedCode: ErrEntityNotFound},
		{name: "root with slash", path: "/eureka/v2/", expectedCode: ErrEntityNotFound},
		{name: "other root", path: "/eureka/v3/apps", expectedCode: ErrEntityNotFound},
		{name: "unknown resource", path: "/eureka/v2/peers", expectedCode: ErrEntityNotFound},
		{name: "too many segments", path: "/eureka/v2/apps/WebServer/i-1/status", expectedCode: ErrEntityNotFound},
		{name: "vips without parameter shape", path: "/eureka/v2/vips", expectedCode: ErrEntityNotFound},
		{name: "empty application", path: "/eureka/v2/apps/", expectedCode: ErrBadParameter, requestError: true},
		{name: "empty application in pair", path: "/eureka/v2/apps//i-1", expectedCode: ErrBadParameter, requestError: true},
		{name: "empty instance in pair", path: "/eureka/v2/apps/WebServer/", expectedCode: ErrBadParameter, requestError: true},
		{name: "empty vip", path: "/eureka/v2/vips/", expectedCode: ErrBadParameter, requestError: true},
		{name: "empty secure vip", path: "/eureka/v2/svips/", expectedCode: ErrBadParameter, requestError: true},
		{name: "empty instance", path: "/eureka/v2/instances/", expectedCode: ErrBadParameter, requestError: true},
		{name: "bad escape", path: "/eureka/v2/apps/Web%zzServer", expectedCode: ErrBadParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRouteMatcher("/eureka/v2").Match(tt.path)
			require.Error(t, err)
			assert.Equal(t, tt.expectedCode, ToMyErrorCode(err))

			var requestError *openapi3filter.RequestError
			assert.Equal(t, tt.requestError, errors.As(err, &requestError))
			if tt.requestError {
				require.NotNil(t, requestError.Parameter)
				assert.Equal(t, "path", requestError.Parameter.In)
			}
		})
	}
}

func TestRouteMatcher_Match_TrailingSlashInRoot(t *testing.T) {
	got, err := NewRouteMatcher("/eureka/v2/").Match("/eureka/v2/apps")
	require.NoError(t, err)
	assert.Equal(t, domain.OperationApplications, got.Operation)
}
