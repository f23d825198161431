package handlers

import (
	"fmt"
	"strings"

	"mylegacyregistry/domain"
	"mylegacyregistry/helpers"
	"mylegacyregistry/interfaces"
	"mylegacyregistry/service"

	"github.com/labstack/echo/v4"
)

// ServerInterface represents all server handlers of the v1 query API.
type ServerInterface interface {
	// GetApplications (GET {root}/apps)
	GetApplications(ctx echo.Context) error
	// GetApplicationsDelta (GET {root}/apps/delta)
	GetApplicationsDelta(ctx echo.Context) error
	// GetApplicationInstance (GET {root}/apps/{appName}/{instanceId})
	GetApplicationInstance(ctx echo.Context, appName string, instanceID string) error
	// GetApplication (GET {root}/apps/{appName})
	GetApplication(ctx echo.Context, appName string) error
	// GetApplicationsByVIP (GET {root}/vips/{vip})
	GetApplicationsByVIP(ctx echo.Context, vip string) error
	// GetApplicationsBySecureVIP (GET {root}/svips/{secureVip})
	GetApplicationsBySecureVIP(ctx echo.Context, secureVIP string) error
	// GetInstance (GET {root}/instances/{instanceId})
	GetInstance(ctx echo.Context, instanceID string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
// It routes the path, negotiates the response media type and only then dispatches, so a request
// with an unacceptable Accept header never reaches the registry.
type ServerInterfaceWrapper struct {
	Handler    ServerInterface
	Routes     interfaces.RouteMatcher
	Negotiator interfaces.Negotiator
}

// Query serves every GET below the v1 root.
func (w *ServerInterfaceWrapper) Query(ctx echo.Context) error {
	query, err := w.Routes.Match(ctx.Request().URL.EscapedPath())
	if err != nil {
		return err
	}
	ctx.Set(service.ContextKeyOperation, query.Operation)

	mediaType, err := w.Negotiator.Negotiate(ctx.Request().Header.Get(echo.HeaderAccept))
	if err != nil {
		return err
	}
	ctx.Set(service.ContextKeyMediaType, mediaType)

	switch query.Operation {
	case domain.OperationApplications:
		return w.Handler.GetApplications(ctx)
	case domain.OperationApplicationsDelta:
		return w.Handler.GetApplicationsDelta(ctx)
	case domain.OperationApplicationInstance:
		return w.Handler.GetApplicationInstance(ctx, query.AppName, query.InstanceID)
	case domain.OperationApplication:
		return w.Handler.GetApplication(ctx, query.AppName)
	case domain.OperationApplicationsByVIP:
		return w.Handler.GetApplicationsByVIP(ctx, query.VIP)
	case domain.OperationApplicationsBySecureVIP:
		return w.Handler.GetApplicationsBySecureVIP(ctx, query.VIP)
	case domain.OperationInstance:
		return w.Handler.GetInstance(ctx, query.InstanceID)
	default:
		return service.NewInternalServerError("unroutable operation", fmt.Errorf("operation %q has no handler", query.Operation))
	}
}

// EchoRouter is the part of *echo.Echo and *echo.Group the handlers are registered on.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL registers the v1 query API below baseURL with optional route middleware.
// Panics on missing collaborators.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, routes interfaces.RouteMatcher, negotiator interfaces.Negotiator, baseURL string, m ...echo.MiddlewareFunc) {
	wrapper := &ServerInterfaceWrapper{
		Handler:    helpers.NilPanic(si, "handlers.server.go: server is required"),
		Routes:     helpers.NilPanic(routes, "handlers.server.go: routes is required"),
		Negotiator: helpers.NilPanic(negotiator, "handlers.server.go: negotiator is required"),
	}

	router.GET(strings.TrimSuffix(baseURL, "/")+"/*", wrapper.Query, m...)
}
