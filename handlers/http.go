// Package handlers contains the http handlers of the legacy v1 query API.
package handlers

import (
	"fmt"
	"net/http"

	"mylegacyregistry/domain"
	"mylegacyregistry/helpers"
	"mylegacyregistry/interfaces"
	"mylegacyregistry/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface on top of the registry view.
type HTTPServer struct {
	view   interfaces.RegistryView
	logger log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(view interfaces.RegistryView, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		view:   helpers.NilPanic(view, "handlers.http.go: view is required"),
		logger: logger,
	}
}

// GetApplications (GET {root}/apps) returns the full snapshot with its hash code.
func (h *HTTPServer) GetApplications(ectx echo.Context) error {
	apps, err := h.view.FullSnapshot(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("getApplications failed to read full snapshot, err: %w", err)
	}

	return h.respond(ectx, apps)
}

// GetApplicationsDelta (GET {root}/apps/delta) returns the instances changed by the latest refresh.
func (h *HTTPServer) GetApplicationsDelta(ectx echo.Context) error {
	delta, err := h.view.DeltaSnapshot(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("getApplicationsDelta failed to read delta snapshot, err: %w", err)
	}

	return h.respond(ectx, delta)
}

// GetApplicationInstance (GET {root}/apps/{appName}/{instanceId}) returns 404 unless both match.
func (h *HTTPServer) GetApplicationInstance(ectx echo.Context, appName string, instanceID string) error {
	instance, err := h.view.ByApplicationAndInstanceID(ectx.Request().Context(), appName, instanceID)
	if err != nil {
		return fmt.Errorf("getApplicationInstance failed to read instance, err: %w", err)
	}

	return h.respond(ectx, instance)
}

func (h *HTTPServer) GetApplication(ectx echo.Context, appName string) error {
	app, err := h.view.ByApplicationName(ectx.Request().Context(), appName)
	if err != nil {
		return fmt.Errorf("getApplication failed to read application, err: %w", err)
	}

	return h.respond(ectx, app)
}

func (h *HTTPServer) GetApplicationsByVIP(ectx echo.Context, vip string) error {
	apps, err := h.view.ByVIP(ectx.Request().Context(), vip)
	if err != nil {
		return fmt.Errorf("getApplicationsByVIP failed to read applications, err: %w", err)
	}

	return h.respond(ectx, apps)
}

func (h *HTTPServer) GetApplicationsBySecureVIP(ectx echo.Context, secureVIP string) error {
	apps, err := h.view.BySecureVIP(ectx.Request().Context(), secureVIP)
	if err != nil {
		return fmt.Errorf("getApplicationsBySecureVIP failed to read applications, err: %w", err)
	}

	return h.respond(ectx, apps)
}

func (h *HTTPServer) GetInstance(ectx echo.Context, instanceID string) error {
	instance, err := h.view.ByInstanceID(ectx.Request().Context(), instanceID)
	if err != nil {
		return fmt.Errorf("getInstance failed to read instance, err: %w", err)
	}

	return h.respond(ectx, instance)
}

// respond serializes payload in the negotiated media type and writes it in one piece.
func (h *HTTPServer) respond(ectx echo.Context, payload any) error {
	mediaType, ok := ectx.Get(service.ContextKeyMediaType).(domain.MediaType)
	if !ok {
		return service.NewInternalServerError("response media type was not negotiated", nil)
	}

	body, err := service.Encode(mediaType, payload)
	if err != nil {
		return service.NewInternalServerError("can't serialize response", err)
	}

	// Abandon the response when the client went away while the body was being built.
	if err := ectx.Request().Context().Err(); err != nil {
		return err
	}

	level.Debug(h.logger).Log("msg", "responding", "media_type", mediaType, "bytes", len(body))
	return ectx.Blob(http.StatusOK, string(mediaType), body)
}
