package service

import (
	"context"
	"errors"
	"net/http"

	"mylegacyregistry/domain"
	"mylegacyregistry/interfaces"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// Keys of the values the v1 query wrapper stores in the echo context.
const (
	ContextKeyOperation = "v1.operation"
	ContextKeyMediaType = "v1.media_type"
)

// RegisterErrorHandler register custom error handler.
func RegisterErrorHandler(e *echo.Echo, negotiator interfaces.Negotiator, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), negotiator, logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	var errorCodeToStatusCodeMaps = make(map[string]int)
	errorCodeToStatusCodeMaps[ErrBadParameter] = http.StatusBadRequest
	errorCodeToStatusCodeMaps[ErrEntityNotFound] = http.StatusNotFound
	errorCodeToStatusCodeMaps[ErrUnsupportedMediaType] = http.StatusNotAcceptable
	errorCodeToStatusCodeMaps[ErrInternalServerError] = http.StatusInternalServerError

	return errorCodeToStatusCodeMaps
}

// HTTPErrorHandler is an error handler. It is the single place a failed request turns into a response.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	negotiator                   interfaces.Negotiator
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
// The negotiator picks the error body format when the request failed before negotiation.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, negotiator interfaces.Negotiator, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		negotiator:                   negotiator,
		logger:                       log.WithPrefix(logger, "component", "HTTPErrorHandler"),
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]
	if ok {
		return status
	}

	return http.StatusInternalServerError
}

func (h *HTTPErrorHandler) getErrorCode(statusCode int) string {
	for code, status := range h.errorCodeToHTTPStatusCodeMap {
		if status == statusCode {
			return code
		}
	}

	return ErrInternalServerError
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	req := c.Request()
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	// The client is gone: nothing was written and nothing will be.
	if errors.Is(err, context.Canceled) || errors.Is(req.Context().Err(), context.Canceled) {
		level.Debug(h.logger).Log(
			"msg", "request cancelled, response abandoned",
			"request_id", requestID,
			"path", req.URL.EscapedPath(),
		)
		return
	}

	myErr := ToMyError(err)
	if myErr == nil {
		myErr = NewMyError(ErrInternalServerError, "an internal server error has occurred", err)
	}

	var statusCode int
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			if herr, ok := he.Internal.(*echo.HTTPError); ok {
				he = herr
			}
		}
		codeStr := h.getErrorCode(he.Code)
		var requestError *openapi3filter.RequestError
		if errors.As(he.Internal, &requestError) {
			codeStr = ErrBadParameter
		}

		m, ok := he.Message.(string)
		if !ok {
			m = http.StatusText(he.Code)
		}
		myErr = NewMyError(codeStr, m, err)
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(myErr.Code)
	}

	logger := level.Info(h.logger)
	if statusCode >= http.StatusInternalServerError {
		logger = level.Error(h.logger)
	}
	logger.Log(
		"msg", "HTTP request error",
		"request_id", requestID,
		"method", req.Method,
		"path", req.URL.EscapedPath(),
		"status", statusCode,
		"err", err,
	)

	// Send response
	if req.Method == http.MethodHead {
		_ = c.NoContent(statusCode)
		return
	}

	mediaType := h.responseMediaType(c)
	body, encErr := Encode(mediaType, ErrResponse{Error: myErr})
	if encErr != nil {
		level.Error(h.logger).Log("msg", "can't encode error response", "err", encErr)
		_ = c.NoContent(statusCode)
		return
	}
	_ = c.Blob(statusCode, string(mediaType), body)
}

// responseMediaType returns the negotiated media type, or the one the Accept header would
// negotiate, or JSON.
func (h *HTTPErrorHandler) responseMediaType(c echo.Context) domain.MediaType {
	if mt, ok := c.Get(ContextKeyMediaType).(domain.MediaType); ok && mt != "" {
		return mt
	}
	if h.negotiator != nil {
		if mt, err := h.negotiator.Negotiate(c.Request().Header.Get(echo.HeaderAccept)); err == nil {
			return mt
		}
	}
	return domain.MediaTypeJSON
}

// ErrResponse from server.
type ErrResponse struct {
	Error *MyError `json:"error,omitempty"`
}
