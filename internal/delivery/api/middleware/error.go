// Package middleware contains echo middleware specific to the API delivery.
package middleware

import (
	"log/slog"
	"net/http"

	"uiagate/internal/delivery/api/response"
	deliverycontext "uiagate/internal/delivery/context"
	domainerrors "uiagate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err), slog.String("details", appErr.Details()))
		}
		_ = response.HandleAppError(c, err)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, errorCodeForStatus(httpErr.Code), message, 0)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, domainerrors.CodeUnknown, "Internal server error", 0)
}

func errorCodeForStatus(status int) string {
	switch status {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return domainerrors.CodeUnrecognized
	case http.StatusRequestEntityTooLarge:
		return domainerrors.CodeTooLarge
	case http.StatusUnauthorized:
		return domainerrors.CodeMissingToken
	case http.StatusForbidden:
		return domainerrors.CodeForbidden
	case http.StatusBadRequest:
		return domainerrors.CodeBadJSON
	default:
		return domainerrors.CodeUnknown
	}
}
