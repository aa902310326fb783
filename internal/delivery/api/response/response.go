// Package response renders Matrix-style JSON bodies.
package response

import (
	"net/http"
	"time"

	"uiagate/internal/domain/entity"
	domainerrors "uiagate/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GateResponse is returned once a gated route's flow is complete.
type GateResponse struct {
	Session   string      `json:"session"`
	Completed []string    `json:"completed"`
	Flow      entity.Flow `json:"flow"`
}

// RegistrationToken mirrors the homeserver admin API representation.
type RegistrationToken struct {
	Token       string `json:"token"`
	UsesAllowed int    `json:"uses_allowed"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   int64  `json:"created_ts"`
	ExpiryTime  *int64 `json:"expiry_time"`
}

// NewRegistrationToken converts a domain token into its response body.
func NewRegistrationToken(token *entity.RegistrationToken) RegistrationToken {
	body := RegistrationToken{
		Token:       token.Token,
		UsesAllowed: token.Slots,
		CreatedBy:   token.CreatedBy,
		CreatedAt:   token.CreatedAt.UnixMilli(),
	}
	if token.ExpiresAt != nil {
		ms := token.ExpiresAt.UnixMilli()
		body.ExpiryTime = &ms
	}

	return body
}

// Success writes data as JSON.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Empty writes the conventional empty JSON object.
func Empty(c echo.Context) error {
	return c.JSON(http.StatusOK, struct{}{})
}

// Challenge writes the 401 body that drives the client through the flows.
func Challenge(c echo.Context, challenge *entity.Challenge) error {
	return c.JSON(http.StatusUnauthorized, challenge)
}

// Error writes the Matrix error body.
func Error(c echo.Context, statusCode int, errorCode string, message string, retryAfter time.Duration) error {
	body := domainerrors.Response{
		ErrCode: errorCode,
		Error:   message,
	}
	if retryAfter > 0 {
		body.RetryAfterMs = retryAfter.Milliseconds()
	}

	return c.JSON(statusCode, body)
}

// BadJSON returns a 400 M_BAD_JSON error
func BadJSON(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.CodeBadJSON, message, 0)
}

// InvalidParam returns a 400 M_INVALID_PARAM error
func InvalidParam(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.CodeInvalidParam, message, 0)
}

// HandleAppError renders application errors and hands everything else to the
// centralized error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var retryAfter time.Duration
		var retry domainerrors.RetryAfter
		if errors.As(err, &retry) {
			retryAfter = retry.RetryAfter()
		}

		message := appErr.Message()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			message = "Internal server error"
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), message, retryAfter)
	}

	return errors.WithStack(err)
}
