package errors

import (
	stderrors "errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithMessageKeepsIdentity(t *testing.T) {
	err := ErrForbidden.WithMessage("Authentication failed for type %s", "m.login.dummy")

	assert.Equal(t, "Authentication failed for type m.login.dummy", err.Message())
	assert.Equal(t, http.StatusForbidden, err.HTTPCode())
	assert.True(t, stderrors.Is(err, ErrForbidden))
	assert.False(t, stderrors.Is(err, ErrInvalidParam))
}

func TestBaseError_WrapMessageStillAppError(t *testing.T) {
	wrapped := ErrBadJSON.WrapMessage("decode auth")

	var appErr AppError
	require.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, CodeBadJSON, appErr.ErrorCode())
}

func TestStageNotAdvertised_ForbiddenWithInvalidParamCode(t *testing.T) {
	err := ErrStageNotAdvertised.WithMessage("Invalid auth type %s", "m.login.terms")

	assert.Equal(t, http.StatusForbidden, err.HTTPCode())
	assert.Equal(t, CodeInvalidParam, err.ErrorCode())
	assert.False(t, stderrors.Is(err, ErrInvalidParam))
}

func TestPendingError(t *testing.T) {
	err := NewPendingError(90 * time.Second)

	assert.Equal(t, http.StatusForbidden, err.HTTPCode())
	assert.Equal(t, CodeInvalidUsername, err.ErrorCode())
	assert.Equal(t, "Username is pending. Try again in 90 seconds.", err.Message())
	assert.Equal(t, 90*time.Second, err.RetryAfter())

	assert.Equal(t, time.Duration(0), NewPendingError(-time.Second).RetryAfter())
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "claim username")

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, CodeUnknown, err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
}
