package middleware

import (
	"log/slog"
	"strings"

	"uiagate/config"
	"uiagate/internal/delivery/api/response"
	deliverycontext "uiagate/internal/delivery/context"
	domainerrors "uiagate/internal/domain/errors"
	"uiagate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const keyUserID = "userID"

// IdentityMiddleware resolves bearer tokens into user ids.
type IdentityMiddleware struct {
	identity service.IdentityService
	admins   map[string]struct{}
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(identity service.IdentityService, cfg *config.Config) *IdentityMiddleware {
	admins := make(map[string]struct{})
	if cfg.Identity != nil {
		for _, admin := range cfg.Identity.Admins {
			admins[admin] = struct{}{}
		}
	}

	return &IdentityMiddleware{identity: identity, admins: admins}
}

// Identify accepts anonymous requests. A presented token must verify; the
// resulting user id is stored on the echo context and the request logger.
func (m *IdentityMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return next(c)
		}

		userID, err := m.identity.Identify(token)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if userID == "" {
			return next(c)
		}

		c.Set(keyUserID, userID)
		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", userID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// RequireAdmin must run after Identify.
func (m *IdentityMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := GetUserID(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrMissingToken)
		}
		if _, admin := m.admins[userID]; !admin {
			return response.HandleAppError(c, domainerrors.ErrForbidden.WithMessage("You are not a server admin"))
		}

		return next(c)
	}
}

// GetUserID returns the identified caller, if any.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(keyUserID).(string)

	return userID, ok && userID != ""
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return c.QueryParam("access_token")
}
