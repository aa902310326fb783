// Package handler contains the echo handlers of the API delivery.
package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"uiagate/internal/delivery/api/middleware"
	"uiagate/internal/delivery/api/response"
	deliverycontext "uiagate/internal/delivery/context"
	"uiagate/internal/domain/entity"
	"uiagate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UIAHandlerParams holds dependencies for UIAHandler, injected by Fx.
type UIAHandlerParams struct {
	fx.In

	UIAUC  usecase.UIAUsecase
	Logger *slog.Logger
}

// UIAHandler serves the gated routes and the post-authentication callbacks.
type UIAHandler struct {
	uiaUC  usecase.UIAUsecase
	logger *slog.Logger
}

// NewUIAHandler is the constructor for UIAHandler
func NewUIAHandler(params UIAHandlerParams) *UIAHandler {
	return &UIAHandler{
		uiaUC:  params.UIAUC,
		logger: params.Logger,
	}
}

// Gate returns the handler guarding route. It answers 401 with a challenge
// until one of the route's flows is complete.
func (h *UIAHandler) Gate(route entity.Route) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return errors.Wrap(err, "failed to read request body")
		}

		userID, _ := middleware.GetUserID(c)
		out, err := h.uiaUC.Handle(c.Request().Context(), &usecase.HandleInput{
			Route:  route,
			Body:   body,
			UserID: userID,
		})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		if !out.Complete {
			return response.Challenge(c, out.Challenge)
		}

		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("UIA gate passed",
			slog.String("route", route.Key()),
			slog.String("session", out.SessionID),
		)

		return response.Success(c, http.StatusOK, response.GateResponse{
			Session:   out.SessionID,
			Completed: out.Completed,
			Flow:      out.Flow,
		})
	}
}

// Finish runs the post-authentication hooks of a completed session.
func (h *UIAHandler) Finish(c echo.Context) error {
	var req usecase.FinishInput
	if err := c.Bind(&req); err != nil {
		return response.BadJSON(c, "Could not parse request")
	}

	if err := c.Validate(&req); err != nil {
		return response.InvalidParam(c, err.Error())
	}

	if err := h.uiaUC.Finish(c.Request().Context(), &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Empty(c)
}

// Unenroll tells every stage that a user account is gone.
func (h *UIAHandler) Unenroll(c echo.Context) error {
	userID, err := url.PathUnescape(c.Param("user_id"))
	if err != nil || userID == "" {
		return response.InvalidParam(c, "Invalid user id")
	}

	if err := h.uiaUC.Unenroll(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Empty(c)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
