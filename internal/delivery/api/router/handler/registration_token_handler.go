package handler

import (
	"log/slog"
	"net/http"
	"time"

	"uiagate/internal/delivery/api/middleware"
	"uiagate/internal/delivery/api/response"
	"uiagate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationTokenHandlerParams holds dependencies for RegistrationTokenHandler, injected by Fx.
type RegistrationTokenHandlerParams struct {
	fx.In

	TokenUC usecase.RegistrationTokenUsecase
	Logger  *slog.Logger
}

// RegistrationTokenHandler exposes the admin API for invitation tokens.
type RegistrationTokenHandler struct {
	tokenUC usecase.RegistrationTokenUsecase
	logger  *slog.Logger
}

// NewRegistrationTokenHandler is the constructor for RegistrationTokenHandler
func NewRegistrationTokenHandler(params RegistrationTokenHandlerParams) *RegistrationTokenHandler {
	return &RegistrationTokenHandler{
		tokenUC: params.TokenUC,
		logger:  params.Logger,
	}
}

// MintRegistrationTokenRequest is the admin API body; expiry_time is in
// milliseconds since the epoch.
type MintRegistrationTokenRequest struct {
	Token       string `json:"token" validate:"omitempty,max=64,registration_token"`
	UsesAllowed int    `json:"uses_allowed" validate:"gte=0"`
	ExpiryTime  *int64 `json:"expiry_time" validate:"omitempty,gt=0"`
}

// Mint creates a registration token on behalf of the calling admin.
func (h *RegistrationTokenHandler) Mint(c echo.Context) error {
	var req MintRegistrationTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BadJSON(c, "Could not parse request")
	}

	if err := c.Validate(&req); err != nil {
		return response.InvalidParam(c, err.Error())
	}

	input := &usecase.MintRegistrationTokenInput{
		Token: req.Token,
		Slots: req.UsesAllowed,
	}
	input.CreatedBy, _ = middleware.GetUserID(c)
	if req.ExpiryTime != nil {
		expiresAt := time.UnixMilli(*req.ExpiryTime).UTC()
		input.ExpiresAt = &expiresAt
	}

	token, err := h.tokenUC.Mint(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewRegistrationToken(token))
}

// Get returns one registration token.
func (h *RegistrationTokenHandler) Get(c echo.Context) error {
	token, err := h.tokenUC.Get(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewRegistrationToken(token))
}
