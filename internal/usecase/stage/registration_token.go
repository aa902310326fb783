package stage

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "uiagate/internal/delivery/context"
	"uiagate/internal/domain/entity"
	domainerrors "uiagate/internal/domain/errors"
	"uiagate/internal/domain/repository"
	"uiagate/internal/domain/service"
	"uiagate/internal/errors"
)

// registrationTokenChecker implements m.login.registration_token. A token is
// only inspected during Check; the slot is spent when the account is created.
type registrationTokenChecker struct {
	noHooks

	tokenRepo repository.RegistrationTokenRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewRegistrationTokenChecker creates the m.login.registration_token checker.
func NewRegistrationTokenChecker(tokenRepo repository.RegistrationTokenRepository, logger *slog.Logger) service.AuthChecker {
	return &registrationTokenChecker{
		tokenRepo: tokenRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (c *registrationTokenChecker) SupportedAuthTypes() []string {
	return []string{entity.StageRegistrationToken}
}

func (c *registrationTokenChecker) Params(context.Context, service.StageRequest) (map[string]any, error) {
	return map[string]any{}, nil
}

func (c *registrationTokenChecker) Check(ctx context.Context, req service.StageRequest) (bool, error) {
	var auth struct {
		Token string `json:"token"`
	}
	if err := req.Decode(&auth); err != nil || auth.Token == "" {
		return false, domainerrors.ErrBadJSON.WithMessage("Couldn't parse %s request", entity.StageRegistrationToken)
	}

	token, err := c.tokenRepo.FindByToken(ctx, auth.Token)
	if errors.Is(err, repository.ErrRegistrationTokenNotFound) {
		return false, domainerrors.ErrRegistrationTokenInvalid
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find registration token")
	}

	if !token.Usable(c.now()) {
		deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("Registration token is spent or expired",
			slog.Int("slots", token.Slots),
		)

		return false, domainerrors.ErrRegistrationTokenInvalid
	}

	if err := req.Session.SetData(ctx, entity.SessionKeyRegistrationToken, token.Token); err != nil {
		return false, errors.Wrap(err, "failed to store registration token in session")
	}

	return true, nil
}

// OnEnrolled spends one slot of the token accepted earlier in the session.
func (c *registrationTokenChecker) OnEnrolled(ctx context.Context, req service.StageRequest, _ string) error {
	token, ok, err := req.Session.GetData(ctx, entity.SessionKeyRegistrationToken)
	if err != nil {
		return errors.Wrap(err, "failed to read registration token from session")
	}
	if !ok || token == "" {
		return domainerrors.ErrRegistrationTokenInvalid
	}

	consumed, err := c.tokenRepo.ConsumeSlot(ctx, token, c.now())
	if err != nil {
		return errors.Wrap(err, "failed to consume registration token")
	}
	if !consumed {
		return domainerrors.ErrRegistrationTokenInvalid.WithMessage("Registration token has no remaining uses")
	}

	return nil
}

func (c *registrationTokenChecker) IsUserEnrolled(context.Context, string, string) (bool, error) {
	return true, nil
}

// IsRequired is false: a known user has no account left to create.
func (c *registrationTokenChecker) IsRequired(context.Context, string, string) (bool, error) {
	return false, nil
}
