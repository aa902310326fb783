package impl

import (
	"context"
	"log/slog"
	"time"

	"uiagate/config"
	deliverycontext "uiagate/internal/delivery/context"
	"uiagate/internal/domain/entity"
	domainerrors "uiagate/internal/domain/errors"
	"uiagate/internal/domain/repository"
	"uiagate/internal/errors"
	"uiagate/internal/usecase"
)

// registrationTokenService implements the RegistrationTokenUsecase interface.
type registrationTokenService struct {
	tokenRepo    repository.RegistrationTokenRepository
	defaultSlots int
	logger       *slog.Logger
	now          func() time.Time
	newToken     func() (string, error)
}

// NewRegistrationTokenService is the constructor for registrationTokenService.
func NewRegistrationTokenService(
	cfg *config.Config,
	tokenRepo repository.RegistrationTokenRepository,
	logger *slog.Logger,
) usecase.RegistrationTokenUsecase {
	return &registrationTokenService{
		tokenRepo:    tokenRepo,
		defaultSlots: cfg.UIA.RegistrationToken.DefaultSlots,
		logger:       logger,
		now:          time.Now,
		newToken:     entity.NewRegistrationTokenID,
	}
}

func (srv *registrationTokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Mint stores a new token. An empty token gets a random one and zero slots
// fall back to the configured default.
func (srv *registrationTokenService) Mint(ctx context.Context, input *usecase.MintRegistrationTokenInput) (*entity.RegistrationToken, error) {
	now := srv.now().UTC()
	if input.ExpiresAt != nil && !input.ExpiresAt.After(now) {
		return nil, domainerrors.ErrInvalidParam.WithMessage("expiry_time must be in the future")
	}

	token := &entity.RegistrationToken{
		Token:     input.Token,
		CreatedBy: input.CreatedBy,
		Slots:     input.Slots,
		CreatedAt: now,
		ExpiresAt: input.ExpiresAt,
	}
	if token.Slots == 0 {
		token.Slots = srv.defaultSlots
	}
	if token.Token == "" {
		generated, err := srv.newToken()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate registration token")
		}
		token.Token = generated
	}

	if err := srv.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Registration token minted",
		slog.String("created_by", token.CreatedBy),
		slog.Int("slots", token.Slots),
	)

	return token, nil
}

func (srv *registrationTokenService) Get(ctx context.Context, token string) (*entity.RegistrationToken, error) {
	found, err := srv.tokenRepo.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrRegistrationTokenNotFound) {
		return nil, domainerrors.ErrNotFound.WithMessage("Registration token not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find registration token")
	}

	return found, nil
}
