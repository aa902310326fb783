package usecase

import (
	"context"
	"time"

	"uiagate/internal/domain/entity"
)

// MintRegistrationTokenInput describes a new invitation token.
type MintRegistrationTokenInput struct {
	CreatedBy string
	Token     string // Empty means generate one.
	Slots     int    // Zero means the configured default.
	ExpiresAt *time.Time
}

// RegistrationTokenUsecase manages invitation tokens for the registration stage.
type RegistrationTokenUsecase interface {
	Mint(ctx context.Context, input *MintRegistrationTokenInput) (*entity.RegistrationToken, error)
	Get(ctx context.Context, token string) (*entity.RegistrationToken, error)
}
