package repository

import (
	"context"
	"errors"
	"time"

	"uiagate/internal/domain/entity"
)

// ErrRegistrationTokenNotFound is returned when a registration token does not exist.
var ErrRegistrationTokenNotFound = errors.New("registration token not found")

// RegistrationTokenRepository persists invitation tokens and their remaining slots.
type RegistrationTokenRepository interface {
	Create(ctx context.Context, token *entity.RegistrationToken) error

	// FindByToken returns ErrRegistrationTokenNotFound when missing.
	FindByToken(ctx context.Context, token string) (*entity.RegistrationToken, error)

	// ConsumeSlot decrements the slot count if it is still positive and the
	// token has not expired at now.
	ConsumeSlot(ctx context.Context, token string, now time.Time) (consumed bool, err error)
}
