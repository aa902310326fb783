package repository

import (
	"context"
	"errors"
	"time"

	"uiagate/internal/domain/entity"
)

// ErrUsernameNotFound is returned when no reservation row exists for a username.
var ErrUsernameNotFound = errors.New("username reservation not found")

// ClaimPendingInput describes a conditional refresh of a pending reservation.
// The update applies only while the row is still pending and either owned by
// one of ResumeTokens or untouched since StaleBefore.
type ClaimPendingInput struct {
	Username     string
	Owner        string    // Owner written on success.
	ResumeTokens []string  // Tokens that identify the current claimant.
	StaleBefore  time.Time // Claims last touched at or before this instant are reclaimable.
	Now          time.Time
}

// UsernameRepository arbitrates username reservations. Every state change is a
// single conditional statement; the boolean results report whether this
// caller's write took effect.
type UsernameRepository interface {
	// FindByUsername returns ErrUsernameNotFound when no row exists.
	FindByUsername(ctx context.Context, username string) (*entity.UsernameReservation, error)

	// CreatePending inserts a pending row. created is false when the username
	// already has a row.
	CreatePending(ctx context.Context, reservation *entity.UsernameReservation) (created bool, err error)

	// ClaimPending refreshes or takes over a pending row per ClaimPendingInput.
	ClaimPending(ctx context.Context, input ClaimPendingInput) (claimed bool, err error)

	// MarkEnrolled finalizes a pending row owned by one of owners.
	MarkEnrolled(ctx context.Context, username string, owners []string, now time.Time) (enrolled bool, err error)
}
