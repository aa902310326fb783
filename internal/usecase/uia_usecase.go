// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"encoding/json"

	"uiagate/internal/domain/entity"
)

// HandleInput is one HTTP exchange against a gated route.
type HandleInput struct {
	Route  entity.Route
	Body   json.RawMessage // Raw request body; may be empty.
	UserID string          // Identified caller, empty when anonymous.
}

// HandleOutput is either a challenge for the client or a passed gate.
type HandleOutput struct {
	SessionID string
	Complete  bool
	Flow      entity.Flow       // The satisfied flow when Complete.
	Completed []string          // Stages completed in this session, sorted.
	Challenge *entity.Challenge // Set when the client must submit more stages.
}

// FinishKind selects which post-authentication hook runs.
type FinishKind string

const (
	FinishEnrolled FinishKind = "enrolled"
	FinishLoggedIn FinishKind = "logged_in"
	FinishSuccess  FinishKind = "success"
)

// FinishInput reports the outcome of the protected operation for a session.
type FinishInput struct {
	SessionID string     `json:"session" validate:"required"`
	UserID    string     `json:"user_id" validate:"required"`
	Kind      FinishKind `json:"kind" validate:"required,oneof=enrolled logged_in success"`
}

// UIAUsecase drives the user-interactive authentication gate.
type UIAUsecase interface {
	// Handle starts a session or applies one stage submission.
	Handle(ctx context.Context, input *HandleInput) (*HandleOutput, error)

	// Finish runs the post-authentication hook of every stage the session
	// completed, atomically. The session must have passed the gate, and it can
	// be finished once.
	Finish(ctx context.Context, input *FinishInput) error

	// Unenroll tells every stage the user is gone.
	Unenroll(ctx context.Context, userID string) error
}
