package service

import (
	"context"
	"encoding/json"
)

// StageRequest is what a checker sees of one UIA round-trip.
type StageRequest struct {
	AuthType  string          // Stage being attempted or described.
	SessionID string          // UIA session id.
	Session   Session         // Data bag bound to SessionID.
	Auth      json.RawMessage // The submitted "auth" object; nil when computing params.
	UserID    string          // Identified caller, empty for anonymous requests.
}

// Decode unmarshals the submitted auth object into v.
func (r StageRequest) Decode(v any) error {
	return json.Unmarshal(r.Auth, v)
}

// AuthChecker implements one or more UIA stages. A single instance serves
// every request concurrently.
type AuthChecker interface {
	// SupportedAuthTypes lists the stage identifiers this checker serves.
	SupportedAuthTypes() []string

	// Params returns what the client needs to render the stage. It must not
	// change any state; it runs on every challenge.
	Params(ctx context.Context, req StageRequest) (map[string]any, error)

	// Check validates a submission. false with a nil error is a plain rejection.
	Check(ctx context.Context, req StageRequest) (bool, error)

	OnSuccess(ctx context.Context, req StageRequest, userID string) error
	OnLoggedIn(ctx context.Context, req StageRequest, userID string) error
	OnEnrolled(ctx context.Context, req StageRequest, userID string) error
	OnUnenrolled(ctx context.Context, userID string) error

	IsUserEnrolled(ctx context.Context, userID, authType string) (bool, error)

	// IsRequired reports whether an identified user must still complete the stage.
	IsRequired(ctx context.Context, userID, authType string) (bool, error)
}
