package service

import "context"

// Session is the server-side state of one UIA attempt. Reads and writes of a
// single key are atomic; nothing is atomic across keys.
type Session interface {
	ID() string

	// GetData returns the value stored under key and whether it was present.
	GetData(ctx context.Context, key string) (string, bool, error)
	SetData(ctx context.Context, key, value string) error

	// SetDataIfAbsent stores value only when key is unset and reports whether
	// this call stored it. Concurrent callers see exactly one winner.
	SetDataIfAbsent(ctx context.Context, key, value string) (bool, error)
	DeleteData(ctx context.Context, key string) error

	// CompletedStages returns the stages completed so far, in no particular order.
	CompletedStages(ctx context.Context) ([]string, error)

	// MarkCompleted adds stage to the completed set. Concurrent calls for
	// different stages never lose each other's update.
	MarkCompleted(ctx context.Context, stage string) error
}

// SessionStore hands out sessions by id, creating empty ones on first access.
type SessionStore interface {
	Connect(ctx context.Context, sessionID string) (Session, error)
}
