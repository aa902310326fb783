// Package stage contains the AuthChecker implementations behind each UIA
// stage identifier. Checkers are shared by every request and keep no
// per-request state of their own; anything a stage needs to remember lives in
// the session data bag.
package stage

import (
	"context"

	"uiagate/internal/domain/service"
)

// noHooks provides no-op post-authentication hooks for stages that have
// nothing to persist once the user is known.
type noHooks struct{}

func (noHooks) OnSuccess(context.Context, service.StageRequest, string) error  { return nil }
func (noHooks) OnLoggedIn(context.Context, service.StageRequest, string) error { return nil }
func (noHooks) OnEnrolled(context.Context, service.StageRequest, string) error { return nil }
func (noHooks) OnUnenrolled(context.Context, string) error                     { return nil }

// authType is the part of every submission each stage double-checks.
type authType struct {
	Type string `json:"type"`
}
