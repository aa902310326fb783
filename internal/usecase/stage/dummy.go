package stage

import (
	"context"

	"uiagate/internal/domain/entity"
	"uiagate/internal/domain/service"
)

// dummyChecker implements m.login.dummy, a stage that always passes.
type dummyChecker struct {
	noHooks
}

// NewDummyChecker creates the m.login.dummy checker.
func NewDummyChecker() service.AuthChecker {
	return &dummyChecker{}
}

func (c *dummyChecker) SupportedAuthTypes() []string {
	return []string{entity.StageDummy}
}

func (c *dummyChecker) Params(context.Context, service.StageRequest) (map[string]any, error) {
	return nil, nil
}

func (c *dummyChecker) Check(context.Context, service.StageRequest) (bool, error) {
	return true, nil
}

func (c *dummyChecker) IsUserEnrolled(context.Context, string, string) (bool, error) {
	return true, nil
}

func (c *dummyChecker) IsRequired(context.Context, string, string) (bool, error) {
	return true, nil
}
