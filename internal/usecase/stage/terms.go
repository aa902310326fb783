package stage

import (
	"context"
	"log/slog"
	"time"

	"uiagate/config"
	deliverycontext "uiagate/internal/delivery/context"
	"uiagate/internal/domain/entity"
	domainerrors "uiagate/internal/domain/errors"
	"uiagate/internal/domain/repository"
	"uiagate/internal/domain/service"
	"uiagate/internal/errors"
)

// termsChecker implements m.login.terms. Submitting the stage is the act of
// accepting every configured policy.
type termsChecker struct {
	policies  []entity.Policy
	termsRepo repository.AcceptedTermsRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewTermsChecker creates the m.login.terms checker for the configured policies.
func NewTermsChecker(cfg *config.Config, termsRepo repository.AcceptedTermsRepository, logger *slog.Logger) service.AuthChecker {
	return newTermsChecker(policiesFromConfig(cfg.UIA.Terms.Policies), termsRepo, logger)
}

func newTermsChecker(policies []entity.Policy, termsRepo repository.AcceptedTermsRepository, logger *slog.Logger) *termsChecker {
	return &termsChecker{
		policies:  policies,
		termsRepo: termsRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func policiesFromConfig(cfgs []config.PolicyConfig) []entity.Policy {
	policies := make([]entity.Policy, 0, len(cfgs))
	for _, p := range cfgs {
		policy := entity.Policy{Name: p.Name, Version: p.Version}
		if p.EN != nil {
			policy.EN = &entity.LocalizedPolicy{
				Name:        p.EN.Name,
				URL:         p.EN.URL,
				MarkdownURL: p.EN.MarkdownURL,
			}
		}
		policies = append(policies, policy)
	}

	return policies
}

func (c *termsChecker) SupportedAuthTypes() []string {
	return []string{entity.StageTerms}
}

// Params hands the client the full policy list so it can render the documents.
func (c *termsChecker) Params(context.Context, service.StageRequest) (map[string]any, error) {
	return map[string]any{"policies": c.policies}, nil
}

func (c *termsChecker) Check(_ context.Context, req service.StageRequest) (bool, error) {
	var auth authType
	if err := req.Decode(&auth); err != nil || auth.Type != entity.StageTerms {
		return false, domainerrors.ErrBadJSON.WithMessage("Couldn't parse %s request", entity.StageTerms)
	}

	return true, nil
}

// OnSuccess records acceptance of the current version of every policy.
func (c *termsChecker) OnSuccess(ctx context.Context, _ service.StageRequest, userID string) error {
	if len(c.policies) == 0 {
		return nil
	}

	now := c.now()
	records := make([]*entity.AcceptedTerms, 0, len(c.policies))
	for _, p := range c.policies {
		records = append(records, &entity.AcceptedTerms{
			Policy:     p.Name,
			UserID:     userID,
			Version:    p.Version,
			AcceptedAt: now,
		})
	}

	if err := c.termsRepo.CreateAcceptedTerms(ctx, records); err != nil {
		return errors.Wrap(err, "failed to record accepted terms")
	}
	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("Recorded accepted terms",
		slog.String("user_id", userID),
		slog.Int("policies", len(records)),
	)

	return nil
}

func (c *termsChecker) OnLoggedIn(ctx context.Context, req service.StageRequest, userID string) error {
	return c.OnSuccess(ctx, req, userID)
}

func (c *termsChecker) OnEnrolled(ctx context.Context, req service.StageRequest, userID string) error {
	return c.OnSuccess(ctx, req, userID)
}

// OnUnenrolled is a no-op: acceptance cannot be revoked.
func (c *termsChecker) OnUnenrolled(context.Context, string) error {
	return nil
}

func (c *termsChecker) IsUserEnrolled(context.Context, string, string) (bool, error) {
	return true, nil
}

// IsRequired reports whether some policy lacks an acceptance at or above its
// configured version.
func (c *termsChecker) IsRequired(ctx context.Context, userID, _ string) (bool, error) {
	for _, p := range c.policies {
		versions, err := c.termsRepo.FindAcceptedVersions(ctx, userID, p.Name)
		if err != nil {
			return false, errors.Wrapf(err, "failed to look up acceptance of %s", p.Name)
		}

		if !acceptsVersion(versions, p.Version) {
			return true, nil
		}
	}

	return false, nil
}

func acceptsVersion(accepted []string, current string) bool {
	for _, v := range accepted {
		if entity.CompareVersions(v, current) >= 0 {
			return true
		}
	}

	return false
}
