package stage

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"uiagate/config"
	deliverycontext "uiagate/internal/delivery/context"
	"uiagate/internal/domain/entity"
	domainerrors "uiagate/internal/domain/errors"
	"uiagate/internal/domain/lifecycle"
	"uiagate/internal/domain/repository"
	"uiagate/internal/domain/service"
	"uiagate/internal/errors"

	"go.uber.org/fx"
)

// maxClaimAttempts bounds how often one submission re-reads a reservation
// after losing a conditional write to another session.
const maxClaimAttempts = 3

// usernameChecker implements m.enroll.username: it validates the requested
// name and reserves it for the session until the account is created.
type usernameChecker struct {
	noHooks

	usernameRepo   repository.UsernameRepository
	blocklist      atomic.Pointer[Blocklist]
	pendingTimeout time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// UsernameParams defines the dependencies of the username checker.
type UsernameParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	UsernameRepo repository.UsernameRepository
	BadWordRepo  repository.BadWordRepository
	Logger       *slog.Logger
}

// NewUsernameChecker creates the m.enroll.username checker. The blocklist is
// read once when the application starts and never reloaded.
func NewUsernameChecker(params UsernameParams) service.AuthChecker {
	c := newUsernameChecker(params.UsernameRepo, params.Config.UIA.Username.PendingTimeout, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return c.loadBlocklist(ctx, params.BadWordRepo)
		},
	})

	return c
}

func newUsernameChecker(usernameRepo repository.UsernameRepository, pendingTimeout time.Duration, logger *slog.Logger) *usernameChecker {
	c := &usernameChecker{
		usernameRepo:   usernameRepo,
		pendingTimeout: pendingTimeout,
		logger:         logger,
		now:            time.Now,
	}
	c.blocklist.Store(NewBlocklist(nil))

	return c
}

func (c *usernameChecker) loadBlocklist(ctx context.Context, badWordRepo repository.BadWordRepository) error {
	words, err := badWordRepo.ListBadWords(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load username blocklist")
	}

	blocklist := NewBlocklist(words)
	c.blocklist.Store(blocklist)
	c.logger.Info("Loaded username blocklist", slog.Int("words", blocklist.Len()))

	return nil
}

func (c *usernameChecker) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func (c *usernameChecker) SupportedAuthTypes() []string {
	return []string{entity.StageEnrollUsername}
}

func (c *usernameChecker) Params(context.Context, service.StageRequest) (map[string]any, error) {
	return map[string]any{}, nil
}

// Check validates the username and reserves it for this session. On success
// the name is stored in the session under "username" for later stages.
func (c *usernameChecker) Check(ctx context.Context, req service.StageRequest) (bool, error) {
	var auth struct {
		Username *string `json:"username"`
	}
	if err := req.Decode(&auth); err != nil || auth.Username == nil {
		return false, domainerrors.ErrBadJSON.WithMessage("Couldn't parse %s request", entity.StageEnrollUsername)
	}

	username := strings.ToLower(*auth.Username)
	logger := c.log(ctx).With(slog.String("username", username), slog.String("session", req.SessionID))

	if rule, err := validateUsername(username, c.blocklist.Load()); err != nil {
		logger.Debug("Rejected username", slog.String("rule", rule))

		return false, err
	}

	email, _, err := req.Session.GetData(ctx, entity.SessionKeyVerifiedEmail)
	if err != nil {
		return false, errors.Wrap(err, "failed to read verified email from session")
	}

	if err := c.reserve(ctx, logger, username, req.SessionID, email); err != nil {
		return false, err
	}

	if err := req.Session.SetData(ctx, entity.SessionKeyUsername, username); err != nil {
		return false, errors.Wrap(err, "failed to store username in session")
	}
	logger.Debug("Username reserved")

	return true, nil
}

// reserve claims username for the caller. The owner recorded is the verified
// email when there is one, so the same person can resume from a new session.
func (c *usernameChecker) reserve(ctx context.Context, logger *slog.Logger, username, sessionID, email string) error {
	owner := email
	if owner == "" {
		owner = sessionID
	}

	for attempt := 0; attempt < maxClaimAttempts; attempt++ {
		now := c.now()

		created, err := c.usernameRepo.CreatePending(ctx, &entity.UsernameReservation{
			Username:  username,
			Status:    entity.UsernameStatusPending,
			Owner:     owner,
			CreatedAt: now,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create username reservation")
		}
		if created {
			return nil
		}

		existing, err := c.usernameRepo.FindByUsername(ctx, username)
		if errors.Is(err, repository.ErrUsernameNotFound) {
			// Deleted between our insert and read.
			continue
		}
		if err != nil {
			return errors.Wrap(err, "failed to read username reservation")
		}

		if existing.Status == entity.UsernameStatusEnrolled {
			logger.Warn("Username has already been claimed")

			return domainerrors.ErrUsernameUnavailable
		}

		if !existing.IsOwnedBy(sessionID, email) && !existing.IsStale(now, c.pendingTimeout) {
			retryAfter := c.pendingTimeout - now.Sub(existing.LastTouched())
			logger.Warn("Username is pending for another session", slog.Duration("retry_after", retryAfter))

			return domainerrors.NewPendingError(retryAfter)
		}

		claimed, err := c.usernameRepo.ClaimPending(ctx, repository.ClaimPendingInput{
			Username:     username,
			Owner:        owner,
			ResumeTokens: []string{sessionID, email},
			StaleBefore:  now.Add(-c.pendingTimeout),
			Now:          now,
		})
		if err != nil {
			return errors.Wrap(err, "failed to claim username reservation")
		}
		if claimed {
			return nil
		}

		logger.Debug("Lost username reservation race; re-reading", slog.Int("attempt", attempt+1))
	}

	return domainerrors.NewPendingError(c.pendingTimeout)
}

// OnEnrolled promotes the reservation to enrolled, but only while it is still
// pending and held by this session or its verified email.
func (c *usernameChecker) OnEnrolled(ctx context.Context, req service.StageRequest, userID string) error {
	username := entity.LocalpartFromUserID(userID)

	email, _, err := req.Session.GetData(ctx, entity.SessionKeyVerifiedEmail)
	if err != nil {
		return errors.Wrap(err, "failed to read verified email from session")
	}

	enrolled, err := c.usernameRepo.MarkEnrolled(ctx, username, []string{req.SessionID, email}, c.now())
	if err != nil {
		return errors.Wrap(err, "failed to enroll username")
	}
	if !enrolled {
		c.log(ctx).Warn("Username reservation lost before enrollment",
			slog.String("username", username),
			slog.String("session", req.SessionID),
		)

		return domainerrors.ErrReservationLost
	}

	return nil
}

// IsUserEnrolled is always true: a user id implies a username.
func (c *usernameChecker) IsUserEnrolled(context.Context, string, string) (bool, error) {
	return true, nil
}

func (c *usernameChecker) IsRequired(context.Context, string, string) (bool, error) {
	return false, nil
}
