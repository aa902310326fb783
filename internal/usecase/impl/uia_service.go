// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "uiagate/internal/delivery/context"
	"uiagate/internal/domain/entity"
	domainerrors "uiagate/internal/domain/errors"
	"uiagate/internal/domain/repository"
	"uiagate/internal/domain/service"
	"uiagate/internal/errors"
	"uiagate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// sessionKeyCompletedFlow records the flow a session satisfied. Finish
	// refuses sessions without it.
	sessionKeyCompletedFlow = "uia.completed_flow"
	// sessionKeyFinished is claimed once by the Finish call that runs the hooks.
	sessionKeyFinished = "uia.finished"
)

// UIAParams defines the dependencies of the UIA engine.
type UIAParams struct {
	fx.In

	Checkers  []service.AuthChecker `group:"checkers"`
	Store     service.SessionStore
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// uiaService implements the UIAUsecase interface.
type uiaService struct {
	checkers  map[string]service.AuthChecker
	ordered   []service.AuthChecker
	store     service.SessionStore
	txManager repository.TransactionManager
	logger    *slog.Logger
	newID     func() string
}

// NewUIAService builds the checker registry. Two checkers claiming the same
// stage identifier is a startup error.
func NewUIAService(params UIAParams) (usecase.UIAUsecase, error) {
	registry := make(map[string]service.AuthChecker)
	for _, checker := range params.Checkers {
		for _, authType := range checker.SupportedAuthTypes() {
			if _, dup := registry[authType]; dup {
				return nil, errors.Errorf("auth type %s is registered twice", authType)
			}
			registry[authType] = checker
		}
	}

	return &uiaService{
		checkers:  registry,
		ordered:   params.Checkers,
		store:     params.Store,
		txManager: params.TxManager,
		logger:    params.Logger,
		newID:     uuid.NewString,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *uiaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// submission is the envelope every stage attempt shares.
type submission struct {
	Auth *struct {
		Type    string `json:"type"`
		Session string `json:"session"`
	} `json:"auth"`
}

// Handle starts a new session when the body carries no usable auth block and
// otherwise applies the submitted stage.
func (srv *uiaService) Handle(ctx context.Context, input *usecase.HandleInput) (*usecase.HandleOutput, error) {
	var sub submission
	if len(input.Body) == 0 || json.Unmarshal(input.Body, &sub) != nil ||
		sub.Auth == nil || sub.Auth.Type == "" || sub.Auth.Session == "" {
		return srv.start(ctx, input)
	}

	var raw struct {
		Auth json.RawMessage `json:"auth"`
	}
	if err := json.Unmarshal(input.Body, &raw); err != nil {
		return nil, domainerrors.ErrBadJSON
	}

	return srv.attempt(ctx, input, sub.Auth.Type, sub.Auth.Session, raw.Auth)
}

func (srv *uiaService) start(ctx context.Context, input *usecase.HandleInput) (*usecase.HandleOutput, error) {
	sessionID := srv.newID()
	logger := srv.log(ctx).With(slog.String("route", input.Route.Key()), slog.String("session", sessionID))

	sess, err := srv.store.Connect(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create UIA session")
	}

	if input.UserID != "" {
		if err := srv.skipSatisfiedStages(ctx, input, sess); err != nil {
			return nil, err
		}
	}
	logger.Debug("Started UIA session")

	return srv.evaluate(ctx, input, sess)
}

// skipSatisfiedStages marks completed every stage a known user no longer needs.
func (srv *uiaService) skipSatisfiedStages(ctx context.Context, input *usecase.HandleInput, sess service.Session) error {
	for _, stage := range input.Route.Stages() {
		checker, ok := srv.checkers[stage]
		if !ok {
			continue
		}

		required, err := checker.IsRequired(ctx, input.UserID, stage)
		if err != nil {
			return errors.Wrapf(err, "failed to check whether %s is required", stage)
		}
		if required {
			continue
		}

		if err := sess.MarkCompleted(ctx, stage); err != nil {
			return errors.Wrap(err, "failed to mark stage completed")
		}
	}

	return nil
}

func (srv *uiaService) attempt(ctx context.Context, input *usecase.HandleInput, authType, sessionID string, auth json.RawMessage) (*usecase.HandleOutput, error) {
	logger := srv.log(ctx).With(
		slog.String("route", input.Route.Key()),
		slog.String("session", sessionID),
		slog.String("auth_type", authType),
	)

	if !input.Route.Advertises(authType) {
		return nil, domainerrors.ErrStageNotAdvertised.WithMessage("Invalid auth type %s", authType)
	}

	checker, ok := srv.checkers[authType]
	if !ok {
		logger.Error("No checker registered for advertised auth type")

		return nil, domainerrors.ErrInternalError.WithMessage("No checker found for auth type %s", authType)
	}

	sess, err := srv.store.Connect(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect UIA session")
	}

	passed, err := checker.Check(ctx, service.StageRequest{
		AuthType:  authType,
		SessionID: sessionID,
		Session:   sess,
		Auth:      auth,
		UserID:    input.UserID,
	})
	if err != nil {
		logger.Debug("Stage check failed", slog.Any("error", err))

		return nil, err
	}
	if !passed {
		return nil, domainerrors.ErrForbidden.WithMessage("Authentication failed for type %s", authType)
	}

	if err := sess.MarkCompleted(ctx, authType); err != nil {
		return nil, errors.Wrap(err, "failed to mark stage completed")
	}
	logger.Debug("Stage completed")

	return srv.evaluate(ctx, input, sess)
}

// evaluate reports completion when some flow is covered and otherwise builds
// the next challenge.
func (srv *uiaService) evaluate(ctx context.Context, input *usecase.HandleInput, sess service.Session) (*usecase.HandleOutput, error) {
	completed, err := sess.CompletedStages(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read completed stages")
	}
	slices.Sort(completed)

	output := &usecase.HandleOutput{
		SessionID: sess.ID(),
		Completed: completed,
	}

	if flow, ok := input.Route.FirstSatisfied(completed); ok {
		if err := sess.SetData(ctx, sessionKeyCompletedFlow, strings.Join(flow.Stages, ",")); err != nil {
			return nil, errors.Wrap(err, "failed to record completed flow")
		}
		output.Complete = true
		output.Flow = flow

		return output, nil
	}

	params, err := srv.params(ctx, input, sess)
	if err != nil {
		return nil, err
	}

	output.Challenge = &entity.Challenge{
		Flows:     input.Route.Flows,
		Completed: completed,
		Params:    params,
		Session:   sess.ID(),
	}

	return output, nil
}

// params asks each distinct stage of the route for its parameters once.
func (srv *uiaService) params(ctx context.Context, input *usecase.HandleInput, sess service.Session) (map[string]map[string]any, error) {
	params := make(map[string]map[string]any)

	for _, stage := range input.Route.Stages() {
		checker, ok := srv.checkers[stage]
		if !ok {
			srv.log(ctx).Warn("No checker registered for advertised auth type", slog.String("auth_type", stage))

			continue
		}

		p, err := checker.Params(ctx, service.StageRequest{
			AuthType:  stage,
			SessionID: sess.ID(),
			Session:   sess,
			UserID:    input.UserID,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compute params for %s", stage)
		}
		if p != nil {
			params[stage] = p
		}
	}
	if len(params) == 0 {
		return nil, nil
	}

	return params, nil
}

// Finish runs the hook matching input.Kind for each completed stage inside one
// transaction, so a failing stage leaves nothing half-recorded. Only a session
// that satisfied a flow can be finished, and only once: the first caller claims
// it before any hook runs and releases the claim if the hooks fail.
func (srv *uiaService) Finish(ctx context.Context, input *usecase.FinishInput) error {
	logger := srv.log(ctx).With(slog.String("session", input.SessionID), slog.String("kind", string(input.Kind)))

	sess, err := srv.store.Connect(ctx, input.SessionID)
	if err != nil {
		return errors.Wrap(err, "failed to connect UIA session")
	}

	completed, err := sess.CompletedStages(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read completed stages")
	}
	if len(completed) == 0 {
		return domainerrors.ErrSessionNotFound
	}
	if _, satisfied, err := sess.GetData(ctx, sessionKeyCompletedFlow); err != nil {
		return errors.Wrap(err, "failed to read session state")
	} else if !satisfied {
		logger.Warn("Refusing to finish a session that satisfied no flow", slog.Any("stages", completed))

		return domainerrors.ErrForbidden.WithMessage("UIA session has not completed any flow")
	}
	slices.Sort(completed)

	claimed, err := sess.SetDataIfAbsent(ctx, sessionKeyFinished, string(input.Kind))
	if err != nil {
		return errors.Wrap(err, "failed to claim session")
	}
	if !claimed {
		return domainerrors.ErrInvalidParam.WithMessage("UIA session has already been finished")
	}

	err = srv.txManager.Execute(ctx, func(txCtx context.Context) error {
		for _, stage := range completed {
			checker, ok := srv.checkers[stage]
			if !ok {
				continue
			}

			req := service.StageRequest{AuthType: stage, SessionID: input.SessionID, Session: sess, UserID: input.UserID}
			if err := runHook(txCtx, checker, input.Kind, req); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		logger.Warn("Post-authentication hooks failed", slog.Any("error", err))

		if releaseErr := sess.DeleteData(ctx, sessionKeyFinished); releaseErr != nil {
			return errors.Join(err, errors.Wrap(releaseErr, "failed to release session claim"))
		}

		return err
	}
	logger.Info("UIA session finished", slog.String("user_id", input.UserID), slog.Any("stages", completed))

	return nil
}

func runHook(ctx context.Context, checker service.AuthChecker, kind usecase.FinishKind, req service.StageRequest) error {
	switch kind {
	case usecase.FinishEnrolled:
		return checker.OnEnrolled(ctx, req, req.UserID)
	case usecase.FinishLoggedIn:
		return checker.OnLoggedIn(ctx, req, req.UserID)
	case usecase.FinishSuccess:
		return checker.OnSuccess(ctx, req, req.UserID)
	default:
		return domainerrors.ErrInvalidParam.WithMessage("Unknown finish kind %s", kind)
	}
}

// Unenroll calls OnUnenrolled once per checker.
func (srv *uiaService) Unenroll(ctx context.Context, userID string) error {
	return srv.txManager.Execute(ctx, func(txCtx context.Context) error {
		for _, checker := range srv.ordered {
			if err := checker.OnUnenrolled(txCtx, userID); err != nil {
				return errors.Wrapf(err, "failed to unenroll %v", checker.SupportedAuthTypes())
			}
		}

		return nil
	})
}
