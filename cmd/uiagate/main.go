package main

import (
	"context"
	"log/slog"
	"os"

	"uiagate/config"
	"uiagate/internal/delivery"
	"uiagate/internal/delivery/api"
	apimiddleware "uiagate/internal/delivery/api/middleware"
	"uiagate/internal/delivery/api/router/handler"
	"uiagate/internal/infra/auth"
	logs "uiagate/internal/infra/log"
	"uiagate/internal/infra/persistence/postgres"
	"uiagate/internal/infra/session"
	"uiagate/internal/usecase/impl"
	"uiagate/internal/usecase/stage"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectStage(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		session.NewStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewAcceptedTermsRepository,
			postgres.NewUsernameRepository,
			postgres.NewRegistrationTokenRepository,
			postgres.NewBadWordRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityService,
		),
	)
}

// injectStage registers every UIA stage with the engine.
func injectStage() fx.Option {
	asChecker := func(constructor any) any {
		return fx.Annotate(constructor, fx.ResultTags(`group:"checkers"`))
	}

	return fx.Options(
		fx.Provide(
			asChecker(stage.NewTermsChecker),
			asChecker(stage.NewUsernameChecker),
			asChecker(stage.NewRegistrationTokenChecker),
			asChecker(stage.NewDummyChecker),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUIAService,
			impl.NewRegistrationTokenService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewIdentityMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUIAHandler,
			handler.NewRegistrationTokenHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
