package session

import (
	"context"
	"log/slog"

	"uiagate/config"
	"uiagate/internal/domain/lifecycle"
	"uiagate/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the SessionStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore picks the session backend from configuration: redis when a redis
// section is present, process memory otherwise.
func NewStore(params StoreParams) (service.SessionStore, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, UIA sessions kept in memory")

		return NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("UIA sessions stored in redis",
				slog.String("addr", cfg.Addr),
				slog.Duration("ttl", cfg.SessionTTL),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisStore(client, cfg.KeyPrefix, cfg.SessionTTL), nil
}
