package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"uiagate/config"
	"uiagate/internal/domain/lifecycle"
	"uiagate/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval = 5 * time.Second
	// Reservation claims are single statements; waiting this long for a
	// connection means the gate itself is the bottleneck.
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database holding terms acceptance, username reservations,
// registration tokens and the username blocklist. The schema is migrated
// before the gate starts serving, since the blocklist load reads from it.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	base, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db := base.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(params.Logger, poolWaitWarnThreshold)
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := prepareSchema(ctx, sqlDB); err != nil {
				return err
			}
			params.Logger.InfoContext(ctx, "UIA database ready",
				slog.Int("replicas", len(params.Config.Postgres.Replicas)),
			)

			go monitor.run(monitorCtx, sqlDB, poolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func prepareSchema(ctx context.Context, sqlDB *sql.DB) error {
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	return RunMigrations(ctx, sqlDB)
}

// poolMonitor reports connection waits between two samples of the pool stats.
type poolMonitor struct {
	logger    *slog.Logger
	warnAfter time.Duration
	prev      sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, warnAfter time.Duration) *poolMonitor {
	return &poolMonitor{logger: logger, warnAfter: warnAfter}
}

func (m *poolMonitor) run(ctx context.Context, sqlDB *sql.DB, interval time.Duration) {
	if m.logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.prev = sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if level, attrs, waited := m.observe(sqlDB.Stats()); waited {
				m.logger.LogAttrs(ctx, level, "UIA database pool wait", attrs...)
			}
		}
	}
}

// observe compares cur with the previous sample. waited is false when no
// caller had to wait for a connection since then.
func (m *poolMonitor) observe(cur sql.DBStats) (level slog.Level, attrs []slog.Attr, waited bool) {
	waits := cur.WaitCount - m.prev.WaitCount
	waitTime := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	attrs = []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waitTime", waitTime),
		slog.Duration("avgWait", waitTime/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	}

	level = slog.LevelDebug
	if waitTime >= m.warnAfter {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
