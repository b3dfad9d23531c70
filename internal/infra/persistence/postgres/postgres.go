package postgres

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger

	// Absent in the catalog command.
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the PostgreSQL pool through go-lib, which also wires read replicas.
// The pool is pinged on start, optionally migrated, and closed on stop.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	conn, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	db := conn.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB handle")
	}

	if params.Metrics != nil {
		if err := params.Metrics.WatchDB(sqlDB, "postgres"); err != nil {
			return nil, errors.Wrap(err, "register postgres pool metrics")
		}
	}

	monitor := newPoolMonitor(params.Logger, sqlDB)
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.StartStopHook(
		func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(pingCtx, db); err != nil {
					return err
				}
				params.Logger.Info("Database schema migrated")
			}

			go monitor.run(monitorCtx)

			return nil
		},
		func() error {
			stopMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	))

	return db, nil
}
