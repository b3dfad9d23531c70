package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/infra/catalog"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// sourceOverrides replaces the configured seed location when set.
type sourceOverrides struct {
	bucketURL string
	key       string
}

func (o sourceOverrides) apply(cfg *config.Config) {
	if o.bucketURL != "" {
		cfg.Catalog.BucketURL = o.bucketURL
	}
	if o.key != "" {
		cfg.Catalog.Key = o.key
	}
}

func baseOptions(overrides sourceOverrides) fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Provide(
			func() (*config.Config, error) {
				cfg, err := config.New()
				if err != nil {
					return nil, err
				}
				overrides.apply(cfg)

				return cfg, nil
			},
			logs.New,
			catalog.NewSource,
		),
	)
}

func databaseOptions() fx.Option {
	return fx.Provide(
		postgres.New,
		postgres.NewProductRepository,
		postgres.NewTransactionManager,
		impl.NewProductService,
	)
}

func runMigrate(ctx context.Context) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		baseOptions(sourceOverrides{}),
		fx.Provide(postgres.New),
		fx.Populate(&db, &logger),
	)

	return withApp(ctx, app, func(ctx context.Context) error {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		logger.Info("Database schema migrated")

		return nil
	})
}

func runSeed(ctx context.Context, overrides sourceOverrides) error {
	var (
		source   *catalog.Source
		products usecase.ProductUsecase
		logger   *slog.Logger
	)

	app := fx.New(
		baseOptions(overrides),
		databaseOptions(),
		fx.Populate(&source, &products, &logger),
	)

	return withApp(ctx, app, func(ctx context.Context) error {
		document, err := source.Load(ctx)
		if err != nil {
			return err
		}

		count, err := products.ImportCatalog(ctx, document)
		if err != nil {
			return err
		}
		logger.Info("Catalog seeded", slog.Int("products", count))

		return nil
	})
}

// runValidate needs no database: the product service only runs its checks.
func runValidate(ctx context.Context, overrides sourceOverrides) error {
	var (
		source *catalog.Source
		logger *slog.Logger
	)

	app := fx.New(
		baseOptions(overrides),
		fx.Populate(&source, &logger),
	)

	return withApp(ctx, app, func(ctx context.Context) error {
		document, err := source.Load(ctx)
		if err != nil {
			return err
		}

		products := impl.NewProductService(impl.ProductServiceParams{Logger: logger})
		if err := products.ValidateCatalog(ctx, document); err != nil {
			return err
		}
		logger.Info("Catalog document is valid", slog.Int("products", len(document)))

		return nil
	})
}

func withApp(ctx context.Context, app *fx.App, run func(context.Context) error) error {
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := app.Stop(stopCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to stop application: %v\n", err)
		}
	}()

	return run(ctx)
}
