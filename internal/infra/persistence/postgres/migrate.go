package postgres

import (
	"context"

	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the storefront tables and indexes.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.OtpModel{},
		&model.OrderModel{},
	)

	return errors.Wrap(err, "auto migrate")
}
