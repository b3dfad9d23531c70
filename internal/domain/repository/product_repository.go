package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository reads the catalog.
type ProductRepository interface {
	// List returns products matching filter in the requested order.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// FindBySlug retrieves a product by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindByID retrieves a product by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// ReplaceAll deletes the catalog and inserts products.
	ReplaceAll(ctx context.Context, products []*entity.Product) error
}
