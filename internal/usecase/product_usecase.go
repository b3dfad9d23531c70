package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductUsecase reads and seeds the catalog.
type ProductUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	// GetProduct looks the value up as a slug first, then as an id.
	GetProduct(ctx context.Context, idOrSlug string) (*entity.Product, error)
	// ImportCatalog validates products and replaces the whole catalog with them.
	ImportCatalog(ctx context.Context, products []*entity.Product) (int, error)
	// ValidateCatalog runs the import checks without touching storage.
	ValidateCatalog(ctx context.Context, products []*entity.Product) error
}
