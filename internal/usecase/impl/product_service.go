package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	now         func() time.Time
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	if !filter.Sort.Valid() {
		return nil, domainerrors.ErrInvalidSort
	}

	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, idOrSlug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, idOrSlug)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product by slug")
	}

	id, parseErr := uuid.Parse(idOrSlug)
	if parseErr != nil {
		return nil, domainerrors.ErrProductNotFound
	}

	product, err = srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return product, nil
}

// ImportCatalog rejects the whole document if any product is invalid.
func (srv *productService) ImportCatalog(ctx context.Context, products []*entity.Product) (int, error) {
	if err := srv.prepareCatalog(products); err != nil {
		return 0, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().ReplaceAll(ctx, products); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to replace catalog")
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Catalog imported", slog.Int("products", len(products)))

	return len(products), nil
}

func (srv *productService) ValidateCatalog(ctx context.Context, products []*entity.Product) error {
	if err := srv.prepareCatalog(products); err != nil {
		return err
	}

	srv.log(ctx).Debug("Catalog validated", slog.Int("products", len(products)))

	return nil
}

// prepareCatalog validates products and fills ids, slugs and timestamps.
// Products keep the document order through increasing creation times.
func (srv *productService) prepareCatalog(products []*entity.Product) error {
	if len(products) == 0 {
		return domainerrors.ErrCatalogInvalid.WithDetails("catalog is empty")
	}

	skus := make(map[string]int, len(products))
	slugs := make(map[string]int, len(products))
	base := srv.now()

	for i, product := range products {
		if product == nil {
			return domainerrors.ErrCatalogInvalid.WithDetails(fmt.Sprintf("product %d is null", i))
		}
		if missing := missingProductFields(product); len(missing) > 0 {
			return domainerrors.ErrCatalogInvalid.WithDetails(
				fmt.Sprintf("product %d: missing %s", i, strings.Join(missing, ", ")))
		}
		if product.Price.IsNegative() {
			return domainerrors.ErrCatalogInvalid.WithDetails(fmt.Sprintf("product %d: negative price", i))
		}

		if product.Slug == "" {
			product.Slug = util.Slugify(product.Name + " " + product.SKU)
		}
		if j, dup := skus[product.SKU]; dup {
			return domainerrors.ErrCatalogInvalid.WithDetails(fmt.Sprintf("products %d and %d share sku %q", j, i, product.SKU))
		}
		if j, dup := slugs[product.Slug]; dup {
			return domainerrors.ErrCatalogInvalid.WithDetails(fmt.Sprintf("products %d and %d share slug %q", j, i, product.Slug))
		}
		skus[product.SKU] = i
		slugs[product.Slug] = i

		if product.ID == uuid.Nil {
			product.ID = uuid.New()
		}
		if product.Sizes == nil {
			product.Sizes = []float64{}
		}
		product.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		product.UpdatedAt = product.CreatedAt
	}

	return nil
}

func missingProductFields(product *entity.Product) []string {
	var missing []string
	for field, value := range map[string]string{
		"sku":         product.SKU,
		"name":        product.Name,
		"brand":       product.Brand,
		"category":    product.Category,
		"gender":      product.Gender,
		"imageURL":    product.ImageURL,
		"description": product.Description,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	slices.Sort(missing)

	return missing
}
