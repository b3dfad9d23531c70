package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	txProducts  *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	fx := productServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		repoFactory: mockRepo.NewMockRepositoryFactory(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		txProducts:  mockRepo.NewMockProductRepository(t),
	}

	fx.service = NewProductService(ProductServiceParams{
		TxManager:   fx.txManager,
		ProductRepo: fx.productRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fx
}

func validProduct(sku string) *entity.Product {
	return &entity.Product{
		SKU:         sku,
		Name:        "Runner " + sku,
		Brand:       "Acme",
		Category:    "running",
		Gender:      "men",
		Price:       decimal.RequireFromString("49.99"),
		ImageURL:    "https://img.example.com/" + sku + ".png",
		Description: "A shoe",
	}
}

func TestProductService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filter through", func(t *testing.T) {
		fx := createTestProductService(t)
		trending := true
		filter := entity.ProductFilter{Search: "run", Trending: &trending, Sort: entity.ProductSortHighToLow}
		products := []*entity.Product{validProduct("A1")}

		fx.productRepo.EXPECT().List(ctx, filter).Return(products, nil)

		got, err := fx.service.ListProducts(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, products, got)
	})

	t.Run("unknown sort", func(t *testing.T) {
		fx := createTestProductService(t)

		_, err := fx.service.ListProducts(ctx, entity.ProductFilter{Sort: "popular"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSort)
	})
}

func TestProductService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("slug match", func(t *testing.T) {
		fx := createTestProductService(t)
		product := validProduct("A1")
		fx.productRepo.EXPECT().FindBySlug(ctx, "runner-a1").Return(product, nil)

		got, err := fx.service.GetProduct(ctx, "runner-a1")
		require.NoError(t, err)
		assert.Same(t, product, got)
	})

	t.Run("falls back to id", func(t *testing.T) {
		fx := createTestProductService(t)
		id := uuid.New()
		product := validProduct("A1")
		fx.productRepo.EXPECT().FindBySlug(ctx, id.String()).Return(nil, repository.ErrProductNotFound)
		fx.productRepo.EXPECT().FindByID(ctx, id).Return(product, nil)

		got, err := fx.service.GetProduct(ctx, id.String())
		require.NoError(t, err)
		assert.Same(t, product, got)
	})

	t.Run("neither slug nor id", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.productRepo.EXPECT().FindBySlug(ctx, "nope").Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.GetProduct(ctx, "nope")
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.productRepo.EXPECT().FindBySlug(ctx, "runner").Return(nil, errors.New("timeout"))

		_, err := fx.service.GetProduct(ctx, "runner")

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	})
}

func TestProductService_ImportCatalog_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	products := []*entity.Product{validProduct("A1"), validProduct("B2")}

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().NewProductRepository().Return(fx.txProducts)
	fx.txProducts.EXPECT().ReplaceAll(ctx, products).Return(nil)

	n, err := fx.service.ImportCatalog(ctx, products)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "runner-a1-a1", products[0].Slug)
	assert.NotEqual(t, uuid.Nil, products[0].ID)
	assert.True(t, products[0].CreatedAt.Before(products[1].CreatedAt))
	assert.NotNil(t, products[1].Sizes)
}

func TestProductService_ImportCatalog_Invalid(t *testing.T) {
	ctx := context.Background()

	duplicateSKU := []*entity.Product{validProduct("A1"), validProduct("A1")}
	duplicateSKU[1].Slug = "other"

	missingBrand := []*entity.Product{validProduct("A1")}
	missingBrand[0].Brand = " "

	negativePrice := []*entity.Product{validProduct("A1")}
	negativePrice[0].Price = decimal.NewFromInt(-1)

	duplicateSlug := []*entity.Product{validProduct("A1"), validProduct("B2")}
	duplicateSlug[0].Slug = "same"
	duplicateSlug[1].Slug = "same"

	tests := []struct {
		name     string
		products []*entity.Product
		detail   string
	}{
		{name: "empty", products: nil, detail: "catalog is empty"},
		{name: "duplicate sku", products: duplicateSKU, detail: `products 0 and 1 share sku "A1"`},
		{name: "duplicate slug", products: duplicateSlug, detail: `products 0 and 1 share slug "same"`},
		{name: "missing field", products: missingBrand, detail: "product 0: missing brand"},
		{name: "negative price", products: negativePrice, detail: "product 0: negative price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)

			_, err := fx.service.ImportCatalog(ctx, tt.products)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "CATALOG_INVALID", appErr.ErrorCode())
			assert.Equal(t, tt.detail, appErr.Details())
		})
	}
}

func TestProductService_ValidateCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("valid document is not written", func(t *testing.T) {
		fx := createTestProductService(t)
		products := []*entity.Product{validProduct("A1"), validProduct("B2")}

		require.NoError(t, fx.service.ValidateCatalog(ctx, products))
		assert.Equal(t, "runner-b2-b2", products[1].Slug)
	})

	t.Run("invalid document", func(t *testing.T) {
		fx := createTestProductService(t)
		products := []*entity.Product{validProduct("A1")}
		products[0].ImageURL = ""

		err := fx.service.ValidateCatalog(ctx, products)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "product 0: missing imageURL", appErr.Details())
	})
}
