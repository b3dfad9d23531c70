package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: slog.New(slog.DiscardHandler)}), productUC
}

func sampleProduct() *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		SKU:       "NK-001",
		Name:      "Air Runner",
		Brand:     "Nike",
		Category:  "running",
		Gender:    "men",
		Price:     decimal.RequireFromString("129.99"),
		Sizes:     []float64{8, 9, 10.5},
		Slug:      "air-runner-nk-001",
		Trending:  true,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("maps query to filter", func(t *testing.T) {
		h, productUC := createTestProductHandler(t)
		product := sampleProduct()
		productUC.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(f entity.ProductFilter) bool {
			return f.Search == "air" && f.Gender == "men" && f.Category == "running" &&
				f.Trending != nil && *f.Trending && f.Sort == entity.ProductSortLowToHigh
		})).Return([]*entity.Product{product}, nil)

		c, rec := newTestContext(http.MethodGet,
			"/api/products?search=air&gender=men&category=running&trending=true&sort=lowToHigh", "")
		require.NoError(t, h.ListProducts(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var data []ProductResponse
		decodeData(t, rec, &data)
		require.Len(t, data, 1)
		assert.Equal(t, 129.99, data[0].Price)
		assert.Equal(t, []float64{8, 9, 10.5}, data[0].Sizes)
		assert.Equal(t, "air-runner-nk-001", data[0].Slug)
	})

	t.Run("non true trending selects non trending", func(t *testing.T) {
		h, productUC := createTestProductHandler(t)
		productUC.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(f entity.ProductFilter) bool {
			return f.Trending != nil && !*f.Trending
		})).Return([]*entity.Product{}, nil)

		c, rec := newTestContext(http.MethodGet, "/api/products?trending=yes", "")
		require.NoError(t, h.ListProducts(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("unknown sort", func(t *testing.T) {
		h, productUC := createTestProductHandler(t)
		productUC.EXPECT().ListProducts(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidSort)

		c, rec := newTestContext(http.MethodGet, "/api/products?sort=random", "")
		require.NoError(t, h.ListProducts(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_SORT", decodeErrorCode(t, rec))
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, productUC := createTestProductHandler(t)
		product := sampleProduct()
		productUC.EXPECT().GetProduct(mock.Anything, "air-runner-nk-001").Return(product, nil)

		c, rec := newTestContext(http.MethodGet, "/api/products/air-runner-nk-001", "")
		c.SetParamNames("id")
		c.SetParamValues("air-runner-nk-001")
		require.NoError(t, h.GetProduct(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var data ProductResponse
		decodeData(t, rec, &data)
		assert.Equal(t, product.ID.String(), data.ID)
	})

	t.Run("not found", func(t *testing.T) {
		h, productUC := createTestProductHandler(t)
		productUC.EXPECT().GetProduct(mock.Anything, "missing").Return(nil, domainerrors.ErrProductNotFound)

		c, rec := newTestContext(http.MethodGet, "/api/products/missing", "")
		c.SetParamNames("id")
		c.SetParamValues("missing")
		require.NoError(t, h.GetProduct(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeErrorCode(t, rec))
	})
}
