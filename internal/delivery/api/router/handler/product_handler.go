package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the public catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ListProductsQuery holds the catalog filters of GET /products
type ListProductsQuery struct {
	Search   string `query:"search"`
	Gender   string `query:"gender"`
	Category string `query:"category"`
	Trending string `query:"trending"`
	Sort     string `query:"sort"`
}

func (q ListProductsQuery) filter() entity.ProductFilter {
	filter := entity.ProductFilter{
		Search:   q.Search,
		Gender:   q.Gender,
		Category: q.Category,
		Sort:     entity.ProductSort(q.Sort),
	}

	// Any value other than "true" selects non-trending products.
	if q.Trending != "" {
		trending := q.Trending == "true"
		filter.Trending = &trending
	}

	return filter
}

// ListProducts returns the catalog narrowed by the query filters.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var query ListProductsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.Error(c, http.StatusBadRequest, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid query parameters", nil)
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), query.filter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products))
}

// GetProduct returns one product by slug or id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}
