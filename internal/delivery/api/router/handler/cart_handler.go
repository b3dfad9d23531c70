package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the caller's cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// CartLineRequest is the body of the add and update endpoints. Quantity must be present;
// the use case decides what zero or negative values mean for each operation.
type CartLineRequest struct {
	ProductID string  `json:"productId" validate:"required,uuid"`
	Size      float64 `json:"size" validate:"gte=0"`
	Quantity  *int    `json:"quantity" validate:"required,max=999"`
}

// RemoveCartLineRequest is the body of DELETE /cart/remove
type RemoveCartLineRequest struct {
	ProductID string  `json:"productId" validate:"required,uuid"`
	Size      float64 `json:"size" validate:"gte=0"`
}

func (r CartLineRequest) input() usecase.CartLineInput {
	return usecase.CartLineInput{
		ProductID: uuid.MustParse(r.ProductID),
		Size:      r.Size,
		Quantity:  *r.Quantity,
	}
}

// GetCart returns the cart joined with products.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	items, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(items))
}

// AddItem adds quantity to a (product, size) line.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CartLineRequest
	if ok, handled := bindRequest(c, &req); !ok {
		return handled
	}

	items, err := h.cartUC.AddItem(c.Request().Context(), userID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(items))
}

// UpdateQuantity replaces the quantity of a line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CartLineRequest
	if ok, handled := bindRequest(c, &req); !ok {
		return handled
	}

	items, err := h.cartUC.UpdateQuantity(c.Request().Context(), userID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(items))
}

// RemoveItem drops a line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req RemoveCartLineRequest
	if ok, handled := bindRequest(c, &req); !ok {
		return handled
	}

	items, err := h.cartUC.RemoveItem(c.Request().Context(), userID, uuid.MustParse(req.ProductID), req.Size)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(items))
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Cart cleared")
}
