package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and order history.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one submitted line. Price and quantity accept numbers or numeric strings.
type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     any     `json:"price"`
	Quantity  any     `json:"quantity"`
	Size      float64 `json:"size"`
	ImageURL  string  `json:"imageURL"`
}

// CreateOrderRequest is the body of POST /orders
type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"items"`
	Address       AddressPayload     `json:"address"`
	Subtotal      *decimal.Decimal   `json:"subtotal"`
	Shipping      decimal.Decimal    `json:"shipping"`
	Total         *decimal.Decimal   `json:"total"`
	PaymentMethod string             `json:"paymentMethod" validate:"max=50"`
}

// OrderEnvelope wraps a single order.
type OrderEnvelope struct {
	Order *OrderResponse `json:"order"`
}

// OrdersEnvelope wraps an order list.
type OrdersEnvelope struct {
	Orders []*OrderResponse `json:"orders"`
}

func (r CreateOrderRequest) input() usecase.CreateOrderInput {
	items := make([]usecase.OrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Size:      it.Size,
			ImageURL:  it.ImageURL,
		})
	}

	return usecase.CreateOrderInput{
		Items:         items,
		Address:       toAddress(r.Address),
		Subtotal:      r.Subtotal,
		Shipping:      r.Shipping,
		Total:         r.Total,
		PaymentMethod: r.PaymentMethod,
	}
}

// CreateOrder places an order with server computed totals.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateOrderRequest
	if ok, handled := bindRequest(c, &req); !ok {
		return handled
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), userID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, OrderEnvelope{Order: toOrderResponse(order)})
}

// ListOrders returns the caller's orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OrdersEnvelope{Orders: toOrderResponses(orders)})
}

// GetOrder returns one of the caller's orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OrderEnvelope{Order: toOrderResponse(order)})
}

// GetOrderQR returns the pickup QR code of one of the caller's orders as a PNG.
func (h *OrderHandler) GetOrderQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	png, err := h.orderUC.OrderReceiptQR(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
