package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemInput is one submitted order line. Price and Quantity are the raw client values,
// coerced by the use case.
type OrderItemInput struct {
	ProductID string
	Name      string
	Price     any
	Quantity  any
	Size      float64
	ImageURL  string
}

// CreateOrderInput is a checkout submission. Subtotal and Total are optional client-side
// figures that must agree with the recomputed totals.
type CreateOrderInput struct {
	Items         []OrderItemInput
	Address       entity.ShippingAddress
	Subtotal      *decimal.Decimal
	Shipping      decimal.Decimal
	Total         *decimal.Decimal
	PaymentMethod string
}

// OrderUsecase places and reads the authenticated user's orders.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*entity.Order, error)
	// ListOrders returns the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	// GetOrder returns an order owned by the user. rawID is the unparsed path value.
	GetOrder(ctx context.Context, userID uuid.UUID, rawID string) (*entity.Order, error)
	// OrderReceiptQR returns a PNG QR code for an order owned by the user.
	OrderReceiptQR(ctx context.Context, userID uuid.UUID, rawID string) ([]byte, error)
}
