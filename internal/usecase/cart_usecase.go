package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartLineInput identifies a cart line and the quantity to apply.
type CartLineInput struct {
	ProductID uuid.UUID
	Size      float64
	Quantity  int
}

// CartItem is a cart line joined with its product.
type CartItem struct {
	ProductID uuid.UUID
	Product   *entity.Product
	Size      float64
	Quantity  int
}

// CartUsecase manages the authenticated user's cart.
// Every mutation returns the cart as it was stored.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) ([]*CartItem, error)
	AddItem(ctx context.Context, userID uuid.UUID, input CartLineInput) ([]*CartItem, error)
	// UpdateQuantity sets the quantity of a line. A quantity of zero or less removes the line.
	UpdateQuantity(ctx context.Context, userID uuid.UUID, input CartLineInput) ([]*CartItem, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID, size float64) ([]*CartItem, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
