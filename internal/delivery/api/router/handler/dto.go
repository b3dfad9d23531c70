package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// UserResponse is the public profile of a user.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProductResponse is a catalog entry as served to clients.
type ProductResponse struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Gender      string    `json:"gender"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageURL"`
	Sizes       []float64 `json:"sizes"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	Trending    bool      `json:"trending"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CartItemResponse is a cart line joined with its product.
type CartItemResponse struct {
	ProductID string           `json:"productId"`
	Product   *ProductResponse `json:"product"`
	Size      float64          `json:"size"`
	Quantity  int              `json:"quantity"`
}

// OrderLineResponse is a product snapshot inside an order.
type OrderLineResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      float64 `json:"size"`
	ImageURL  string  `json:"imageURL"`
}

// AddressPayload is a shipping address, used both in requests and responses.
type AddressPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

// OrderResponse is a placed order.
type OrderResponse struct {
	ID            string              `json:"id"`
	User          string              `json:"user"`
	Items         []OrderLineResponse `json:"items"`
	Address       AddressPayload      `json:"address"`
	Subtotal      float64             `json:"subtotal"`
	Shipping      float64             `json:"shipping"`
	Total         float64             `json:"total"`
	PaymentMethod string              `json:"paymentMethod"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}

func toProductResponse(product *entity.Product) *ProductResponse {
	if product == nil {
		return nil
	}

	sizes := product.Sizes
	if sizes == nil {
		sizes = []float64{}
	}

	return &ProductResponse{
		ID:          product.ID.String(),
		SKU:         product.SKU,
		Name:        product.Name,
		Brand:       product.Brand,
		Category:    product.Category,
		Gender:      product.Gender,
		Price:       product.Price.InexactFloat64(),
		ImageURL:    product.ImageURL,
		Sizes:       sizes,
		Rating:      product.Rating,
		Reviews:     product.Reviews,
		Description: product.Description,
		Slug:        product.Slug,
		Trending:    product.Trending,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	return out
}

func toCartResponse(items []*usecase.CartItem) []*CartItemResponse {
	out := make([]*CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &CartItemResponse{
			ProductID: item.ProductID.String(),
			Product:   toProductResponse(item.Product),
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}

	return out
}

func toAddress(a AddressPayload) entity.ShippingAddress {
	return entity.ShippingAddress(a)
}

func toOrderResponse(order *entity.Order) *OrderResponse {
	items := make([]OrderLineResponse, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, OrderLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price.InexactFloat64(),
			Quantity:  line.Quantity,
			Size:      line.Size,
			ImageURL:  line.ImageURL,
		})
	}

	return &OrderResponse{
		ID:            order.ID.String(),
		User:          order.UserID.String(),
		Items:         items,
		Address:       AddressPayload(order.Address),
		Subtotal:      order.Subtotal.InexactFloat64(),
		Shipping:      order.Shipping.InexactFloat64(),
		Total:         order.Total.InexactFloat64(),
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}

	return out
}
