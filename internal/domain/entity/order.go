package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatusCreated is the only status an order reaches through this service.
const OrderStatusCreated = "created"

// Order is an immutable record of a checkout.
type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Items         []OrderLine
	Address       ShippingAddress
	Subtotal      decimal.Decimal
	Shipping      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string // Informational label, no payment is processed.
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderLine is a product snapshot taken when the order was placed.
type OrderLine struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Size      float64
	ImageURL  string
}

// LineTotal returns price multiplied by quantity.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ShippingAddress is where an order is delivered.
type ShippingAddress struct {
	Name    string
	Email   string
	Phone   string
	Line1   string
	Line2   string
	City    string
	State   string
	Pincode string
	Country string
}

// CalculateTotals returns the subtotal of lines and the total including shipping.
func CalculateTotals(lines []OrderLine, shipping decimal.Decimal) (subtotal, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
	}

	return subtotal, subtotal.Add(shipping)
}

// OwnedBy reports whether the order belongs to userID.
func (o *Order) OwnedBy(userID uuid.UUID) bool {
	return o.UserID == userID
}
