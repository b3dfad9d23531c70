package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Items and address are snapshots stored as JSONB.
type OrderModel struct {
	ID            uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID                           `gorm:"type:uuid;index:idx_orders_user_created;not null"`
	Items         datatypes.JSONSlice[OrderLineModel] `gorm:"type:jsonb;not null"`
	Address       datatypes.JSONType[AddressModel]    `gorm:"type:jsonb;not null"`
	Subtotal      decimal.Decimal                     `gorm:"type:numeric(12,2);not null"`
	Shipping      decimal.Decimal                     `gorm:"type:numeric(12,2);not null"`
	Total         decimal.Decimal                     `gorm:"type:numeric(12,2);not null"`
	PaymentMethod string                              `gorm:"type:varchar(50)"`
	Status        string                              `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time                           `gorm:"index:idx_orders_user_created"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is one element of orders.items.
type OrderLineModel struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      float64         `json:"size"`
	ImageURL  string          `json:"image"`
}

// AddressModel is the JSON layout of orders.address.
type AddressModel struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}
