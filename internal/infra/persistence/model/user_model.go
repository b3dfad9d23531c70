// Package model contains the GORM persistence models. They mirror table layouts and never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. The cart and order references are stored as JSONB columns.
type UserModel struct {
	ID           uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	Email        string                             `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string                             `gorm:"type:varchar(100);not null"`
	PasswordHash string                             `gorm:"type:varchar(255);not null"`
	Cart         datatypes.JSONSlice[CartLineModel] `gorm:"type:jsonb;not null"`
	CartVersion  int64                              `gorm:"not null"`
	OrderIDs     datatypes.JSONSlice[uuid.UUID]     `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CartLineModel is one element of users.cart.
type CartLineModel struct {
	ProductID uuid.UUID `json:"productId"`
	Size      float64   `json:"size"`
	Quantity  int       `json:"quantity"`
}
