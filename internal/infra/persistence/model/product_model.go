package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	SKU         string                       `gorm:"column:sku;type:varchar(64);uniqueIndex;not null"`
	Name        string                       `gorm:"type:varchar(255);not null"`
	Brand       string                       `gorm:"type:varchar(100);not null"`
	Category    string                       `gorm:"type:varchar(100);index;not null"`
	Gender      string                       `gorm:"type:varchar(20);index;not null"`
	Price       decimal.Decimal              `gorm:"type:numeric(12,2);not null"`
	ImageURL    string                       `gorm:"column:image_url;type:text"`
	Sizes       datatypes.JSONSlice[float64] `gorm:"type:jsonb;not null"`
	Rating      float64                      `gorm:"not null"`
	Reviews     int                          `gorm:"not null"`
	Description string                       `gorm:"type:text"`
	Slug        string                       `gorm:"type:varchar(255);uniqueIndex;not null"`
	Trending    bool                         `gorm:"index;not null"`
	CreatedAt   time.Time                    `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
