package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. Products are read-only outside of catalog import.
type Product struct {
	ID          uuid.UUID
	SKU         string // Unique stock keeping unit.
	Name        string
	Brand       string
	Category    string
	Gender      string
	Price       decimal.Decimal
	ImageURL    string
	Sizes       []float64
	Rating      float64
	Reviews     int
	Description string
	Slug        string // Unique, URL friendly identifier.
	Trending    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductSort is an ordering applied to catalog listings.
type ProductSort string

const (
	ProductSortDefault   ProductSort = ""
	ProductSortLowToHigh ProductSort = "lowToHigh"
	ProductSortHighToLow ProductSort = "highToLow"
	ProductSortBrand     ProductSort = "brand"
)

// Valid reports whether s is a known sort option.
func (s ProductSort) Valid() bool {
	switch s {
	case ProductSortDefault, ProductSortLowToHigh, ProductSortHighToLow, ProductSortBrand:
		return true
	default:
		return false
	}
}

// ProductFilter narrows a catalog listing. Empty fields do not filter.
type ProductFilter struct {
	Search   string // Case-insensitive substring of the product name.
	Gender   string
	Category string
	Trending *bool
	Sort     ProductSort
}
