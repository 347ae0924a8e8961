package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Product struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	CategoryID  int64           `json:"category_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Category    *Category       `json:"category,omitempty"`
}

// ProductView is the wire representation of a product, the only shape
// that leaves the service and the only shape that is cached.
type ProductView struct {
	ID           int64  `json:"id"`
	User         int64  `json:"user"`
	Category     int64  `json:"category"`
	CategoryName string `json:"category_name,omitempty"`
	ProductName  string `json:"product_name"`
	UnitPrice    string `json:"unit_price"`
	Quantity     int64  `json:"quantity"`
}

// LookupRequest selects a single product when ProductID is set, otherwise
// a page of the owner's products.
type LookupRequest struct {
	UserID    int64
	ProductID *int64
	Page      int
}

// exactly one of the fields is set
type LookupResult struct {
	Product *ProductView                    `json:"product,omitempty"`
	Page    *PaginatedResponse[ProductView] `json:"page,omitempty"`
}
