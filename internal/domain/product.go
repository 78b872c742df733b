package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry created by a user. Category, SubCategory and
// Seller are expanded on reads when the repository joins them in.
type Product struct {
	ID            string
	Title         string
	Description   string
	ImageURL      string
	Brand         string
	Price         decimal.Decimal
	Quantity      int
	CategoryID    string
	SubCategoryID string
	UserID        string
	Category      *Category
	SubCategory   *SubCategory
	Seller        *User
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
