package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a product reference with the count and unit price the client
// supplied at add time.
type CartItem struct {
	ID        string
	CartID    string
	ProductID string
	Product   *Product
	Count     int
	Price     decimal.Decimal
}

// Cart holds at most one open cart per user. Totals are stored as supplied by
// the client; the service does no price computation.
type Cart struct {
	ID         string
	UserID     string
	Owner      *User
	Items      []CartItem
	Total      decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
