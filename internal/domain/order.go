package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates fulfilment states.
type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "ORDER_PLACED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusDispatched OrderStatus = "DISPATCHED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
)

// PaymentType enumerates accepted payment modes. Payment processing itself is
// outside this service; the value is stored as metadata on the order.
type PaymentType string

const (
	PaymentTypeCOD  PaymentType = "COD"
	PaymentTypeCard PaymentType = "CARD"
)

// OrderItem is a purchased product line.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Product   *Product
	Count     int
	Price     decimal.Decimal
}

// Order records a placed purchase with client-supplied totals.
type Order struct {
	ID          string
	UserID      string
	OrderBy     *User
	Items       []OrderItem
	Total       decimal.Decimal
	Tax         decimal.Decimal
	GrandTotal  decimal.Decimal
	PaymentType PaymentType
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
