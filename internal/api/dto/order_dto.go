package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// OrderRequest payload for placing an order.
type OrderRequest struct {
	Products    []CartItemRequest `json:"products"`
	Total       decimal.Decimal   `json:"total"`
	Tax         decimal.Decimal   `json:"tax"`
	GrandTotal  decimal.Decimal   `json:"grandTotal"`
	PaymentType string            `json:"paymentType"`
}

// ToDomain builds the domain order for the given buyer.
func (r OrderRequest) ToDomain(userID string) *domain.Order {
	items := make([]domain.OrderItem, 0, len(r.Products))
	for _, item := range r.Products {
		items = append(items, domain.OrderItem{
			ProductID: item.Product,
			Count:     item.Count,
			Price:     item.Price,
		})
	}
	return &domain.Order{
		UserID:      userID,
		Items:       items,
		Total:       r.Total,
		Tax:         r.Tax,
		GrandTotal:  r.GrandTotal,
		PaymentType: domain.PaymentType(r.PaymentType),
	}
}

// OrderStatusRequest payload for status updates.
type OrderStatusRequest struct {
	OrderStatus string `json:"orderStatus"`
}

// OrderItemView response shape.
type OrderItemView struct {
	ID      string          `json:"id"`
	Product *ProductView    `json:"productObj,omitempty"`
	Count   int             `json:"count"`
	Price   decimal.Decimal `json:"price"`
}

// OrderView response shape with items and buyer expanded.
type OrderView struct {
	ID          string          `json:"id"`
	Products    []OrderItemView `json:"products"`
	Total       decimal.Decimal `json:"total"`
	Tax         decimal.Decimal `json:"tax"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
	PaymentType string          `json:"paymentType"`
	OrderStatus string          `json:"orderStatus"`
	OrderBy     *UserView       `json:"orderBy,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewOrderView maps a domain order to its response shape.
func NewOrderView(order *domain.Order) *OrderView {
	if order == nil {
		return nil
	}
	items := make([]OrderItemView, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItemView{
			ID:      item.ID,
			Product: NewProductView(item.Product),
			Count:   item.Count,
			Price:   item.Price,
		})
	}
	return &OrderView{
		ID:          order.ID,
		Products:    items,
		Total:       order.Total,
		Tax:         order.Tax,
		GrandTotal:  order.GrandTotal,
		PaymentType: string(order.PaymentType),
		OrderStatus: string(order.Status),
		OrderBy:     NewUserView(order.OrderBy),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

// NewOrderViews maps an order list.
func NewOrderViews(orders []domain.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, *NewOrderView(&orders[i]))
	}
	return views
}
