package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// CartItemRequest is one product line in a cart payload.
type CartItemRequest struct {
	Product string          `json:"product"`
	Count   int             `json:"count"`
	Price   decimal.Decimal `json:"price"`
}

// CartRequest payload for creating (replacing) the cart.
type CartRequest struct {
	Products   []CartItemRequest `json:"products"`
	Total      decimal.Decimal   `json:"total"`
	Tax        decimal.Decimal   `json:"tax"`
	GrandTotal decimal.Decimal   `json:"grandTotal"`
}

// ToDomain builds the domain cart for the given owner.
func (r CartRequest) ToDomain(userID string) *domain.Cart {
	items := make([]domain.CartItem, 0, len(r.Products))
	for _, item := range r.Products {
		items = append(items, domain.CartItem{
			ProductID: item.Product,
			Count:     item.Count,
			Price:     item.Price,
		})
	}
	return &domain.Cart{
		UserID:     userID,
		Items:      items,
		Total:      r.Total,
		Tax:        r.Tax,
		GrandTotal: r.GrandTotal,
	}
}

// CartItemView response shape.
type CartItemView struct {
	ID      string          `json:"id"`
	Product *ProductView    `json:"productObj,omitempty"`
	Count   int             `json:"count"`
	Price   decimal.Decimal `json:"price"`
}

// CartView response shape with items and owner expanded.
type CartView struct {
	ID         string          `json:"id"`
	Products   []CartItemView  `json:"products"`
	Total      decimal.Decimal `json:"total"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	Owner      *UserView       `json:"userObj,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// NewCartView maps a domain cart to its response shape.
func NewCartView(cart *domain.Cart) *CartView {
	if cart == nil {
		return nil
	}
	items := make([]CartItemView, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		items = append(items, CartItemView{
			ID:      item.ID,
			Product: NewProductView(item.Product),
			Count:   item.Count,
			Price:   item.Price,
		})
	}
	return &CartView{
		ID:         cart.ID,
		Products:   items,
		Total:      cart.Total,
		Tax:        cart.Tax,
		GrandTotal: cart.GrandTotal,
		Owner:      NewUserView(cart.Owner),
		CreatedAt:  cart.CreatedAt,
		UpdatedAt:  cart.UpdatedAt,
	}
}
