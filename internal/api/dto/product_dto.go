package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ProductRequest payload for product create/update.
type ProductRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"imageUrl"`
	Brand         string          `json:"brand"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	CategoryID    string          `json:"categoryId"`
	SubCategoryID string          `json:"subCategoryId"`
}

// ProductView response shape with references expanded.
type ProductView struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl"`
	Brand       string           `json:"brand"`
	Price       decimal.Decimal  `json:"price"`
	Quantity    int              `json:"quantity"`
	Category    *SubCategoryView `json:"categoryObj,omitempty"`
	SubCategory *SubCategoryView `json:"subCategoryObj,omitempty"`
	Seller      *UserView        `json:"userObj,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// NewProductView maps a domain product to its response shape.
func NewProductView(product *domain.Product) *ProductView {
	if product == nil {
		return nil
	}
	view := &ProductView{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Brand:       product.Brand,
		Price:       product.Price,
		Quantity:    product.Quantity,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.Category != nil {
		view.Category = &SubCategoryView{
			ID:          product.Category.ID,
			Name:        product.Category.Name,
			Description: product.Category.Description,
		}
	}
	if product.SubCategory != nil {
		view.SubCategory = &SubCategoryView{
			ID:          product.SubCategory.ID,
			Name:        product.SubCategory.Name,
			Description: product.SubCategory.Description,
		}
	}
	if product.Seller != nil {
		view.Seller = NewUserView(product.Seller)
	}
	return view
}

// NewProductViews maps a product list.
func NewProductViews(products []domain.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, *NewProductView(&products[i]))
	}
	return views
}
