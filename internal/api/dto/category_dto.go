package dto

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// CategoryRequest payload for categories and subcategories.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SubCategoryView response shape.
type SubCategoryView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryView response shape with subcategories expanded.
type CategoryView struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	SubCategories []SubCategoryView `json:"subCategories"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// NewCategoryView maps a domain category to its response shape.
func NewCategoryView(category *domain.Category) *CategoryView {
	if category == nil {
		return nil
	}
	subs := make([]SubCategoryView, 0, len(category.SubCategories))
	for _, sub := range category.SubCategories {
		subs = append(subs, SubCategoryView{ID: sub.ID, Name: sub.Name, Description: sub.Description})
	}
	return &CategoryView{
		ID:            category.ID,
		Name:          category.Name,
		Description:   category.Description,
		SubCategories: subs,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}

// NewCategoryViews maps a category list.
func NewCategoryViews(categories []domain.Category) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for i := range categories {
		views = append(views, *NewCategoryView(&categories[i]))
	}
	return views
}
