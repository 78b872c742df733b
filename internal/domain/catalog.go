package domain

import "time"

// Category groups products at the top level.
type Category struct {
	ID            string
	Name          string
	Description   string
	SubCategories []SubCategory
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SubCategory is a second-level grouping owned by exactly one category.
type SubCategory struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
