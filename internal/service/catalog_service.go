package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CatalogService manages categories and subcategories.
type CatalogService struct {
	categories repository.CategoryRepository
}

// NewCatalogService builds the service.
func NewCatalogService(categories repository.CategoryRepository) *CatalogService {
	return &CatalogService{categories: categories}
}

// CreateCategory adds a new top-level category with a unique name.
func (s *CatalogService) CreateCategory(ctx context.Context, name, description string) (*domain.Category, error) {
	if _, err := s.categories.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewConflict("Category is Already exists!")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	category := &domain.Category{Name: name, Description: description, SubCategories: []domain.SubCategory{}}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// CreateSubCategory adds a subcategory under an existing category and returns
// the category with its subcategories expanded.
func (s *CatalogService) CreateSubCategory(ctx context.Context, categoryID, name, description string) (*domain.Category, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Category is not exists!")
		}
		return nil, apperrors.MapError(err)
	}

	if _, err := s.categories.GetSubCategoryByName(ctx, name); err == nil {
		return nil, apperrors.NewConflict("SubCategory is already exists!")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	sub := &domain.SubCategory{CategoryID: categoryID, Name: name, Description: description}
	if err := s.categories.CreateSubCategory(ctx, sub); err != nil {
		return nil, apperrors.MapError(err)
	}

	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return category, nil
}

// ListCategories returns all categories with subcategories expanded.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return categories, nil
}
