package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// ProductService manages catalog products.
type ProductService struct {
	products repository.ProductRepository
}

// NewProductService builds the service.
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create stores a new product with a unique title, owned by the creating user.
func (s *ProductService) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if _, err := s.products.GetByTitle(ctx, product.Title); err == nil {
		return nil, apperrors.NewConflict("The Product is already exists!")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.Get(ctx, product.ID)
}

// Update replaces the mutable fields of an existing product.
func (s *ProductService) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := s.products.Update(ctx, product); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("The Product is not exists!")
		}
		return nil, apperrors.MapError(err)
	}
	return s.Get(ctx, product.ID)
}

// Get returns one product with category, subcategory and seller expanded.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("The Product is not found")
		}
		return nil, apperrors.MapError(err)
	}
	return product, nil
}

// List returns every product, newest first.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return products, nil
}

// ListByCategory returns the products in one category, newest first.
func (s *ProductService) ListByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	products, err := s.products.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return products, nil
}

// Delete removes a product and returns the deleted record.
func (s *ProductService) Delete(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return nil, apperrors.MapError(err)
	}
	return product, nil
}
