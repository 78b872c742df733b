package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CartService manages the single open cart per user.
type CartService struct {
	carts repository.CartRepository
}

// NewCartService builds the service.
func NewCartService(carts repository.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// Replace discards the user's existing cart, stores the new one and returns
// it with items and owner expanded. Totals are stored exactly as supplied.
func (s *CartService) Replace(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	if err := s.carts.Replace(ctx, cart); err != nil {
		return nil, apperrors.MapError(err)
	}

	stored, err := s.carts.GetByUserID(ctx, cart.UserID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return stored, nil
}

// GetMine returns the user's cart, or nil when no cart exists yet.
func (s *CartService) GetMine(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.MapError(err)
	}
	return cart, nil
}
