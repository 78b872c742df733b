package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// AddressService manages the single shipping address per user.
type AddressService struct {
	addresses repository.AddressRepository
}

// NewAddressService builds the service.
func NewAddressService(addresses repository.AddressRepository) *AddressService {
	return &AddressService{addresses: addresses}
}

// CreateOrReplace removes any existing address for the user and stores the
// new one. Name and email are snapshotted from the current user record.
func (s *AddressService) CreateOrReplace(ctx context.Context, user *domain.User, address *domain.Address) (*domain.Address, error) {
	if err := s.addresses.DeleteByUserID(ctx, user.ID); err != nil {
		return nil, apperrors.MapError(err)
	}

	address.UserID = user.ID
	address.Name = user.Username
	address.Email = user.Email
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, apperrors.MapError(err)
	}
	return address, nil
}

// Update rewrites an existing address.
func (s *AddressService) Update(ctx context.Context, user *domain.User, address *domain.Address) (*domain.Address, error) {
	existing, err := s.addresses.GetByID(ctx, address.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("No Address Found")
		}
		return nil, apperrors.MapError(err)
	}

	address.UserID = existing.UserID
	address.Name = user.Username
	address.Email = user.Email
	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.addresses.GetByID(ctx, address.ID)
}

// GetMine returns the user's shipping address.
func (s *AddressService) GetMine(ctx context.Context, userID string) (*domain.Address, error) {
	address, err := s.addresses.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("No Address Found!")
		}
		return nil, apperrors.MapError(err)
	}
	return address, nil
}

// Delete removes an address by id and returns the deleted record.
func (s *AddressService) Delete(ctx context.Context, id string) (*domain.Address, error) {
	address, err := s.addresses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("No Address Found")
		}
		return nil, apperrors.MapError(err)
	}
	if err := s.addresses.Delete(ctx, id); err != nil {
		return nil, apperrors.MapError(err)
	}
	return address, nil
}
