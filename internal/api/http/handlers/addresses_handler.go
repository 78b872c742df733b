package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// AddressesHandler exposes shipping address endpoints.
type AddressesHandler struct {
	addresses *service.AddressService
	resolver  *auth.Resolver
}

// NewAddressesHandler constructs handler.
func NewAddressesHandler(addresses *service.AddressService, resolver *auth.Resolver) *AddressesHandler {
	return &AddressesHandler{addresses: addresses, resolver: resolver}
}

// Create handles POST /api/addresses/new.
func (h *AddressesHandler) Create(c *fiber.Ctx) error {
	user, err := h.resolver.Resolve(c)
	if err != nil {
		return err
	}

	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request payload")
	}

	address, err := h.addresses.CreateOrReplace(c.UserContext(), user, req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("New Shipping Address is added", dto.NewAddressView(address)))
}

// Update handles PUT /api/addresses/:addressId.
func (h *AddressesHandler) Update(c *fiber.Ctx) error {
	user, err := h.resolver.Resolve(c)
	if err != nil {
		return err
	}

	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request payload")
	}

	address := req.ToDomain()
	address.ID = c.Params("addressId")

	updated, err := h.addresses.Update(c.UserContext(), user, address)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("Shipping Address is Updated!", dto.NewAddressView(updated)))
}

// GetMine handles GET /api/addresses/me.
func (h *AddressesHandler) GetMine(c *fiber.Ctx) error {
	user, err := h.resolver.Resolve(c)
	if err != nil {
		return err
	}

	address, err := h.addresses.GetMine(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("Address Found", dto.NewAddressView(address)))
}

// Delete handles DELETE /api/addresses/:addressId.
func (h *AddressesHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.resolver.Resolve(c); err != nil {
		return err
	}

	deleted, err := h.addresses.Delete(c.UserContext(), c.Params("addressId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("Shipping Address is Deleted", dto.NewAddressView(deleted)))
}
