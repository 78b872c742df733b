package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CartsHandler exposes shopping cart endpoints.
type CartsHandler struct {
	carts    *service.CartService
	resolver *auth.Resolver
}

// NewCartsHandler constructs handler.
func NewCartsHandler(carts *service.CartService, resolver *auth.Resolver) *CartsHandler {
	return &CartsHandler{carts: carts, resolver: resolver}
}

// Create handles POST /api/carts/: it replaces any existing cart.
func (h *CartsHandler) Create(c *fiber.Ctx) error {
	user, err := h.resolver.Resolve(c)
	if err != nil {
		return err
	}

	var req dto.CartRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request payload")
	}

	cart, err := h.carts.Replace(c.UserContext(), req.ToDomain(user.ID))
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("Cart Creation is Success", dto.NewCartView(cart)))
}

// GetMine handles GET /api/carts/me.
func (h *CartsHandler) GetMine(c *fiber.Ctx) error {
	user, err := h.resolver.Resolve(c)
	if err != nil {
		return err
	}

	cart, err := h.carts.GetMine(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	if cart == nil {
		return c.JSON(dto.Success("", nil))
	}
	return c.JSON(dto.Success("", dto.NewCartView(cart)))
}
