package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// OrdersHandler exposes order endpoints.
type OrdersHandler struct {
	orders   *service.OrderService
	resolver *auth.Resolver
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService, resolver *auth.Resolver) *OrdersHandler {
	return &OrdersHandler{orders: orders, resolver: resolver}
}

// Place handles POST /api/orders/place.
func (h *OrdersHandler) Place(c *fiber.Ctx) error {
	user, err := h.resolver.Resolve(c)
	if err != nil {
		return err
	}

	var req dto.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request payload")
	}

	order, err := h.orders.Place(c.UserContext(), req.ToDomain(user.ID))
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("Order Creation is Success", dto.NewOrderView(order)))
}

// ListAll handles GET /api/orders/all.
func (h *OrdersHandler) ListAll(c *fiber.Ctx) error {
	if _, err := h.resolver.Resolve(c); err != nil {
		return err
	}

	orders, err := h.orders.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("", dto.NewOrderViews(orders)))
}

// ListMine handles GET /api/orders/me.
func (h *OrdersHandler) ListMine(c *fiber.Ctx) error {
	user, err := h.resolver.Resolve(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.ListMine(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("", dto.NewOrderViews(orders)))
}

// UpdateStatus handles POST /api/orders/:orderId.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	if _, err := h.resolver.Resolve(c); err != nil {
		return err
	}

	var req dto.OrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request payload")
	}

	order, err := h.orders.UpdateStatus(c.UserContext(), c.Params("orderId"), domain.OrderStatus(req.OrderStatus))
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("Order status is Updated", dto.NewOrderView(order)))
}
