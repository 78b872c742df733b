package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// ProductsHandler exposes catalog product endpoints.
type ProductsHandler struct {
	products *service.ProductService
	resolver *auth.Resolver
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products *service.ProductService, resolver *auth.Resolver) *ProductsHandler {
	return &ProductsHandler{products: products, resolver: resolver}
}

// Create handles POST /api/products/.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	user, err := h.resolver.Resolve(c)
	if err != nil {
		return err
	}

	req, err := parseProductRequest(c)
	if err != nil {
		return err
	}

	created, err := h.products.Create(c.UserContext(), productFromRequest(req, user.ID))
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("Product is Created Successfully", dto.NewProductView(created)))
}

// Update handles PUT /api/products/:productId.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	user, err := h.resolver.Resolve(c)
	if err != nil {
		return err
	}

	req, err := parseProductRequest(c)
	if err != nil {
		return err
	}

	product := productFromRequest(req, user.ID)
	product.ID = c.Params("productId")

	updated, err := h.products.Update(c.UserContext(), product)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("Product is Updated Successfully", dto.NewProductView(updated)))
}

// List handles GET /api/products/.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	if _, err := h.resolver.Resolve(c); err != nil {
		return err
	}

	products, err := h.products.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("", dto.NewProductViews(products)))
}

// Get handles GET /api/products/:productId.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	if _, err := h.resolver.Resolve(c); err != nil {
		return err
	}

	product, err := h.products.Get(c.UserContext(), c.Params("productId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("", dto.NewProductView(product)))
}

// Delete handles DELETE /api/products/:productId.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.resolver.Resolve(c); err != nil {
		return err
	}

	deleted, err := h.products.Delete(c.UserContext(), c.Params("productId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("The Product is Deleted!", dto.NewProductView(deleted)))
}

// ListByCategory handles GET /api/products/categories/:categoryId.
func (h *ProductsHandler) ListByCategory(c *fiber.Ctx) error {
	if _, err := h.resolver.Resolve(c); err != nil {
		return err
	}

	products, err := h.products.ListByCategory(c.UserContext(), c.Params("categoryId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("", dto.NewProductViews(products)))
}

func parseProductRequest(c *fiber.Ctx) (dto.ProductRequest, error) {
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperrors.NewValidationError("invalid request payload")
	}
	return req, nil
}

func productFromRequest(req dto.ProductRequest, userID string) *domain.Product {
	return &domain.Product{
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Brand:         req.Brand,
		Price:         req.Price,
		Quantity:      req.Quantity,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		UserID:        userID,
	}
}
