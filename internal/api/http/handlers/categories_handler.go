package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// CategoriesHandler exposes catalog category endpoints.
type CategoriesHandler struct {
	catalog  *service.CatalogService
	resolver *auth.Resolver
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(catalog *service.CatalogService, resolver *auth.Resolver) *CategoriesHandler {
	return &CategoriesHandler{catalog: catalog, resolver: resolver}
}

// Create handles POST /api/categories/.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	if _, err := h.resolver.Resolve(c); err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request payload")
	}

	category, err := h.catalog.CreateCategory(c.UserContext(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("New Category is Created!", dto.NewCategoryView(category)))
}

// CreateSubCategory handles POST /api/categories/:categoryId.
func (h *CategoriesHandler) CreateSubCategory(c *fiber.Ctx) error {
	if _, err := h.resolver.Resolve(c); err != nil {
		return err
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request payload")
	}

	category, err := h.catalog.CreateSubCategory(c.UserContext(), c.Params("categoryId"), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success("Sub Category is Created", dto.NewCategoryView(category)))
}

// List handles GET /api/categories/.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("Categories Found", dto.NewCategoryViews(categories)))
}
