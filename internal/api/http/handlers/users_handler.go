package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	auth     *service.AuthService
	resolver *auth.Resolver
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, resolver *auth.Resolver) *UsersHandler {
	return &UsersHandler{auth: authService, resolver: resolver}
}

// Register handles POST /api/users/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request payload")
	}

	user, err := h.auth.Register(c.UserContext(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(dto.Success("Registration is Success", dto.NewUserView(user)))
}

// Login handles POST /api/users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request payload")
	}

	clientKey := req.Email + "|" + c.IP()
	user, token, exp, err := h.auth.Login(c.UserContext(), req.Email, req.Password, clientKey)
	if err != nil {
		return err
	}

	return c.JSON(dto.Success("Login is Success", fiber.Map{
		"user": dto.NewUserView(user),
		"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
	}))
}

// Me handles GET /api/users/me.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	user, err := h.resolver.Resolve(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("", dto.NewUserView(user)))
}

// UpdateProfilePicture handles POST /api/users/profile.
func (h *UsersHandler) UpdateProfilePicture(c *fiber.Ctx) error {
	user, err := h.resolver.Resolve(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request payload")
	}

	updated, err := h.auth.UpdateProfilePicture(c.UserContext(), user, req.ImageURL)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("Profile picture is updated", dto.NewUserView(updated)))
}

// ChangePassword handles POST /api/users/change-password.
func (h *UsersHandler) ChangePassword(c *fiber.Ctx) error {
	user, err := h.resolver.Resolve(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request payload")
	}

	updated, err := h.auth.ChangePassword(c.UserContext(), user, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success("Password is changed", dto.NewUserView(updated)))
}
