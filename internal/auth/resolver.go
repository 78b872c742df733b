package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// Resolver loads the authoritative user record for the verified claims on a
// request. The lookup runs fresh on every call so a deleted account is
// rejected immediately; tokens themselves are not revoked on deletion, which
// is why the not-found case is reachable with a formerly valid token.
type Resolver struct {
	users repository.UserRepository
}

// NewResolver constructs a resolver over the user repository.
func NewResolver(users repository.UserRepository) *Resolver {
	return &Resolver{users: users}
}

// Resolve returns the current user for the claims set by the token
// middleware.
func (r *Resolver) Resolve(c *fiber.Ctx) (*domain.User, error) {
	claims, ok := ClaimsFromContext(c)
	if !ok || claims.UserID == "" {
		return nil, apperrors.NewUnauthorized("Invalid User Request")
	}

	user, err := r.users.GetByID(c.UserContext(), claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("User is not found")
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}
