package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// TokenHeader is the inbound header carrying the raw access token. The name
// predates this service; existing clients send it instead of Authorization.
const TokenHeader = "x-auth-token"

const claimsKey = "auth_claims"

// Middleware gates protected routes on a verified token.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle rejects requests without a valid token and attaches the decoded
// claims to the request locals for downstream handlers. A missing secret is a
// server fault, not a client one, and is reported as such.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := c.Get(TokenHeader)
	if token == "" {
		return apperrors.NewUnauthorized("No Token Provided!")
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, ErrNoSecret) {
			return apperrors.NewInternalError(err)
		}
		return apperrors.NewUnauthorized("An Invalid Token!")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the decoded claims set by Handle.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
