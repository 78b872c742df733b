package auth

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/domain"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// resolveWith runs Resolve inside a request whose locals carry the given
// claims (nil means no claims attached at all).
func resolveWith(t *testing.T, repo *fakeUserRepo, claims *Claims) (*domain.User, error) {
	t.Helper()

	resolver := NewResolver(repo)

	var (
		resolved   *domain.User
		resolveErr error
	)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if claims != nil {
			c.Locals(claimsKey, claims)
		}
		resolved, resolveErr = resolver.Resolve(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	resp.Body.Close()

	return resolved, resolveErr
}

func TestResolverReturnsCurrentUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", Username: "alice", Email: "u1@example.com"},
	}}

	user, err := resolveWith(t, repo, &Claims{UserID: "u1", Email: "u1@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestResolverMissingClaims(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{}}

	_, err := resolveWith(t, repo, nil)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 401, domainErr.HTTPStatus)
	assert.Equal(t, "Invalid User Request", domainErr.Message)
}

func TestResolverEmptySubject(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{}}

	_, err := resolveWith(t, repo, &Claims{UserID: ""})
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.ToDomainError(err).HTTPStatus)
}

func TestResolverDeletedUser(t *testing.T) {
	// The token is still valid; only the user row is gone. Deletion must be
	// observed on the very next request.
	repo := &fakeUserRepo{users: map[string]*domain.User{}}

	_, err := resolveWith(t, repo, &Claims{UserID: "u1"})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	assert.Equal(t, "User is not found", domainErr.Message)
}
