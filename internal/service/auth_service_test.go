package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

type memoryUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*domain.User{}}
}

func (m *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	m.seq++
	user.ID = fmt.Sprintf("u%d", m.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = user
	return nil
}

func (m *memoryUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.users[user.ID] = user
	return nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newTestAuthService(repo *memoryUserRepo) *AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "k",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4,
		},
	}
	return NewAuthService(cfg, AuthDependencies{
		UserRepo: repo,
		Limiter:  auth.NewLoginLimiter(nil, 10, time.Minute),
	})
}

func TestRegisterHashesPasswordAndSetsGravatar(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "u1@example.com", "Secret1!pass")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "Secret1!pass", user.PasswordHash)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "Secret1!pass"))
	assert.Contains(t, user.ImageURL, "gravatar.com/avatar/")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "alice", "u1@example.com", "Secret1!pass")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "bob", "u1@example.com", "Other1!pass")
	require.Error(t, err)
	assert.Equal(t, 409, apperrors.ToDomainError(err).HTTPStatus)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), "alice", "u1@example.com", "Secret1!pass")
	require.NoError(t, err)

	user, token, exp, err := svc.Login(context.Background(), "u1@example.com", "Secret1!pass", "u1@example.com|test")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.True(t, exp.After(time.Now()))

	claims, err := svc.TokenManager().Verify(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "u1@example.com", claims.Email)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newMemoryUserRepo())

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "Secret1!pass", "key")
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 401, domainErr.HTTPStatus)
	assert.Equal(t, "Invalid Credentials Email", domainErr.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "alice", "u1@example.com", "Secret1!pass")
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "u1@example.com", "wrong", "key")
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 401, domainErr.HTTPStatus)
	assert.Equal(t, "Invalid Credentials Password!", domainErr.Message)
}

func TestChangePassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "u1@example.com", "Secret1!pass")
	require.NoError(t, err)

	updated, err := svc.ChangePassword(context.Background(), user, "New1!password")
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePassword(updated.PasswordHash, "New1!password"))
	assert.Error(t, auth.ComparePassword(updated.PasswordHash, "Secret1!pass"))
}
