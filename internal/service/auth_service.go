package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// AuthService coordinates registration, login and account maintenance.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	limiter    *auth.LoginLimiter
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Limiter    *auth.LoginLimiter
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokens:     auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		limiter:    deps.Limiter,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account with a hashed password and a gravatar-based
// profile image.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("User is already exists!")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		ImageURL:     gravatarURL(email),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserRegistered,
			EntityID:  user.ID,
			UserID:    user.ID,
			Timestamp: time.Now(),
			Payload:   events.UserRegisteredPayload{Username: user.Username, Email: user.Email},
		})
	}
	return user, nil
}

// Login authenticates by email and password and issues an access token.
// clientKey identifies the caller for rate limiting (email plus remote IP).
func (s *AuthService) Login(ctx context.Context, email, password, clientKey string) (*domain.User, string, time.Time, error) {
	if !s.limiter.Allow(ctx, clientKey) {
		return nil, "", time.Time{}, apperrors.NewDomainError("TOO_MANY_REQUESTS", "Too many login attempts, try again later", 429)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid Credentials Email")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid Credentials Password!")
	}

	token, exp, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	s.limiter.Reset(ctx, clientKey)
	return user, token, exp, nil
}

// UpdateProfilePicture stores a new profile image URL on the user record.
func (s *AuthService) UpdateProfilePicture(ctx context.Context, user *domain.User, imageURL string) (*domain.User, error) {
	user.ImageURL = imageURL
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// ChangePassword replaces the user's password hash.
func (s *AuthService) ChangePassword(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(sum[:]))
}
