package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "storefront-service", cfg.App.Name)
	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 10, cfg.RateLimit.LoginMaxAttempts)
}

func TestLoadClampsExcessiveTokenTTL(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	// roughly the original deployment's effectively-infinite expiry
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "99999999999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL())
}

func TestLoadRejectsNonPositiveTokenTTL(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "-5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL())
}

func TestLoadHonorsBoundedTTLOverride(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "60")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL())
}
