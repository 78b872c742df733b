package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("k", time.Hour)

	token, exp, err := tm.Issue("u1", "u1@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1@example.com", claims.Email)
	assert.Equal(t, "u1", claims.Subject)
}

func TestTokenWrongKey(t *testing.T) {
	issuer := NewTokenManager("k", time.Hour)
	verifier := NewTokenManager("wrong", time.Hour)

	token, _, err := issuer.Issue("u1", "u1@example.com")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("k", time.Millisecond)

	token, _, err := tm.Issue("u1", "u1@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := tm.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenMalformed(t *testing.T) {
	tm := NewTokenManager("k", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		claims, err := tm.Verify(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	}
}

func TestTokenNoSecret(t *testing.T) {
	tm := NewTokenManager("", time.Hour)

	_, _, err := tm.Issue("u1", "u1@example.com")
	assert.ErrorIs(t, err, ErrNoSecret)

	_, err = tm.Verify("anything")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestTokenTTLFallback(t *testing.T) {
	tm := NewTokenManager("k", 0)

	_, exp, err := tm.Issue("u1", "u1@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, 5*time.Second)
}
