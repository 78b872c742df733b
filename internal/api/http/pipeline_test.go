package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/api/validation"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/observability"
)

type envelope struct {
	Msg    string          `json:"msg"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func newTestApp(tokens *auth.TokenManager, handlerCalled *bool) *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)

	gate := auth.NewMiddleware(tokens)
	app.Get("/protected", gate.Handle, func(c *fiber.Ctx) error {
		*handlerCalled = true
		claims, _ := auth.ClaimsFromContext(c)
		return c.JSON(dto.Success("", fiber.Map{"id": claims.UserID, "email": claims.Email}))
	})
	app.Post("/validated", gate.Handle, validation.Body(
		validation.Required("title", "title is required"),
		validation.Required("price", "price is required"),
	), func(c *fiber.Ctx) error {
		*handlerCalled = true
		return c.JSON(dto.Success("ok", nil))
	})
	return app
}

func decodeEnvelope(t *testing.T, body io.Reader) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func TestPipelineNoToken(t *testing.T) {
	var handlerCalled bool
	app := newTestApp(auth.NewTokenManager("k", time.Hour), &handlerCalled)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 401, resp.StatusCode)
	assert.False(t, handlerCalled)

	env := decodeEnvelope(t, resp.Body)
	assert.Equal(t, "No Token Provided!", env.Msg)
	assert.Equal(t, dto.StatusFailed, env.Status)
	assert.Equal(t, "null", string(env.Data))
}

func TestPipelineInvalidToken(t *testing.T) {
	var handlerCalled bool
	app := newTestApp(auth.NewTokenManager("k", time.Hour), &handlerCalled)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(auth.TokenHeader, "not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 401, resp.StatusCode)
	assert.False(t, handlerCalled)
	assert.Equal(t, "An Invalid Token!", decodeEnvelope(t, resp.Body).Msg)
}

func TestPipelineForeignKeyToken(t *testing.T) {
	var handlerCalled bool
	app := newTestApp(auth.NewTokenManager("k", time.Hour), &handlerCalled)

	foreign := auth.NewTokenManager("wrong", time.Hour)
	token, _, err := foreign.Issue("u1", "u1@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(auth.TokenHeader, token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 401, resp.StatusCode)
	assert.False(t, handlerCalled)
}

func TestPipelineValidToken(t *testing.T) {
	var handlerCalled bool
	tokens := auth.NewTokenManager("k", time.Hour)
	app := newTestApp(tokens, &handlerCalled)

	token, _, err := tokens.Issue("u1", "u1@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set(auth.TokenHeader, token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, handlerCalled)

	env := decodeEnvelope(t, resp.Body)
	assert.Equal(t, dto.StatusSuccess, env.Status)
	assert.JSONEq(t, `{"id":"u1","email":"u1@example.com"}`, string(env.Data))
}

func TestPipelineValidationAggregatesFailures(t *testing.T) {
	var handlerCalled bool
	tokens := auth.NewTokenManager("k", time.Hour)
	app := newTestApp(tokens, &handlerCalled)

	token, _, err := tokens.Issue("u1", "u1@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/validated", strings.NewReader(`{}`))
	req.Header.Set(auth.TokenHeader, token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
	assert.False(t, handlerCalled)

	env := decodeEnvelope(t, resp.Body)
	assert.Equal(t, "title is required\nprice is required", env.Msg)
	assert.Equal(t, dto.StatusFailed, env.Status)
}

func TestPipelineValidationSingleFailure(t *testing.T) {
	var handlerCalled bool
	tokens := auth.NewTokenManager("k", time.Hour)
	app := newTestApp(tokens, &handlerCalled)

	token, _, err := tokens.Issue("u1", "u1@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/validated", strings.NewReader(`{"title":"Widget"}`))
	req.Header.Set(auth.TokenHeader, token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "price is required", decodeEnvelope(t, resp.Body).Msg)
}

func TestPipelineValidationPassThrough(t *testing.T) {
	var handlerCalled bool
	tokens := auth.NewTokenManager("k", time.Hour)
	app := newTestApp(tokens, &handlerCalled)

	token, _, err := tokens.Issue("u1", "u1@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/validated", strings.NewReader(`{"title":"Widget","price":9.99}`))
	req.Header.Set(auth.TokenHeader, token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, handlerCalled)
}

// Validation must never run before the token gate: a missing token wins even
// when the payload is also invalid.
func TestPipelineAuthBeforeValidation(t *testing.T) {
	var handlerCalled bool
	app := newTestApp(auth.NewTokenManager("k", time.Hour), &handlerCalled)

	req := httptest.NewRequest("POST", "/validated", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, "No Token Provided!", decodeEnvelope(t, resp.Body).Msg)
	assert.False(t, handlerCalled)
}
