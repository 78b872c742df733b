package validation

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	ozzo "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func TestStrongPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"accepts mixed password", "Abcdef1!", true},
		{"rejects short password", "Ab1!", false},
		{"rejects missing upper", "abcdef1!", false},
		{"rejects missing lower", "ABCDEF1!", false},
		{"rejects missing digit", "Abcdefg!", false},
		{"rejects missing symbol", "Abcdefg1", false},
		{"rejects empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := strongPassword(tc.password)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFieldRules(t *testing.T) {
	required := Required("username", "username is required")
	assert.Error(t, ozzo.Validate(nil, required.Rules...))
	assert.Error(t, ozzo.Validate("", required.Rules...))
	assert.NoError(t, ozzo.Validate("jane", required.Rules...))

	email := Email("email", "email is not valid")
	assert.Error(t, ozzo.Validate("not-an-email", email.Rules...))
	assert.NoError(t, ozzo.Validate("jane@example.com", email.Rules...))

	password := StrongPassword("password", "Strong password is required")
	assert.Error(t, ozzo.Validate("weak", password.Rules...))
	assert.NoError(t, ozzo.Validate("Abcdef1!", password.Rules...))
}

// bodyError runs the Body middleware against a raw payload and returns the
// error it produced, nil when the request passed through.
func bodyError(t *testing.T, body string, fields ...Field) error {
	t.Helper()

	var captured error
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			captured = err
			return c.SendStatus(fiber.StatusBadRequest)
		},
	})
	app.Post("/", Body(fields...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	_, err := app.Test(req)
	require.NoError(t, err)
	return captured
}

func TestBodyCollectsAllFailures(t *testing.T) {
	err := bodyError(t, `{}`,
		Required("title", "title is required"),
		Required("price", "price is required"),
	)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, fiber.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "title is required\nprice is required", domainErr.Message)
}

func TestBodyRejectsMalformedJSON(t *testing.T) {
	err := bodyError(t, `{"title":`, Required("title", "title is required"))
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "invalid request payload", domainErr.Message)
}

func TestBodyPassesCleanPayload(t *testing.T) {
	err := bodyError(t, `{"title":"Desk Lamp","price":"19.99"}`,
		Required("title", "title is required"),
		Required("price", "price is required"),
	)
	assert.NoError(t, err)
}
