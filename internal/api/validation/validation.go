package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// Field binds one request-body field to its rules and the message reported
// when any rule fails. Route rule tables are composed from these once at
// startup and reused for every request.
type Field struct {
	Name    string
	Message string
	Rules   []validation.Rule
}

// Required fails when the field is absent or empty.
func Required(name, message string) Field {
	return Field{Name: name, Message: message, Rules: []validation.Rule{validation.Required}}
}

// Email fails when the field is absent or not an email address.
func Email(name, message string) Field {
	return Field{Name: name, Message: message, Rules: []validation.Rule{validation.Required, is.Email}}
}

// StrongPassword requires at least 8 characters mixing lower, upper, digit
// and symbol.
func StrongPassword(name, message string) Field {
	return Field{Name: name, Message: message, Rules: []validation.Rule{
		validation.Required,
		validation.By(strongPassword),
	}}
}

// Body returns middleware that checks the JSON body against the given fields.
// All failures are collected and reported together, joined with newlines; a
// clean payload passes through untouched. On protected routes this middleware
// is registered after the token gate so unauthenticated callers never see
// field-level feedback.
func Body(fields ...Field) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := map[string]any{}
		if body := c.Body(); len(body) > 0 {
			if err := json.Unmarshal(body, &payload); err != nil {
				return apperrors.NewValidationError("invalid request payload")
			}
		}

		var messages []string
		for _, field := range fields {
			if err := validation.Validate(payload[field.Name], field.Rules...); err != nil {
				messages = append(messages, field.Message)
			}
		}
		if len(messages) > 0 {
			return apperrors.NewValidationError(strings.Join(messages, "\n"))
		}
		return c.Next()
	}
}

func strongPassword(value interface{}) error {
	s, _ := value.(string)
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if len(s) < 8 || !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return errors.New("must be a strong password")
	}
	return nil
}
