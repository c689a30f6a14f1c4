package controllers

import (
	"strings"

	"absss-backend/internal/errs"

	"github.com/gofiber/fiber/v2"
)

// parseJSON decodes the body into v. A malformed body is reported like any
// other validation failure.
func parseJSON(c *fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if !strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEApplicationJSON) {
		return errs.NewValidationError(errs.Field("body", "content type must be application/json"))
	}
	if err := c.BodyParser(v); err != nil {
		return errs.NewValidationError(errs.Field("body", "invalid request body"))
	}
	return nil
}
