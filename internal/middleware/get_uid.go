package middleware

import (
	"absss-backend/internal/auth"
	"absss-backend/internal/errs"

	"github.com/gofiber/fiber/v2"
)

// ClaimsFromLocals returns the claims stored by RequireAuth or OptionalAuth.
func ClaimsFromLocals(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}

func UIDFromLocals(c *fiber.Ctx) (string, error) {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return "", errs.ErrTokenInvalid
	}
	return uid, nil
}

// CanFromLocals reports whether the optional caller holds capability.
// Anonymous callers hold none.
func CanFromLocals(c *fiber.Ctx, capability string) bool {
	claims, ok := ClaimsFromLocals(c)
	return ok && claims.Can(capability)
}
