package middleware

import (
	"fmt"
	"strings"

	"absss-backend/internal/auth"
	"absss-backend/internal/errs"
	"absss-backend/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const claimsKey = "claims"

func bearerToken(c *fiber.Ctx) (string, bool) {
	h := c.Get(fiber.HeaderAuthorization)
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(h[7:])
	return tok, tok != ""
}

func verifyInto(c *fiber.Ctx, tm *auth.TokenManager, tok string) error {
	claims, err := tm.Verify(tok)
	if err != nil {
		return err
	}
	c.Locals(claimsKey, claims)
	c.Locals("user_id", claims.UID)
	return nil
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(tm *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok, ok := bearerToken(c)
		if !ok {
			return fmt.Errorf("missing bearer token: %w", errs.ErrTokenInvalid)
		}
		if err := verifyInto(c, tm, tok); err != nil {
			return err
		}
		return c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is sent. A missing,
// expired or malformed token leaves the caller anonymous.
func OptionalAuth(tm *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}
		if err := verifyInto(c, tm, tok); err != nil {
			logger.FromCtx(c).Debug("ignoring bearer token on public route", zap.Error(err))
		}
		return c.Next()
	}
}

// RequireCapability must run after RequireAuth.
func RequireCapability(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromLocals(c)
		if !ok {
			return fmt.Errorf("missing bearer token: %w", errs.ErrTokenInvalid)
		}
		if !claims.Can(capability) {
			return fmt.Errorf("%s requires %q: %w", claims.Username, capability, errs.ErrForbidden)
		}
		return c.Next()
	}
}
