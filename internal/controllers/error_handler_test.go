package controllers

import (
	"errors"
	"fmt"
	"testing"

	"absss-backend/internal/errs"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"not found", fmt.Errorf("event 1: %w", errs.ErrNotFound), fiber.StatusNotFound, "not found"},
		{"bad credentials", errs.ErrInvalidCredentials, fiber.StatusUnauthorized, "invalid credentials"},
		{"expired", fmt.Errorf("verify: %w", errs.ErrTokenExpired), fiber.StatusUnauthorized, "token expired"},
		{"bad token", errs.ErrTokenInvalid, fiber.StatusUnauthorized, "invalid token"},
		{"forbidden", errs.ErrForbidden, fiber.StatusForbidden, "forbidden"},
		{"conflict keeps reason", fmt.Errorf("ada is the last active admin: %w", errs.ErrConflict), fiber.StatusConflict, "ada is the last active admin"},
		{"bare conflict", errs.ErrConflict, fiber.StatusConflict, "conflict"},
		{"storage", fmt.Errorf("find events: %w", errs.ErrStorageUnavailable), fiber.StatusServiceUnavailable, "storage unavailable"},
		{"fiber error", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed, "Method Not Allowed"},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := Render(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, body.Error)
			assert.Empty(t, body.Fields)
		})
	}
}

func TestRender_Validation(t *testing.T) {
	err := fmt.Errorf("create member: %w", errs.NewValidationError(
		errs.Field("email", "must be a valid email address"),
		errs.Field("role", "must be one of: faculty, student, alumni"),
	))

	status, body := Render(err)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "validation failed", body.Error)
	assert.Equal(t, map[string]string{
		"email": "must be a valid email address",
		"role":  "must be one of: faculty, student, alumni",
	}, body.Fields)
}
