package controllers

import (
	"errors"

	"absss-backend/dto"
	"absss-backend/internal/errs"
	"absss-backend/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler renders every error returned by a handler or middleware as
// dto.ErrorResponse with the status its kind maps to.
func ErrorHandler(base *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := Render(err)
		body.RequestID = logger.RequestID(c)

		if status >= fiber.StatusInternalServerError {
			l := base
			if c.Locals("logger") != nil {
				l = logger.FromCtx(c)
			}
			l.Error("request failed", zap.Int("status", status), zap.Error(err))
		}
		return c.Status(status).JSON(body)
	}
}

// Render maps err onto a status code and a client safe body.
func Render(err error) (int, dto.ErrorResponse) {
	if ve, ok := errs.AsValidation(err); ok {
		return fiber.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Fields: ve.FieldMap()}
	}

	var fe *fiber.Error
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Error: "not found"}
	case errors.Is(err, errs.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Error: "invalid credentials"}
	case errors.Is(err, errs.ErrTokenExpired):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Error: "token expired"}
	case errors.Is(err, errs.ErrTokenInvalid):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Error: "invalid token"}
	case errors.Is(err, errs.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Error: "forbidden"}
	case errors.Is(err, errs.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Error: conflictMessage(err)}
	case errors.Is(err, errs.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Error: "storage unavailable"}
	case errors.As(err, &fe):
		return fe.Code, dto.ErrorResponse{Error: fe.Message}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"}
	}
}

// conflictMessage keeps the rule that was broken, which is safe to show.
func conflictMessage(err error) string {
	msg := err.Error()
	suffix := ": " + errs.ErrConflict.Error()
	if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
		return msg[:len(msg)-len(suffix)]
	}
	return "conflict"
}
