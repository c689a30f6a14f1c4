package controllers

import (
	"context"
	"time"

	"absss-backend/dto"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether the database answers.
type Pinger func(ctx context.Context) error

// LivenessHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthDTO
// @Router /healthz [get]
func LivenessHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthDTO{Status: "ok"})
	}
}

// HealthHandler godoc
// @Summary Readiness probe
// @Description Pings MongoDB
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthDTO
// @Failure 503 {object} dto.HealthDTO
// @Router /api/health [get]
func HealthHandler(ping Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthDTO{Status: "degraded", Database: "unreachable"})
		}
		return c.JSON(dto.HealthDTO{Status: "ok", Database: "connected"})
	}
}
