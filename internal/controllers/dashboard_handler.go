package controllers

import (
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardStatsHandler godoc
// @Summary Dashboard numbers
// @Description Counts, recent activity and six month analytics. Sections that could not be computed are listed in degraded
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/dashboard/stats [get]
func DashboardStatsHandler(svc *services.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.GetStats(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(stats)
	}
}
