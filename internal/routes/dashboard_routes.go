package routes

import (
	"absss-backend/internal/auth"
	"absss-backend/internal/controllers"
	"absss-backend/internal/models"
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesDashboard(api fiber.Router, svc *services.DashboardService, tm *auth.TokenManager) {
	api.Get("/dashboard/stats", guarded(tm, models.CapAnalytics, controllers.DashboardStatsHandler(svc))...)
}
