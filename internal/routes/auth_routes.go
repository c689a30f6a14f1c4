package routes

import (
	"absss-backend/internal/auth"
	"absss-backend/internal/controllers"
	"absss-backend/internal/middleware"
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesAuth(api fiber.Router, svc *services.AuthService, tm *auth.TokenManager) {
	r := api.Group("/auth")
	r.Post("/login", controllers.LoginHandler(svc))

	r.Get("/profile", middleware.RequireAuth(tm), controllers.GetProfileHandler(svc))
	r.Put("/profile", middleware.RequireAuth(tm), controllers.UpdateProfileHandler(svc))
	r.Put("/change-password", middleware.RequireAuth(tm), controllers.ChangePasswordHandler(svc))
}
