package routes

import (
	"absss-backend/internal/auth"
	"absss-backend/internal/controllers"
	"absss-backend/internal/middleware"
	"absss-backend/internal/models"
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesUser(api fiber.Router, svc *services.UserService, tm *auth.TokenManager) {
	users := api.Group("/users", middleware.RequireAuth(tm), middleware.RequireCapability(models.CapUsers))

	users.Get("/", controllers.ListUsersHandler(svc))
	users.Post("/", controllers.CreateUserHandler(svc))
	users.Get("/:id", controllers.GetUserHandler(svc))
	users.Put("/:id", controllers.UpdateUserHandler(svc))
	users.Delete("/:id", controllers.DeleteUserHandler(svc))
	users.Patch("/:id/toggle-status", controllers.ToggleUserActiveHandler(svc))
}
