package routes

import (
	"absss-backend/internal/auth"
	"absss-backend/internal/controllers"
	"absss-backend/internal/middleware"
	"absss-backend/internal/models"
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesMember(api fiber.Router, svc *services.MemberService, tm *auth.TokenManager) {
	members := api.Group("/members")

	// A members token widens the listing to inactive members.
	members.Get("/", middleware.OptionalAuth(tm), controllers.ListMembersHandler(svc))
	members.Get("/:id", controllers.GetMemberHandler(svc))

	members.Post("/", guarded(tm, models.CapMembers, controllers.CreateMemberHandler(svc))...)
	members.Put("/:id", guarded(tm, models.CapMembers, controllers.UpdateMemberHandler(svc))...)
	members.Delete("/:id", guarded(tm, models.CapMembers, controllers.DeleteMemberHandler(svc))...)
}
