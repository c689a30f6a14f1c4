package routes

import (
	"absss-backend/internal/auth"
	"absss-backend/internal/controllers"
	"absss-backend/internal/models"
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesEvent(api fiber.Router, svc *services.EventService, tm *auth.TokenManager) {
	events := api.Group("/events")

	events.Get("/", controllers.ListEventsHandler(svc))
	events.Get("/upcoming", controllers.UpcomingEventsHandler(svc))
	events.Get("/past", controllers.PastEventsHandler(svc))
	events.Get("/:id", controllers.GetEventHandler(svc))

	events.Post("/", guarded(tm, models.CapEvents, controllers.CreateEventHandler(svc))...)
	events.Put("/:id", guarded(tm, models.CapEvents, controllers.UpdateEventHandler(svc))...)
	events.Delete("/:id", guarded(tm, models.CapEvents, controllers.DeleteEventHandler(svc))...)
}
