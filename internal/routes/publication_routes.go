package routes

import (
	"absss-backend/internal/auth"
	"absss-backend/internal/controllers"
	"absss-backend/internal/models"
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesPublication(api fiber.Router, svc *services.PublicationService, tm *auth.TokenManager) {
	pubs := api.Group("/publications")

	pubs.Get("/", controllers.ListPublicationsHandler(svc))
	pubs.Get("/recent", controllers.RecentPublicationsHandler(svc))
	pubs.Get("/:id", controllers.GetPublicationHandler(svc))

	pubs.Post("/", guarded(tm, models.CapPublications, controllers.CreatePublicationHandler(svc))...)
	pubs.Put("/:id", guarded(tm, models.CapPublications, controllers.UpdatePublicationHandler(svc))...)
	pubs.Delete("/:id", guarded(tm, models.CapPublications, controllers.DeletePublicationHandler(svc))...)
}
