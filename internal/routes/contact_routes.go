package routes

import (
	"absss-backend/internal/auth"
	"absss-backend/internal/controllers"
	"absss-backend/internal/models"
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesContact(api fiber.Router, svc *services.ContactService, tm *auth.TokenManager) {
	contact := api.Group("/contact")

	contact.Post("/", controllers.CreateContactHandler(svc))

	contact.Get("/", guarded(tm, models.CapContacts, controllers.ListContactsHandler(svc))...)
	contact.Get("/:id", guarded(tm, models.CapContacts, controllers.GetContactHandler(svc))...)
	contact.Patch("/:id/read", guarded(tm, models.CapContacts, controllers.MarkContactReadHandler(svc))...)
	contact.Put("/:id", guarded(tm, models.CapContacts, controllers.UpdateContactHandler(svc))...)
	contact.Delete("/:id", guarded(tm, models.CapContacts, controllers.DeleteContactHandler(svc))...)
}
