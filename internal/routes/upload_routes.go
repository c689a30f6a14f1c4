package routes

import (
	"absss-backend/internal/auth"
	"absss-backend/internal/controllers"
	"absss-backend/internal/models"
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesUpload(api fiber.Router, svc *services.UploadService, tm *auth.TokenManager) {
	api.Post("/upload/:kind", guarded(tm, models.CapUploads, controllers.UploadHandler(svc))...)
}
