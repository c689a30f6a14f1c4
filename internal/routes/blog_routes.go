package routes

import (
	"absss-backend/internal/auth"
	"absss-backend/internal/controllers"
	"absss-backend/internal/middleware"
	"absss-backend/internal/models"
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesBlog(api fiber.Router, svc *services.BlogService, tm *auth.TokenManager) {
	blogs := api.Group("/blogs")

	blogs.Get("/", middleware.OptionalAuth(tm), controllers.ListBlogsHandler(svc))
	blogs.Get("/published", controllers.PublishedBlogsHandler(svc))
	blogs.Get("/recent", controllers.RecentBlogsHandler(svc))
	blogs.Get("/category/:category", controllers.BlogsByCategoryHandler(svc))
	blogs.Get("/:id", middleware.OptionalAuth(tm), controllers.GetBlogHandler(svc))
	blogs.Patch("/:id/view", controllers.BlogViewHandler(svc))

	blogs.Post("/", guarded(tm, models.CapBlogs, controllers.CreateBlogHandler(svc))...)
	blogs.Put("/:id", guarded(tm, models.CapBlogs, controllers.UpdateBlogHandler(svc))...)
	blogs.Delete("/:id", guarded(tm, models.CapBlogs, controllers.DeleteBlogHandler(svc))...)
}
