package routes

import (
	"absss-backend/internal/auth"
	"absss-backend/internal/controllers"
	"absss-backend/internal/middleware"
	"absss-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Services bundles everything the HTTP layer needs.
type Services struct {
	Tokens       *auth.TokenManager
	Auth         *services.AuthService
	Users        *services.UserService
	Events       *services.EventService
	Publications *services.PublicationService
	Members      *services.MemberService
	Blogs        *services.BlogService
	Contacts     *services.ContactService
	Dashboard    *services.DashboardService
	Uploads      *services.UploadService
	PingDatabase controllers.Pinger
}

// Register mounts every route group on app.
func Register(app *fiber.App, s Services) {
	app.Get("/healthz", controllers.LivenessHandler())

	api := app.Group("/api")
	api.Get("/health", controllers.HealthHandler(s.PingDatabase))

	SetupRoutesAuth(api, s.Auth, s.Tokens)
	SetupRoutesUser(api, s.Users, s.Tokens)
	SetupRoutesEvent(api, s.Events, s.Tokens)
	SetupRoutesPublication(api, s.Publications, s.Tokens)
	SetupRoutesMember(api, s.Members, s.Tokens)
	SetupRoutesBlog(api, s.Blogs, s.Tokens)
	SetupRoutesContact(api, s.Contacts, s.Tokens)
	SetupRoutesDashboard(api, s.Dashboard, s.Tokens)
	SetupRoutesUpload(api, s.Uploads, s.Tokens)
}

// guarded prefixes h with token verification and a capability check.
func guarded(tm *auth.TokenManager, capability string, h fiber.Handler) []fiber.Handler {
	return []fiber.Handler{middleware.RequireAuth(tm), middleware.RequireCapability(capability), h}
}
