package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/controllers"
	"github.com/musaada/musaada/middleware"
)

// SetupProviderRoutes configures the provider listing routes
func SetupProviderRoutes(app *fiber.App, pc *controllers.ProviderController, m *middleware.Auth) {
	provider := app.Group("/providers")
	provider.Get("/", pc.ListByService)
	provider.Get("/me", m.RequireSession(), pc.Me)
	provider.Post("/", m.RequireSession(), pc.Create)
}
