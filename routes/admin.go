package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/controllers"
	"github.com/musaada/musaada/middleware"
	"github.com/musaada/musaada/models"
)

// SetupAdminRoutes configures the platform oversight routes
func SetupAdminRoutes(app *fiber.App, ac *controllers.AdminController, m *middleware.Auth) {
	admin := app.Group("/admin", m.RequireRole(models.RoleAdmin))
	admin.Get("/users", ac.Users)
	admin.Get("/bookings", ac.Bookings)
	admin.Get("/statistics", ac.Statistics)
}
