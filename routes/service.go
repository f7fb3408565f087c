package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/controllers"
	"github.com/musaada/musaada/middleware"
	"github.com/musaada/musaada/models"
)

// SetupServiceRoutes configures the service catalog routes
func SetupServiceRoutes(app *fiber.App, sc *controllers.ServiceController, m *middleware.Auth) {
	service := app.Group("/services")
	service.Get("/", sc.List)
	service.Get("/:id", sc.Get)
	service.Post("/", m.RequireRole(models.RoleAdmin), sc.Create)
}
