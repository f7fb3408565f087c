package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/controllers"
	"github.com/musaada/musaada/middleware"
)

// SetupNotificationRoutes configures the notification routes
func SetupNotificationRoutes(app *fiber.App, nc *controllers.NotificationController, m *middleware.Auth) {
	notification := app.Group("/notifications", m.RequireSession())
	notification.Get("/", nc.List)
	notification.Patch("/:id/read", nc.MarkRead)
}
