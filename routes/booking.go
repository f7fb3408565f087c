package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/controllers"
	"github.com/musaada/musaada/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App, bc *controllers.BookingController, m *middleware.Auth) {
	booking := app.Group("/bookings", m.RequireSession())
	booking.Post("/", bc.Create)
	booking.Get("/customer", bc.ListByCustomer)
	booking.Get("/provider", bc.ListByProvider)
	booking.Patch("/:id/status", bc.UpdateStatus)
}
