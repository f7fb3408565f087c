package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/controllers"
	"github.com/musaada/musaada/middleware"
)

// SetupReviewRoutes configures the review routes
func SetupReviewRoutes(app *fiber.App, rc *controllers.ReviewController, m *middleware.Auth) {
	review := app.Group("/reviews")
	review.Get("/", rc.ListByProvider)
	review.Post("/", m.RequireSession(), rc.Create)
}
