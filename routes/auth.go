package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/controllers"
	"github.com/musaada/musaada/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, ac *controllers.AuthController, pc *controllers.ProfileController, m *middleware.Auth) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", ac.Register)
	auth.Post("/login", ac.Login)
	auth.Post("/verify-email", ac.VerifyEmail)
	auth.Post("/logout", ac.Logout)
	auth.Get("/me", ac.Me)

	// Protected routes
	auth.Patch("/profile", m.RequireSession(), pc.Update)
	auth.Post("/profile/avatar", m.RequireSession(), pc.UploadAvatar)
}
