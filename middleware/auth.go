package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/auth"
	"github.com/musaada/musaada/models"
)

const userLocal = "user"

// Auth resolves the session cookie on every request and guards
// protected routes. Role checks go through RequireRole instead of
// ad-hoc string comparisons at call sites.
type Auth struct {
	Sessions *auth.Service
}

func NewAuth(sessions *auth.Service) *Auth {
	return &Auth{Sessions: sessions}
}

// Attach resolves the session cookie to a user and stores it in the
// request locals. It never fails the request: a missing, malformed or
// expired cookie simply leaves the request anonymous.
func (m *Auth) Attach() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := auth.SessionTokenFromHeader(c.Get(fiber.HeaderCookie))
		if token != "" {
			if user := m.Sessions.UserFromSession(c.Context(), token); user != nil {
				c.Locals(userLocal, user)
			}
		}
		return c.Next()
	}
}

// RequireSession rejects anonymous requests.
func (m *Auth) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "يجب تسجيل الدخول أولاً",
			})
		}
		return c.Next()
	}
}

// RequireRole rejects requests whose session user does not hold the
// given role.
func (m *Auth) RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "يجب تسجيل الدخول أولاً",
			})
		}
		if user.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "غير مصرح لك بالوصول",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the session user attached by Attach, or nil for
// anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocal).(*models.User)
	return user
}
