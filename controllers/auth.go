package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/auth"
	"github.com/musaada/musaada/middleware"
)

// AuthController exposes registration, login, email verification,
// logout and the current-user endpoint.
type AuthController struct {
	Auth *auth.Service

	// Production controls the Secure attribute on the session cookie.
	Production bool
}

func NewAuthController(svc *auth.Service, production bool) *AuthController {
	return &AuthController{Auth: svc, Production: production}
}

// Register handles user registration
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "تعذر قراءة بيانات الطلب",
		})
	}

	userID, err := ac.Auth.Register(c.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		return respondAuthError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "تم إنشاء الحساب بنجاح. يرجى التحقق من بريدك الإلكتروني",
		"user_id": userID,
	})
}

// Login handles user authentication and sets the session cookie
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "تعذر قراءة بيانات الطلب",
		})
	}

	user, token, err := ac.Auth.Login(c.Context(), input.Email, input.Password, c.IP())
	if err != nil {
		return respondAuthError(c, err)
	}

	ac.setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// VerifyEmail consumes a verification code submitted from the
// /verify-email?userId=<id>&token=<code> link or entered manually.
func (ac *AuthController) VerifyEmail(c *fiber.Ctx) error {
	var input struct {
		UserID uint   `json:"user_id"`
		Token  string `json:"token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "تعذر قراءة بيانات الطلب",
		})
	}

	if err := ac.Auth.VerifyEmail(c.Context(), input.UserID, input.Token); err != nil {
		return respondAuthError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "تم التحقق من البريد الإلكتروني بنجاح",
	})
}

// Logout deletes the session best-effort and always clears the cookie.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	token := auth.SessionTokenFromHeader(c.Get(fiber.HeaderCookie))
	ac.Auth.Logout(c.Context(), token)

	ac.clearSessionCookie(c)

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// Me returns the session user, or null for anonymous requests.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

func (ac *AuthController) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionTTL.Seconds()),
		Expires:  time.Now().Add(auth.SessionTTL),
		HTTPOnly: true,
		Secure:   ac.Production,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (ac *AuthController) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   ac.Production,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
