package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/auth"
)

// respondAuthError maps an auth error to an HTTP status and returns
// its (kind, message) pair as the response body.
func respondAuthError(c *fiber.Ctx, err error) error {
	var authErr *auth.Error
	if !errors.As(err, &authErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "حدث خطأ غير متوقع، يرجى المحاولة لاحقاً",
		})
	}

	status := fiber.StatusBadRequest
	switch authErr.Kind {
	case auth.KindDuplicateEmail:
		status = fiber.StatusConflict
	case auth.KindInvalidCredentials, auth.KindAccountNotActivated:
		status = fiber.StatusUnauthorized
	case auth.KindRateLimited:
		status = fiber.StatusTooManyRequests
	case auth.KindStoreUnavailable:
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{
		"error": authErr.Message,
		"kind":  string(authErr.Kind),
	})
}
