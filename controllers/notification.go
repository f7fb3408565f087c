package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/middleware"
	"github.com/musaada/musaada/models"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(gdb *gorm.DB) *NotificationController {
	return &NotificationController{DB: gdb}
}

// List returns the session user's notifications, newest first.
func (nc *NotificationController) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var notifications []models.Notification
	err := nc.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل جلب الإشعارات",
		})
	}
	return c.JSON(notifications)
}

// MarkRead marks one of the session user's notifications as read.
func (nc *NotificationController) MarkRead(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "معرف الإشعار غير صحيح",
		})
	}

	result := nc.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, user.ID).
		Update("is_read", true)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل تحديث الإشعار",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "الإشعار غير موجود",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
