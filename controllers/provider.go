package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/middleware"
	"github.com/musaada/musaada/models"
	"gorm.io/gorm"
)

// ProviderController serves provider listings and profiles.
type ProviderController struct {
	DB *gorm.DB
}

func NewProviderController(gdb *gorm.DB) *ProviderController {
	return &ProviderController{DB: gdb}
}

// ListByService returns the verified, available providers offering a
// service, with their user and service records preloaded.
func (pc *ProviderController) ListByService(c *fiber.Ctx) error {
	serviceID := c.QueryInt("serviceId")
	if serviceID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "معرف الخدمة غير صحيح",
		})
	}

	var providers []models.Provider
	err := pc.DB.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, avatar, city, is_verified")
	}).Preload("Service").
		Where("service_id = ? AND is_verified = ? AND is_available = ?", serviceID, true, true).
		Find(&providers).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل جلب مقدمي الخدمة",
		})
	}
	return c.JSON(providers)
}

// Me returns the provider profile belonging to the session user.
func (pc *ProviderController) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var provider models.Provider
	if err := pc.DB.Preload("Service").Where("user_id = ?", user.ID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "لم يتم العثور على ملف مقدم الخدمة",
		})
	}
	return c.JSON(provider)
}

// Create opens a provider profile for the session user.
func (pc *ProviderController) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		ServiceID    uint    `json:"service_id"`
		Experience   int     `json:"experience"`
		HourlyRate   float64 `json:"hourly_rate"`
		Availability string  `json:"availability"`
		IDDocument   string  `json:"id_document"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "تعذر قراءة بيانات الطلب",
		})
	}

	var service models.Service
	if err := pc.DB.First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "الخدمة غير موجودة",
		})
	}

	var existing models.Provider
	if pc.DB.Where("user_id = ?", user.ID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "لديك ملف مقدم خدمة بالفعل",
		})
	}

	provider := models.Provider{
		UserID:       user.ID,
		ServiceID:    input.ServiceID,
		Experience:   input.Experience,
		HourlyRate:   input.HourlyRate,
		Availability: input.Availability,
		IDDocument:   input.IDDocument,
		IsAvailable:  true,
	}
	if err := pc.DB.Create(&provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل إنشاء ملف مقدم الخدمة",
		})
	}

	// Provider accounts gain the provider role once a profile exists.
	if user.Role == models.RoleUser {
		if err := pc.DB.Model(&models.User{}).Where("id = ?", user.ID).
			Update("role", models.RoleProvider).Error; err == nil {
			user.Role = models.RoleProvider
		}
	}

	return c.Status(fiber.StatusCreated).JSON(provider)
}
