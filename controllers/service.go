package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/models"
	"gorm.io/gorm"
)

// ServiceController serves the bilingual service catalog.
type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(gdb *gorm.DB) *ServiceController {
	return &ServiceController{DB: gdb}
}

// List returns all active services.
func (sc *ServiceController) List(c *fiber.Ctx) error {
	var services []models.Service
	if err := sc.DB.Where("is_active = ?", true).Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل جلب الخدمات",
		})
	}
	return c.JSON(services)
}

// Get returns a single service by id.
func (sc *ServiceController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "معرف الخدمة غير صحيح",
		})
	}

	var service models.Service
	if err := sc.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "الخدمة غير موجودة",
		})
	}
	return c.JSON(service)
}

// Create adds a catalog entry. Admin only.
func (sc *ServiceController) Create(c *fiber.Ctx) error {
	var input struct {
		NameAr        string                 `json:"name_ar"`
		NameEn        string                 `json:"name_en"`
		DescriptionAr string                 `json:"description_ar"`
		DescriptionEn string                 `json:"description_en"`
		Category      models.ServiceCategory `json:"category"`
		Icon          string                 `json:"icon"`
		Image         string                 `json:"image"`
		BasePrice     float64                `json:"base_price"`
		PriceUnit     string                 `json:"price_unit"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "تعذر قراءة بيانات الطلب",
		})
	}

	if input.NameAr == "" || input.NameEn == "" || !input.Category.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "بيانات الخدمة غير مكتملة",
		})
	}
	if input.PriceUnit == "" {
		input.PriceUnit = "hour"
	}

	service := models.Service{
		NameAr:        input.NameAr,
		NameEn:        input.NameEn,
		DescriptionAr: input.DescriptionAr,
		DescriptionEn: input.DescriptionEn,
		Category:      input.Category,
		Icon:          input.Icon,
		Image:         input.Image,
		BasePrice:     input.BasePrice,
		PriceUnit:     input.PriceUnit,
		IsActive:      true,
	}
	if err := sc.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل إنشاء الخدمة",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}
