package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/models"
	"gorm.io/gorm"
)

// AdminController serves the platform oversight endpoints. All routes
// behind it are wrapped with the admin role guard.
type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(gdb *gorm.DB) *AdminController {
	return &AdminController{DB: gdb}
}

// Users lists every account on the platform.
func (ac *AdminController) Users(c *fiber.Ctx) error {
	var users []models.User
	if err := ac.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل جلب المستخدمين",
		})
	}
	return c.JSON(users)
}

// Bookings lists every booking with its related records.
func (ac *AdminController) Bookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	err := ac.DB.Preload("Customer", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, email")
	}).Preload("Provider").Preload("Service").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل جلب الحجوزات",
		})
	}
	return c.JSON(bookings)
}

// Statistics returns platform-wide counters and the booking status
// breakdown.
func (ac *AdminController) Statistics(c *fiber.Ctx) error {
	var userCount, providerCount, bookingCount, reviewCount int64
	ac.DB.Model(&models.User{}).Count(&userCount)
	ac.DB.Model(&models.Provider{}).Count(&providerCount)
	ac.DB.Model(&models.Booking{}).Count(&bookingCount)
	ac.DB.Model(&models.Review{}).Count(&reviewCount)

	byStatus := map[string]int64{}
	for _, status := range []models.BookingStatus{
		models.BookingPending,
		models.BookingConfirmed,
		models.BookingInProgress,
		models.BookingCompleted,
		models.BookingCancelled,
	} {
		var count int64
		ac.DB.Model(&models.Booking{}).Where("status = ?", status).Count(&count)
		byStatus[string(status)] = count
	}

	return c.JSON(fiber.Map{
		"users":              userCount,
		"providers":          providerCount,
		"bookings":           bookingCount,
		"reviews":            reviewCount,
		"bookings_by_status": byStatus,
	})
}
