package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/email"
	"github.com/musaada/musaada/middleware"
	"github.com/musaada/musaada/models"
	"gorm.io/gorm"
)

// ReviewController handles reviews and keeps the provider's
// denormalized rating in sync.
type ReviewController struct {
	DB     *gorm.DB
	Mailer email.Mailer
}

func NewReviewController(gdb *gorm.DB, mailer email.Mailer) *ReviewController {
	return &ReviewController{DB: gdb, Mailer: mailer}
}

// ListByProvider returns a provider's reviews, newest first, with the
// reviewing customer's public fields.
func (rc *ReviewController) ListByProvider(c *fiber.Ctx) error {
	providerID := c.QueryInt("providerId")
	if providerID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "معرف مقدم الخدمة غير صحيح",
		})
	}

	var reviews []models.Review
	err := rc.DB.Preload("Customer", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, avatar")
	}).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل جلب التقييمات",
		})
	}
	return c.JSON(reviews)
}

// Create adds a review for a booking the session user made, then
// recomputes the provider's mean rating.
func (rc *ReviewController) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		BookingID  uint   `json:"booking_id"`
		ProviderID uint   `json:"provider_id"`
		ServiceID  uint   `json:"service_id"`
		Rating     int    `json:"rating"`
		Comment    string `json:"comment"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "تعذر قراءة بيانات الطلب",
		})
	}

	if input.Rating < 1 || input.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "التقييم يجب أن يكون بين 1 و 5",
		})
	}

	var booking models.Booking
	if err := rc.DB.Where("id = ? AND customer_id = ?", input.BookingID, user.ID).
		First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "الحجز غير موجود",
		})
	}

	var provider models.Provider
	if err := rc.DB.Preload("User").First(&provider, input.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "مقدم الخدمة غير موجود",
		})
	}

	review := models.Review{
		BookingID:  input.BookingID,
		CustomerID: user.ID,
		ProviderID: input.ProviderID,
		ServiceID:  input.ServiceID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := rc.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل إنشاء التقييم",
		})
	}

	if err := rc.recomputeRating(input.ProviderID); err != nil {
		log.Printf("[Reviews] Failed to recompute provider rating: %v", err)
	}

	notification := models.Notification{
		UserID:    provider.UserID,
		Type:      models.NotificationReview,
		Title:     "تقييم جديد",
		Message:   fmt.Sprintf("قام %s بتقييم خدمتك بـ %d من 5", user.Name, input.Rating),
		RelatedID: &review.ID,
	}
	if err := rc.DB.Create(&notification).Error; err != nil {
		log.Printf("[Reviews] Failed to create notification: %v", err)
	}

	subject, html, text := email.NewReviewEmail(provider.User.Name, user.Name, input.Rating, input.Comment)
	if err := rc.Mailer.Send(provider.User.Email, subject, html, text); err != nil {
		log.Printf("[Reviews] Failed to send review notification: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// recomputeRating sets the provider's rating to the arithmetic mean of
// all its review ratings and refreshes the review counter.
func (rc *ReviewController) recomputeRating(providerID uint) error {
	var reviews []models.Review
	if err := rc.DB.Where("provider_id = ?", providerID).Find(&reviews).Error; err != nil {
		return err
	}

	return rc.DB.Model(&models.Provider{}).Where("id = ?", providerID).
		Updates(map[string]interface{}{
			"rating":        averageRating(reviews),
			"total_reviews": len(reviews),
		}).Error
}

func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
