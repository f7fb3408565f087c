package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/musaada/musaada/email"
	"github.com/musaada/musaada/middleware"
	"github.com/musaada/musaada/models"
	"github.com/musaada/musaada/utils"
	"gorm.io/gorm"
)

// statusLabels are the Arabic display names used in notifications and
// status-change emails.
var statusLabels = map[models.BookingStatus]string{
	models.BookingPending:    "قيد الانتظار",
	models.BookingConfirmed:  "مؤكد",
	models.BookingInProgress: "قيد التنفيذ",
	models.BookingCompleted:  "مكتمل",
	models.BookingCancelled:  "ملغي",
}

var statusMessages = map[models.BookingStatus]string{
	models.BookingConfirmed:  "تم تأكيد حجزك من قبل مقدم الخدمة.",
	models.BookingInProgress: "بدأ مقدم الخدمة في تنفيذ الخدمة.",
	models.BookingCompleted:  "اكتملت الخدمة. نأمل أن تشاركنا تقييمك.",
	models.BookingCancelled:  "تم إلغاء الحجز.",
}

// BookingController handles the booking lifecycle. Emails sent from
// here are best-effort: a failed send is logged and never fails the
// request.
type BookingController struct {
	DB     *gorm.DB
	Mailer email.Mailer
}

func NewBookingController(gdb *gorm.DB, mailer email.Mailer) *BookingController {
	return &BookingController{DB: gdb, Mailer: mailer}
}

// Create books a provider for the session user.
func (bc *BookingController) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input struct {
		ProviderID  uint      `json:"provider_id"`
		ServiceID   uint      `json:"service_id"`
		BookingDate time.Time `json:"booking_date"`
		StartTime   string    `json:"start_time"`
		Duration    int       `json:"duration"`
		Address     string    `json:"address"`
		City        string    `json:"city"`
		Notes       string    `json:"notes"`
		TotalPrice  float64   `json:"total_price"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "تعذر قراءة بيانات الطلب",
		})
	}

	if input.Address == "" || input.City == "" || input.StartTime == "" || input.Duration <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "بيانات الحجز غير مكتملة",
		})
	}

	var provider models.Provider
	if err := bc.DB.Preload("User").First(&provider, input.ProviderID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "مقدم الخدمة غير موجود",
		})
	}

	var service models.Service
	if err := bc.DB.First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "الخدمة غير موجودة",
		})
	}

	booking := models.Booking{
		CustomerID:  user.ID,
		ProviderID:  input.ProviderID,
		ServiceID:   input.ServiceID,
		BookingDate: input.BookingDate,
		StartTime:   input.StartTime,
		Duration:    input.Duration,
		Status:      models.BookingPending,
		Address:     input.Address,
		City:        input.City,
		Notes:       input.Notes,
		TotalPrice:  input.TotalPrice,
	}
	if err := bc.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل إنشاء الحجز",
		})
	}

	bc.notify(provider.UserID, models.NotificationBooking, "حجز جديد",
		fmt.Sprintf("لديك حجز جديد لخدمة %s من %s", service.NameAr, user.Name), booking.ID)

	// Confirmation email to the customer, best-effort.
	date := utils.ToRiyadh(booking.BookingDate).Format("2006-01-02")
	subject, html, text := email.BookingConfirmationEmail(
		user.Name, service.NameAr, date, booking.StartTime,
		fmt.Sprintf("%.2f", booking.TotalPrice))
	if err := bc.Mailer.Send(user.Email, subject, html, text); err != nil {
		log.Printf("[Bookings] Failed to send booking confirmation: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// ListByCustomer returns the session user's bookings, newest first.
func (bc *BookingController) ListByCustomer(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var bookings []models.Booking
	err := bc.DB.Preload("Provider.User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, avatar, phone")
	}).Preload("Provider").Preload("Service").
		Where("customer_id = ?", user.ID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل جلب الحجوزات",
		})
	}
	return c.JSON(bookings)
}

// ListByProvider returns the bookings assigned to the session user's
// provider profile, newest first.
func (bc *BookingController) ListByProvider(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var provider models.Provider
	if err := bc.DB.Where("user_id = ?", user.ID).First(&provider).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "لم يتم العثور على ملف مقدم الخدمة",
		})
	}

	var bookings []models.Booking
	err := bc.DB.Preload("Customer", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, avatar, phone, city")
	}).Preload("Service").
		Where("provider_id = ?", provider.ID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل جلب الحجوزات",
		})
	}
	return c.JSON(bookings)
}

// UpdateStatus moves a booking to a new status. Allowed for the
// booking's provider or an admin. Completed bookings increment the
// provider's completed counter; the customer is notified and emailed
// best-effort.
func (bc *BookingController) UpdateStatus(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "معرف الحجز غير صحيح",
		})
	}

	var input struct {
		Status             models.BookingStatus `json:"status"`
		CancellationReason string               `json:"cancellation_reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "تعذر قراءة بيانات الطلب",
		})
	}
	if !input.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "حالة الحجز غير صحيحة",
		})
	}

	var booking models.Booking
	if err := bc.DB.Preload("Customer").Preload("Provider").Preload("Service").
		First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "الحجز غير موجود",
		})
	}

	if user.Role != models.RoleAdmin && booking.Provider.UserID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "غير مصرح لك بتعديل هذا الحجز",
		})
	}

	updates := map[string]interface{}{"status": input.Status}
	if input.Status == models.BookingCancelled && input.CancellationReason != "" {
		updates["cancellation_reason"] = input.CancellationReason
	}
	if err := bc.DB.Model(&booking).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "فشل تحديث حالة الحجز",
		})
	}

	if input.Status == models.BookingCompleted {
		if err := bc.DB.Model(&models.Provider{}).Where("id = ?", booking.ProviderID).
			Update("completed_bookings", gorm.Expr("completed_bookings + 1")).Error; err != nil {
			log.Printf("[Bookings] Failed to bump completed bookings: %v", err)
		}
	}

	label := statusLabels[input.Status]
	bc.notify(booking.CustomerID, models.NotificationStatusChange, "تحديث حالة الحجز",
		fmt.Sprintf("أصبح حجزك لخدمة %s: %s", booking.Service.NameAr, label), booking.ID)

	subject, html, text := email.BookingStatusChangeEmail(
		booking.Customer.Name, booking.Service.NameAr, label, statusMessages[input.Status])
	if err := bc.Mailer.Send(booking.Customer.Email, subject, html, text); err != nil {
		log.Printf("[Bookings] Failed to send status change email: %v", err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func (bc *BookingController) notify(userID uint, kind models.NotificationType, title, message string, relatedID uint) {
	notification := models.Notification{
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Message:   message,
		RelatedID: &relatedID,
	}
	if err := bc.DB.Create(&notification).Error; err != nil {
		log.Printf("[Bookings] Failed to create notification: %v", err)
	}
}
