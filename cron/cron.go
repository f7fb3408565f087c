package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/musaada/musaada/email"
	"github.com/musaada/musaada/models"
	"github.com/musaada/musaada/utils"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartReminders runs a scheduler that emails customers one hour
// before a confirmed booking starts. The caller stops it on shutdown.
func StartReminders(gdb *gorm.DB, mailer email.Mailer) (*cron.Cron, error) {
	c := cron.New()
	// Run every minute to catch bookings starting in about an hour
	_, err := c.AddFunc("* * * * *", func() {
		sendBookingReminders(gdb, mailer)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add cron job: %w", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
	return c, nil
}

// sendBookingReminders finds confirmed bookings starting in the next
// hour and sends each customer a reminder.
func sendBookingReminders(gdb *gorm.DB, mailer email.Mailer) {
	now := time.Now()

	var bookings []models.Booking
	err := gdb.Preload("Customer").Preload("Service").
		Where("status = ? AND booking_date BETWEEN ? AND ?",
			models.BookingConfirmed, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1)).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		start, ok := bookingStart(booking)
		if !ok {
			continue
		}

		// Remind inside a ten-minute window around the one-hour mark,
		// matching the every-minute schedule.
		until := start.Sub(now)
		if until < 55*time.Minute || until > 65*time.Minute {
			continue
		}

		date := utils.ToRiyadh(start).Format("2006-01-02")
		subject, html, text := email.BookingReminderEmail(
			booking.Customer.Name, booking.Service.NameAr, date, booking.StartTime)
		if err := mailer.Send(booking.Customer.Email, subject, html, text); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.Customer.Email)
	}
}

// bookingStart combines the booking date with its "HH:MM" start time.
func bookingStart(booking models.Booking) (time.Time, bool) {
	clock, err := time.Parse("15:04", booking.StartTime)
	if err != nil {
		log.Printf("Booking %d has malformed start time %q", booking.ID, booking.StartTime)
		return time.Time{}, false
	}
	d := booking.BookingDate
	return time.Date(d.Year(), d.Month(), d.Day(), clock.Hour(), clock.Minute(), 0, 0, d.Location()), true
}
