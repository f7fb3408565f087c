package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationEmail(t *testing.T) {
	subject, html, text := VerificationEmail("أليس", "AB12CD", "http://localhost:3000/verify-email?userId=1&token=AB12CD")

	assert.NotEmpty(t, subject)
	assert.Contains(t, html, "AB12CD")
	assert.Contains(t, html, "http://localhost:3000/verify-email?userId=1&token=AB12CD")
	assert.Contains(t, html, `dir="rtl"`)
	assert.Contains(t, text, "AB12CD")
}

func TestBookingConfirmationEmail(t *testing.T) {
	subject, html, text := BookingConfirmationEmail("أليس", "تنظيف المنزل", "2024-06-01", "14:00", "150.00")

	assert.NotEmpty(t, subject)
	assert.Contains(t, html, "تنظيف المنزل")
	assert.Contains(t, html, "150.00")
	assert.Contains(t, text, "2024-06-01")
}

func TestBookingStatusChangeEmail(t *testing.T) {
	_, html, _ := BookingStatusChangeEmail("أليس", "تنظيف المنزل", "مؤكد", "تم تأكيد حجزك من قبل مقدم الخدمة.")

	assert.Contains(t, html, "مؤكد")
	assert.Contains(t, html, "تنظيف المنزل")
}

func TestNewReviewEmail(t *testing.T) {
	_, html, text := NewReviewEmail("سالم", "أليس", 4, "خدمة ممتازة")

	assert.Contains(t, html, "4")
	assert.Contains(t, html, "خدمة ممتازة")
	assert.Contains(t, text, "سالم")
}
