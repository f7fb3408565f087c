package email

import (
	"fmt"
)

// Arabic RTL transactional templates. Each builder returns the
// subject, the HTML body and a plain-text fallback.

const layout = `<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<style>
body { font-family: 'Cairo', 'Segoe UI', sans-serif; background-color: #f5f5f5; margin: 0; padding: 0; }
.container { max-width: 600px; margin: 20px auto; background-color: white; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); overflow: hidden; }
.header { background: linear-gradient(135deg, #16a34a 0%%, #15803d 100%%); color: white; padding: 30px; text-align: center; }
.header h1 { margin: 0; font-size: 28px; }
.content { padding: 30px; text-align: right; }
.content p { color: #333; font-size: 16px; line-height: 1.6; margin: 15px 0; }
.code-box { background-color: #f0fdf4; border: 2px solid #16a34a; border-radius: 8px; padding: 20px; text-align: center; font-size: 32px; font-weight: bold; letter-spacing: 8px; color: #15803d; margin: 20px 0; }
.button { display: inline-block; background-color: #16a34a; color: white; padding: 12px 30px; border-radius: 6px; text-decoration: none; margin: 15px 0; }
.footer { background-color: #f9fafb; padding: 20px; text-align: center; color: #6b7280; font-size: 13px; }
</style>
</head>
<body>
<div class="container">
<div class="header"><h1>مساعدة</h1></div>
<div class="content">%s</div>
<div class="footer">هذه رسالة آلية من منصة مساعدة للخدمات المنزلية، يرجى عدم الرد عليها.</div>
</div>
</body>
</html>`

// VerificationEmail carries the raw code plus a clickable link of the
// form <frontend>/verify-email?userId=<id>&token=<code>.
func VerificationEmail(name, code, verificationURL string) (subject, html, text string) {
	subject = "تأكيد البريد الإلكتروني - مساعدة"
	body := fmt.Sprintf(`
<p>مرحباً %s،</p>
<p>شكراً لتسجيلك في منصة مساعدة. استخدم الرمز التالي لتأكيد بريدك الإلكتروني:</p>
<div class="code-box">%s</div>
<p>أو اضغط على الرابط التالي للتأكيد مباشرة:</p>
<p style="text-align: center;"><a class="button" href="%s">تأكيد البريد الإلكتروني</a></p>
<p>ينتهي هذا الرمز خلال 24 ساعة.</p>`, name, code, verificationURL)
	html = fmt.Sprintf(layout, body)
	text = fmt.Sprintf("مرحباً %s، رمز التحقق الخاص بك هو: %s — أو قم بزيارة: %s", name, code, verificationURL)
	return subject, html, text
}

func BookingConfirmationEmail(customerName, serviceName, bookingDate, bookingTime, totalPrice string) (subject, html, text string) {
	subject = "تأكيد الحجز - مساعدة"
	body := fmt.Sprintf(`
<p>مرحباً %s،</p>
<p>تم استلام حجزك بنجاح.</p>
<p><strong>تفاصيل الحجز:</strong></p>
<ul>
<li><strong>الخدمة:</strong> %s</li>
<li><strong>التاريخ:</strong> %s</li>
<li><strong>الوقت:</strong> %s</li>
<li><strong>السعر الإجمالي:</strong> %s ريال</li>
</ul>
<p>سيتواصل معك مقدم الخدمة قريباً لتأكيد الموعد.</p>`, customerName, serviceName, bookingDate, bookingTime, totalPrice)
	html = fmt.Sprintf(layout, body)
	text = fmt.Sprintf("مرحباً %s، تم استلام حجزك لخدمة %s بتاريخ %s الساعة %s. السعر الإجمالي: %s ريال.",
		customerName, serviceName, bookingDate, bookingTime, totalPrice)
	return subject, html, text
}

func BookingStatusChangeEmail(customerName, serviceName, status, statusMessage string) (subject, html, text string) {
	subject = "تحديث حالة الحجز - مساعدة"
	body := fmt.Sprintf(`
<p>مرحباً %s،</p>
<p>تم تحديث حالة حجزك لخدمة <strong>%s</strong>.</p>
<p><strong>الحالة الجديدة:</strong> %s</p>
<p>%s</p>`, customerName, serviceName, status, statusMessage)
	html = fmt.Sprintf(layout, body)
	text = fmt.Sprintf("مرحباً %s، حالة حجزك لخدمة %s أصبحت: %s. %s", customerName, serviceName, status, statusMessage)
	return subject, html, text
}

func NewReviewEmail(providerName, customerName string, rating int, comment string) (subject, html, text string) {
	subject = "تقييم جديد - مساعدة"
	body := fmt.Sprintf(`
<p>مرحباً %s،</p>
<p>قام العميل %s بإضافة تقييم جديد لخدمتك.</p>
<p><strong>التقييم:</strong> %d من 5</p>
<p><strong>التعليق:</strong> %s</p>`, providerName, customerName, rating, comment)
	html = fmt.Sprintf(layout, body)
	text = fmt.Sprintf("مرحباً %s، قام %s بتقييم خدمتك بـ %d من 5. التعليق: %s", providerName, customerName, rating, comment)
	return subject, html, text
}

func BookingReminderEmail(customerName, serviceName, bookingDate, startTime string) (subject, html, text string) {
	subject = "تذكير بموعد الحجز - مساعدة"
	body := fmt.Sprintf(`
<p>مرحباً %s،</p>
<p>هذا تذكير بموعد حجزك القادم خلال ساعة.</p>
<ul>
<li><strong>الخدمة:</strong> %s</li>
<li><strong>التاريخ:</strong> %s</li>
<li><strong>الوقت:</strong> %s</li>
</ul>
<p>يرجى التواجد في الموقع المحدد. إذا أردت إلغاء الحجز أو تعديله تواصل معنا بأسرع وقت.</p>`,
		customerName, serviceName, bookingDate, startTime)
	html = fmt.Sprintf(layout, body)
	text = fmt.Sprintf("مرحباً %s، تذكير بموعد حجزك لخدمة %s بتاريخ %s الساعة %s.", customerName, serviceName, bookingDate, startTime)
	return subject, html, text
}
